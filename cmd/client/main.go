package main

import "worldexplorer/cmd/client/cmd"

func main() {
	cmd.Execute()
}

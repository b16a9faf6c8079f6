package country

import "worldexplorer/internal/domain/country"

type listInput struct{}

type byNameInput struct {
	Name string `path:"name" doc:"Full or partial country name"`
}

type byRegionInput struct {
	Region string `path:"region" doc:"Region name, e.g. europe"`
}

type byCodeInput struct {
	Code string `path:"code" doc:"Alpha-3 country code"`
}

type listOutput struct {
	Body []country.Country
}

type singleOutput struct {
	Body country.Country
}

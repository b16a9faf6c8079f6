package types

// ContextKey keys values stored on the command context.
type ContextKey string

// ClientAppKey holds the initialized *client.App for subcommands.
const ClientAppKey ContextKey = "app"

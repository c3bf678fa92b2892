package cmd

// Exit codes for hitpie CLI
const (
	// ExitSuccess indicates a response was received, whatever its status
	ExitSuccess = 0

	// ExitFailure indicates the response could not be written out
	ExitFailure = 1

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage, a bad URL or a bad key=value pair
	ExitUsageError = 64
)

package main

// Exit codes of the iglgraph CLI.
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error (invalid arguments, I/O failure)
	ExitDataError = 3 // Data error (malformed graph file)
)

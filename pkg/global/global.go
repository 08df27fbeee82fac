package global

var (
	Version   = "0.0.1"
	BuildTime = "none"
	Verbose   = false

	// DefaultBaseImage is the container base image used when no provider in
	// the merge declares one.
	DefaultBaseImage = "python:3.10-slim"
)

package goreefcore

const buildVersion = "v0.1.0-dev"

// Version returns the version string for this library.
func Version() string {
	return buildVersion
}

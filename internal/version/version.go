// Package version contains the flentreport version.
package version

// Version is the flentreport version.
const Version = "0.2.0"

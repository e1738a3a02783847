// Package version reports the library build label.
package version

const (
	name   = "usefulgo"
	number = "1.1"
)

// Version returns the library version number.
func Version() string {
	return number
}

// Banner returns the version in "<name> version <number>" form.
func Banner() string {
	return name + " version " + number
}

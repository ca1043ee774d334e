// Package registry locates the com0com installation through the Windows
// registry value written by the com0com installer.
package registry

import (
	"github.com/sa6mwa/com0com/port"
)

const (
	// KeyPath is opened under HKEY_LOCAL_MACHINE.
	KeyPath = `SOFTWARE\WOW6432Node\com0com`
	// ValueName holds the install directory.
	ValueName = "Install_Dir"
)

// Locator reads Path\Value from HKEY_LOCAL_MACHINE.
type Locator struct {
	Path  string
	Value string
}

var _ port.Locator = Locator{}

// Default is the locator for a standard com0com installation.
var Default = Locator{Path: KeyPath, Value: ValueName}

// InstallDir returns the registry value as-is. Errors from the registry are
// returned unwrapped.
func (l Locator) InstallDir() (string, error) {
	path, value := l.Path, l.Value
	if path == "" {
		path = KeyPath
	}
	if value == "" {
		value = ValueName
	}
	return queryString(path, value)
}

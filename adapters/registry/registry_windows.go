//go:build windows

package registry

import (
	"golang.org/x/sys/windows/registry"
)

var queryString = func(path, value string) (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()
	dir, _, err := key.GetStringValue(value)
	if err != nil {
		return "", err
	}
	return dir, nil
}

//go:build !windows

package registry

import "errors"

var queryString = func(path, value string) (string, error) {
	return "", errors.ErrUnsupported
}

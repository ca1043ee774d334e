package port

// Locator resolves the directory com0com is installed in. The Runner asks
// once, at construction.
type Locator interface {
	InstallDir() (string, error)
}

// LocatorFunc adapts a plain function to Locator.
type LocatorFunc func() (string, error)

func (f LocatorFunc) InstallDir() (string, error) {
	return f()
}

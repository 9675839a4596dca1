package ports

// ProjectLocator finds a firmware project root starting from an arbitrary directory.
type ProjectLocator interface {
	FindRoot(startDir string) (string, error)
}

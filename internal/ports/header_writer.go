package ports

// HeaderWriter persists a rendered header, replacing any existing file.
type HeaderWriter interface {
	WriteHeader(path string, content []byte) error
	ReadHeader(path string) ([]byte, error)
}

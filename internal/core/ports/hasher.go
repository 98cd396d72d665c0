package ports

// Hasher defines the interface for computing content digests of source files.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash returns the hex-encoded SHA-256 digest of the file's full content.
	ComputeFileHash(path string) (string, error)
}

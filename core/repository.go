package core

import (
	"path/filepath"

	"github.com/huangsam/recap/internal/contract"
)

// Repository binds a discovered directory path, its derived name and an
// opened VCS handle. The handle is owned exclusively by the Repository and
// shares its lifetime.
type Repository struct {
	URI  string
	Name string
	VCS  contract.VcsHandle
}

// NewRepository creates a Repository for the directory at uri. The name is
// derived once from the final path segment; paths with no extractable
// segment (".", "..", the filesystem root) fail with a PathError before
// the VCS opener is consulted. Opening the VCS can fail independently even
// when the probe matched, e.g. a corrupt checkout.
func NewRepository(uri string, open contract.VcsOpener) (*Repository, error) {
	name := filepath.Base(filepath.Clean(uri))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return nil, &contract.PathError{Path: uri}
	}
	vcs, err := open(uri)
	if err != nil {
		return nil, err
	}
	return &Repository{URI: uri, Name: name, VCS: vcs}, nil
}

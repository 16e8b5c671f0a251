package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/safestride/routing/store"
)

// Path locates a data set either as a local file or as a mongo collection.
type Path struct {
	File string
	DB   string
	Coll string
}

// NewPath treats filePathOrColl as a file when it exists, else as {db}.{col}.
// An empty string yields nil.
func NewPath(filePathOrColl string) (*Path, error) {
	if _, err := os.Stat(filePathOrColl); err == nil {
		abs, err := filepath.Abs(filePathOrColl)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path of %s: %w", filePathOrColl, err)
		}
		return &Path{File: abs}, nil
	}
	dbDotColl := strings.TrimSpace(filePathOrColl)
	if dbDotColl == "" {
		return nil, nil
	}
	ns, err := store.ParseNamespace(dbDotColl)
	if err != nil {
		return nil, fmt.Errorf("neither a file nor {db}.{col}: %s", dbDotColl)
	}
	return &Path{DB: ns.DB, Coll: ns.Coll}, nil
}

func (p *Path) IsFile() bool {
	return p != nil && p.File != ""
}

func (p *Path) Namespace() store.Namespace {
	return store.Namespace{DB: p.DB, Coll: p.Coll}
}

func (p *Path) String() string {
	if p == nil {
		return ""
	}
	if p.File != "" {
		return p.File
	}
	return p.Namespace().String()
}

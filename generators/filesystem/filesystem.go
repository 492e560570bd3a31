// Package filesystem serves table resources from a directory tree or any fs.FS.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/darianmavgo/foodmart/generators"
	"github.com/darianmavgo/foodmart/generators/common"
)

func init() {
	generators.Register("dir", &dirDriver{})
}

type dirDriver struct{}

func (d *dirDriver) Open(location string, config *common.ProviderConfig) (common.ResourceProvider, error) {
	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("failed to stat resource directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("resource location %s is not a directory", location)
	}
	if config == nil {
		config = &common.ProviderConfig{}
	}
	p := NewFSProvider(os.DirFS(location), config.Prefix)
	p.Verbose = config.Verbose
	return p, nil
}

// FSProvider opens <prefix>/<table>.csv from an fs.FS.
type FSProvider struct {
	fsys    fs.FS
	prefix  string
	Verbose bool
}

// Ensure FSProvider implements ResourceProvider
var _ common.ResourceProvider = (*FSProvider)(nil)

// NewFSProvider creates a provider reading resources below prefix in fsys.
func NewFSProvider(fsys fs.FS, prefix string) *FSProvider {
	return &FSProvider{fsys: fsys, prefix: prefix}
}

// ResourcePath returns the slash-separated path of the table's resource inside the FS.
func (p *FSProvider) ResourcePath(tableName string) string {
	return path.Join(p.prefix, common.ResourceName(tableName))
}

// OpenResource implements ResourceProvider
func (p *FSProvider) OpenResource(tableName string) (io.ReadCloser, error) {
	name := p.ResourcePath(tableName)
	f, err := p.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrResourceNotFound, name)
		}
		return nil, fmt.Errorf("failed to open resource %s: %w", name, err)
	}
	if p.Verbose {
		log.Printf("[FOODMART] Opened resource %s", name)
	}
	return f, nil
}

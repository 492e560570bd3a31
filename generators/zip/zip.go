// Package zip serves table resources bundled in a zip or jar archive.
package zip

import (
	"archive/zip"
	"fmt"
	"io"
	"log"

	"github.com/darianmavgo/foodmart/generators"
	"github.com/darianmavgo/foodmart/generators/common"
	"github.com/darianmavgo/foodmart/generators/filesystem"
)

// DefaultPrefix is the archive directory holding the CSV resources.
const DefaultPrefix = "csv"

func init() {
	generators.Register("zip", &zipDriver{})
}

type zipDriver struct{}

func (d *zipDriver) Open(location string, config *common.ProviderConfig) (common.ResourceProvider, error) {
	return NewZipProvider(location, config)
}

// ZipProvider reads <prefix>/<table>.csv entries from an archive.
type ZipProvider struct {
	*filesystem.FSProvider
	archive *zip.ReadCloser
}

// Ensure ZipProvider implements ResourceProvider
var _ common.ResourceProvider = (*ZipProvider)(nil)

// Ensure ZipProvider implements io.Closer
var _ io.Closer = (*ZipProvider)(nil)

// NewZipProvider opens the archive at path. An empty config prefix means DefaultPrefix.
func NewZipProvider(path string, config *common.ProviderConfig) (*ZipProvider, error) {
	if config == nil {
		config = &common.ProviderConfig{}
	}
	prefix := config.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	if config.Verbose {
		log.Printf("[FOODMART] Opened archive %s (%d entries, prefix %q)", path, len(archive.File), prefix)
	}

	fsp := filesystem.NewFSProvider(&archive.Reader, prefix)
	fsp.Verbose = config.Verbose
	return &ZipProvider{FSProvider: fsp, archive: archive}, nil
}

// Close closes the archive.
func (z *ZipProvider) Close() error {
	return z.archive.Close()
}

// Package export writes generated brick solids to mesh files in a
// configured export directory.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dvriend/brickforge/pkg/kernel"
)

// Format selects the mesh file format.
type Format string

const (
	FormatSTL Format = "stl"
	Format3MF Format = "3mf"
)

// ParseFormat converts a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "stl", "STL":
		return FormatSTL, nil
	case "3mf", "3MF":
		return Format3MF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Sentinel errors for export operations.
var (
	// ErrExportDir indicates the export directory does not exist.
	// The exporter never creates directories; a missing directory
	// aborts the run.
	ErrExportDir = errors.New("export: export directory does not exist")

	// ErrUnknownFormat indicates an unsupported mesh file format.
	ErrUnknownFormat = errors.New("export: unknown format")
)

// Exporter writes solids to mesh files through a geometry kernel.
type Exporter struct {
	k      kernel.Kernel
	dir    string
	format Format
	log    *slog.Logger
}

// New returns an exporter writing files of the given format into dir.
// It fails up front when dir is missing or not a directory.
func New(k kernel.Kernel, dir string, format Format, log *slog.Logger) (*Exporter, error) {
	if log == nil {
		log = slog.Default()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExportDir, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrExportDir, dir)
	}
	return &Exporter{k: k, dir: dir, format: format, log: log}, nil
}

// Path returns the output path for a brick name.
func (e *Exporter) Path(name string) string {
	return filepath.Join(e.dir, name+"."+string(e.format))
}

// Export renders the solid and writes it to <dir>/<name>.<format>.
// The written path is returned.
func (e *Exporter) Export(name string, s kernel.Solid) (string, error) {
	path := e.Path(name)
	var err error
	switch e.format {
	case FormatSTL:
		err = e.k.SaveSTL(s, path)
	case Format3MF:
		err = e.k.Save3MF(s, path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, e.format)
	}
	if err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	e.log.Info("exported", "name", name, "path", path)
	return path, nil
}

package catalog

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML or JSON catalog document. source names the document
// in error messages.
func Decode(data []byte, source string) (*Catalog, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("catalog: %s is empty", source)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	if err := checkVersion(c.Version, source); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a single catalog file from fsys.
func Load(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, fmt.Errorf("catalog: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Decode(data, path)
}

// LoadFile reads a catalog from the local filesystem.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Decode(data, path)
}

// LoadFS walks fsys and merges every .yaml, .yml and .json document into one
// catalog. Model names must be unique across files.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	merged := &Catalog{Version: SchemaVersion}
	if fsys == nil {
		return merged, nil
	}
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}
		c, err := Load(fsys, path)
		if err != nil {
			return err
		}
		if err := merged.Merge(c); err != nil {
			return fmt.Errorf("%w (file %s)", err, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Encode renders c as YAML with two-space indentation. An empty version is
// written as SchemaVersion.
func Encode(c *Catalog) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog: catalog is nil")
	}
	out := *c
	if out.Version == "" {
		out.Version = SchemaVersion
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("catalog: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("catalog: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

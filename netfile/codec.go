// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Format detection, decoding, encoding and file loading.

package netfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/RonaldPonguillo/mumoro/core"
)

// zstdExt marks a compressed document.
const zstdExt = ".zst"

// FormatOf derives the format from a file name, reporting whether a .zst
// suffix requests decompression.
func FormatOf(path string) (f Format, compressed bool, err error) {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, zstdExt) {
		compressed = true
		name = strings.TrimSuffix(name, zstdExt)
	}
	switch filepath.Ext(name) {
	case ".toml":
		return TOML, compressed, nil
	case ".yaml", ".yml":
		return YAML, compressed, nil
	default:
		return "", compressed, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads a Document in the given format. Unknown keys are rejected.
// An empty YAML stream decodes to an empty Document.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidDocument, undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	return &doc, nil
}

// Encode writes doc in the given format.
func (doc *Document) Encode(w io.Writer, f Format) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Read opens and decodes the document at path, decompressing .zst files.
func Read(path string) (*Document, error) {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("netfile: open zstd stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	doc, err := Decode(r, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Load reads the document at path and builds its graph.
func Load(path string) (*core.Graph, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

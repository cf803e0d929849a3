package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/core"
	"github.com/iglsynth/iglsynth/graphml"
)

// isGraphML reports whether path names a GraphML file.
func isGraphML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphml", ".xml":
		return true
	}

	return false
}

// loadGraph reads a graph file, picking the decoder by extension.
func loadGraph(path string, opts ...core.GraphOption) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if isGraphML(path) {
		g, err := graphml.Read(bytes.NewReader(data), opts...)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return g, nil
	}
	f, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	g, err := core.Unmarshal(data, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return g, nil
}

// encodeGraph encodes g in the format named by name ("json", "graphml", ...).
func encodeGraph(g *core.Graph, name string) ([]byte, error) {
	if strings.EqualFold(strings.TrimPrefix(name, "."), "graphml") || strings.EqualFold(strings.TrimPrefix(name, "."), "xml") {
		var buf bytes.Buffer
		if err := graphml.Write(&buf, g); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	f, err := codec.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	return core.Marshal(g, f)
}

// saveGraph writes g to path in the format named by its extension.
func saveGraph(g *core.Graph, path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return fmt.Errorf("%w: %q has no extension", codec.ErrUnknownFormat, path)
	}
	data, err := encodeGraph(g, ext)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

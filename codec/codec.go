// Package codec encodes entity records in one of the supported wire forms.
//
// The logical field set of a record is fixed by its type; the codec only decides
// the byte representation. JSON and YAML are text forms, MsgPack is binary.
// Decoding errors are reported with entity.ErrMalformedData so callers can treat
// every wire form the same way.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/iglsynth/iglsynth/entity"
)

// Format names a wire encoding.
type Format string

// Supported formats.
const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// ErrUnknownFormat is returned for a format name or file extension that has no codec.
var ErrUnknownFormat = errors.New("codec: unknown format")

// Formats lists the supported formats in a stable order.
func Formats() []Format { return []Format{JSON, YAML, MsgPack} }

// ParseFormat maps a user-facing name ("json", "yml", "mp", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp", "mpk":
		return MsgPack, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Marshal encodes v in format f.
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case JSON:
		return json.MarshalIndent(v, "", "  ")
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("codec: yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("codec: yaml encode: %w", err)
		}

		return buf.Bytes(), nil
	case MsgPack:
		return msgpack.Marshal(v)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Unmarshal decodes data in format f into v (a pointer).
// Structural decode failures wrap entity.ErrMalformedData.
func Unmarshal(f Format, data []byte, v any) error {
	var err error
	switch f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(v)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(v)
	case MsgPack:
		err = msgpack.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", entity.ErrMalformedData, f, err)
	}

	return nil
}

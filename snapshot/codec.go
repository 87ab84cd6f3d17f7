// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gasnet/network"
)

// Format selects the encoding of a Document.
type Format int

const (
	YAML Format = iota
	JSON
	Msgpack
)

// compressedExt marks a zstd-compressed document, e.g. "net.yaml.zst".
const compressedExt = ".zst"

// ErrUnknownFormat indicates an unsupported format name or file extension.
var ErrUnknownFormat = errors.New("snapshot: unknown format")

// String returns the canonical name of f.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case Msgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a format name or file extension ("yaml", ".yml",
// "json", "msgpack", ".mp") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "msgpack", "mp", "msgp":
		return Msgpack, nil
	}

	return 0, errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// FormatOf derives the format of path from its extension and reports
// whether the payload is zstd-compressed.
func FormatOf(path string) (Format, bool, error) {
	compressed := strings.HasSuffix(path, compressedExt)
	if compressed {
		path = strings.TrimSuffix(path, compressedExt)
	}
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return 0, false, err
	}

	return f, compressed, nil
}

// Encode serialises doc in format f.
func Encode(doc Document, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case YAML:
		data, err = yaml.Marshal(doc)
	case JSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case Msgpack:
		data, err = msgpack.Marshal(doc)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "encode %s", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", f)
	}

	return data, nil
}

// Decode parses data in format f.
func Decode(data []byte, f Format) (Document, error) {
	var (
		doc Document
		err error
	)
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case JSON:
		err = json.Unmarshal(data, &doc)
	case Msgpack:
		err = msgpack.Unmarshal(data, &doc)
	default:
		return Document{}, errors.Wrapf(ErrUnknownFormat, "decode %s", f)
	}
	if err != nil {
		return Document{}, errors.Wrapf(err, "decode %s", f)
	}

	return doc, nil
}

// Compress returns data compressed with zstd.
func Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd writer")
	}
	defer enc.Close()

	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd reader")
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, errors.Wrap(err, "zstd decode")
	}

	return out, nil
}

// Marshal captures net and encodes it, compressing when asked.
func Marshal(net *network.Network, f Format, compressed bool) ([]byte, error) {
	data, err := Encode(Capture(net), f)
	if err != nil {
		return nil, err
	}
	if compressed {
		return Compress(data)
	}

	return data, nil
}

// Unmarshal decodes data and restores the network it describes.
func Unmarshal(data []byte, f Format, compressed bool) (*network.Network, error) {
	if compressed {
		var err error
		if data, err = Decompress(data); err != nil {
			return nil, err
		}
	}
	doc, err := Decode(data, f)
	if err != nil {
		return nil, err
	}

	return Restore(doc)
}

// Save writes net to path. The format follows the extension; a trailing
// ".zst" adds zstd compression.
func Save(path string, net *network.Network) error {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(net, f, compressed)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}

	return nil
}

// Load reads the network stored at path by Save.
func Load(path string) (*network.Network, error) {
	f, compressed, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	net, err := Unmarshal(data, f, compressed)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return net, nil
}

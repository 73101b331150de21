// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"
)

// gzipMagic is the two-byte header every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// IOError reports a failure at the file boundary. The triggering
// operation aborts; in-memory state is never touched by a codec
// failure.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("codec: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ReadFile returns the document bytes stored at path. Gzip-compressed
// content is decompressed transparently: detection is by content (the
// gzip magic), not by file name, so a renamed .gz file still loads.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer reader.Close()
	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return decompressed, nil
}

// WriteFile stores data at path, fully overwriting any previous
// content. A ".gz" suffix selects gzip compression on the way out.
// The write is atomic with respect to crashes: data lands in a
// temporary file in the same directory and is renamed over the target.
func WriteFile(path string, data []byte) error {
	payload := data
	if strings.HasSuffix(path, ".gz") {
		var compressed bytes.Buffer
		writer := gzip.NewWriter(&compressed)
		if _, err := writer.Write(data); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
		if err := writer.Close(); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
		payload = compressed.Bytes()
	}

	directory := filepath.Dir(path)
	temporary, err := os.CreateTemp(directory, ".arbor-save-*")
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	temporaryPath := temporary.Name()

	if _, err := temporary.Write(payload); err != nil {
		temporary.Close()
		os.Remove(temporaryPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporaryPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Hash returns the BLAKE3 digest of data in hex. The editor compares
// hashes of serialized documents to answer "has anything changed since
// load" and "did the file change on disk behind us" without keeping a
// second copy of the bytes.
func Hash(data []byte) string {
	digest := blake3.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides convenience functions for reading and writing
// JSON to and from files and streams.
package jsonx

import (
	"encoding/json"
	"io"
	"os"
)

// Open reads the given object from the given filename using JSON encoding.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, fp)
}

// Read reads the given object from the given reader using JSON encoding.
func Read(v any, reader io.Reader) error {
	d := json.NewDecoder(reader)
	return d.Decode(v)
}

// ReadBytes reads the given object from the given bytes using JSON encoding.
func ReadBytes(v any, data []byte) error {
	return json.Unmarshal(data, v)
}

// Save writes the given object to the given filename using JSON encoding.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Write(v, fp)
}

// SaveIndent writes the given object to the given filename using JSON
// encoding with indentation, for human-editable files.
func SaveIndent(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return WriteIndent(v, fp)
}

// Write writes the given object to the given writer using JSON encoding.
func Write(v any, writer io.Writer) error {
	e := json.NewEncoder(writer)
	return e.Encode(v)
}

// WriteIndent writes the given object to the given writer using JSON
// encoding with indentation.
func WriteIndent(v any, writer io.Writer) error {
	e := json.NewEncoder(writer)
	e.SetIndent("", "\t")
	return e.Encode(v)
}

// WriteBytes returns the JSON encoding of the given object.
func WriteBytes(v any) ([]byte, error) {
	return json.Marshal(v)
}

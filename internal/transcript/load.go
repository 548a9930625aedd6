package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadFile reads an export from disk, mapping a missing file to InputNotFoundError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, InputNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// LoadFile reads and decodes an export.
func LoadFile(path string) (Document, error) {
	data, err := ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return DecodeFile(path, data)
}

// DecodeFile decodes data read from path, naming path in syntax errors.
func DecodeFile(path string, data []byte) (Document, error) {
	doc, err := Decode(data)
	if err != nil {
		var malformed MalformedInputError
		if errors.As(err, &malformed) {
			malformed.Path = path
			return Document{}, malformed
		}
		return Document{}, err
	}
	return doc, nil
}

// CheckSyntax reports whether data is well-formed JSON, locating the first
// syntax error by line and column.
func CheckSyntax(data []byte) error {
	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err == nil {
		return nil
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, col := position(data, syntaxErr.Offset)
		return MalformedInputError{Line: line, Column: col, Err: err}
	}
	return MalformedInputError{Err: err}
}

// Decode parses an export held in memory.
func Decode(data []byte) (Document, error) {
	if err := CheckSyntax(data); err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		var fault StructuralFault
		if errors.As(err, &fault) {
			return Document{}, fault
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field := typeErr.Field
			if field == "" {
				field = "value"
			}
			return Document{}, structural(-1, "%s: expected %s, got %s", field, typeErr.Type, typeErr.Value)
		}
		return Document{}, err
	}
	return doc, nil
}

func position(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	col = int(offset) - (bytes.LastIndexByte(prefix, '\n') + 1)
	if col < 1 {
		col = 1
	}
	return line, col
}

package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-context-registry/internal/model"
)

// DecodeError marks malformed input. It is a distinct error kind: decode
// failures are fatal and surface immediately, validation is not attempted.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode reads raw document bytes and produces the decoded structure the
// validator consumes.
func Decode(r io.Reader) (model.ContextDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	var doc model.ContextDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return doc, nil
}

// LoadDocument reads and decodes a context document from a file
func LoadDocument(path string) (model.ContextDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document file: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// DecodeBody reads a schema body definition
func DecodeBody(r io.Reader) (model.SchemaBody, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.SchemaBody{}, fmt.Errorf("failed to read schema body: %w", err)
	}
	var body model.SchemaBody
	if err := json.Unmarshal(data, &body); err != nil {
		return model.SchemaBody{}, &DecodeError{Err: err}
	}
	return body, nil
}

// LoadBody reads and decodes a schema body from a file
func LoadBody(path string) (model.SchemaBody, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.SchemaBody{}, fmt.Errorf("failed to open schema body file: %w", err)
	}
	defer file.Close()
	return DecodeBody(file)
}

package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema string

var ErrSchema = errors.New("schema validation failed")

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchema))
	})
	return schema, schemaErr
}

// Validate checks the structural shape of a serialized document against
// resume.schema.json. Field contents are not validated.
func Validate(data []byte) error {
	return validate(gojsonschema.NewBytesLoader(data))
}

// ValidateMap validates a generic map, as produced by decoding YAML or JSON
// into interface{} values.
func ValidateMap(m map[string]interface{}) error {
	return validate(gojsonschema.NewGoLoader(m))
}

func validate(doc gojsonschema.JSONLoader) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	res, err := s.Validate(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if res.Valid() {
		return nil
	}
	var merr *multierror.Error
	for _, e := range res.Errors() {
		merr = multierror.Append(merr, errors.New(e.String()))
	}
	return fmt.Errorf("%w: %w", ErrSchema, merr.ErrorOrNil())
}

// Decode parses and validates a JSON document.
func Decode(data []byte) (Resume, error) {
	if err := Validate(data); err != nil {
		return Resume{}, err
	}
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return Resume{}, fmt.Errorf("decode resume: %w", err)
	}
	return r.Normalize(), nil
}

// Encode serializes a document as JSON with every collection present.
func Encode(r Resume) ([]byte, error) {
	b, err := json.Marshal(r.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode resume: %w", err)
	}
	return b, nil
}

// Package configfile provides a file-backed ConfigSource: it locates a
// YAML policy file, validates the document against the RawConfig schema,
// and maps it to the engine's raw configuration.
package configfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/typegate-dev/typegate/application/schema"
	"github.com/typegate-dev/typegate/domain/entities"
)

// Source reads policy configuration from a YAML file.
type Source struct {
	path     string
	validate bool
}

// Option configures a Source.
type Option func(*Source)

// WithoutValidation disables schema validation of the document.
func WithoutValidation() Option {
	return func(s *Source) { s.validate = false }
}

// NewSource creates a file-backed configuration source for the given path.
func NewSource(path string, opts ...Option) *Source {
	s := &Source{path: path, validate: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup reads, validates and maps the file. Errors are returned for the
// caller to decide; the engine treats them as "no configuration". An empty
// document yields a nil mapping with no error.
func (s *Source) Lookup() (*entities.RawConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}
	if doc == nil {
		return nil, nil
	}

	// Round-trip through JSON so both validation and mapping see the same
	// value shapes the struct's JSON tags decode.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode policy document: %w", err)
	}

	if s.validate {
		if err := validateDocument(encoded); err != nil {
			return nil, err
		}
	}

	var raw entities.RawConfig
	if err := json.Unmarshal(encoded, &raw); err != nil {
		return nil, fmt.Errorf("map policy config: %w", err)
	}
	return &raw, nil
}

// validateDocument checks the encoded document against the schema
// generated from the RawConfig struct.
func validateDocument(encoded []byte) error {
	generated, err := schema.GenerateSchema(entities.RawConfig{})
	if err != nil {
		return fmt.Errorf("generate config schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("policy-config.json", bytes.NewReader(generated)); err != nil {
		return fmt.Errorf("add config schema: %w", err)
	}
	sch, err := compiler.Compile("policy-config.json")
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	var obj any
	if err := json.Unmarshal(encoded, &obj); err != nil {
		return fmt.Errorf("decode policy document: %w", err)
	}
	if err := sch.Validate(obj); err != nil {
		return fmt.Errorf("invalid policy config: %w", err)
	}
	return nil
}

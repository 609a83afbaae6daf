// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed catalog.schema.json
var schemaData []byte

// Validator checks decoded catalog documents against the embedded schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded catalog schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("catalog.json", strings.NewReader(string(schemaData))); err != nil {
		return nil, fmt.Errorf("add embedded schema resource: %w", err)
	}

	schema, err := compiler.Compile("catalog.json")
	if err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}

	return &Validator{schema: schema}, nil
}

// Validate checks a decoded JSON document (the result of unmarshalling
// into any). A nil return means the document matches the catalog schema.
func (v *Validator) Validate(document any) error {
	err := v.schema.Validate(document)
	if err == nil {
		return nil
	}

	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var messages []string

		collectErrors(validationErr, &messages)

		return fmt.Errorf("%w:\n%s", ErrSchema, strings.Join(messages, "\n"))
	}

	return fmt.Errorf("%w: %w", ErrSchema, err)
}

// collectErrors flattens the validation error tree into per-location lines.
func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if err.InstanceLocation != "" {
		*messages = append(*messages, fmt.Sprintf("- %s: %s", err.InstanceLocation, err.Message))
	}

	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// FieldDefinition decodes one raw JSON value into the record it was created for.
type FieldDefinition func(raw any) error

// PaymillObject is implemented by every record returned by the PAYMILL API.
type PaymillObject interface {
	// FieldDefinitions returns decoders for fields that need more than a verbatim copy.
	FieldDefinitions() map[string]FieldDefinition
	// UpdateableFields lists the fields the API accepts on an update request.
	UpdateableFields() []string
}

// Identifier is anything that can stand in for a PAYMILL object id.
type Identifier interface {
	GetID() string
}

// Load fills obj from a generic JSON mapping. Fields without a definition are copied
// verbatim through their json tags.
func Load(obj PaymillObject, data map[string]any) error {
	defs := obj.FieldDefinitions()

	plain := make(map[string]any, len(data))
	for key, value := range data {
		if _, ok := defs[key]; !ok {
			plain[key] = value
		}
	}
	raw, err := json.Marshal(plain)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return err
	}

	for name, def := range defs {
		value, ok := data[name]
		if !ok {
			continue
		}
		if err := def(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Decode parses a JSON object and loads it into obj. Numbers are kept as json.Number
// so 64-bit amounts and timestamps survive intact.
func Decode(obj PaymillObject, body []byte) error {
	var data map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return err
	}
	return Load(obj, data)
}

// UpdateParams returns the current values of obj's updateable fields, keyed by field name.
func UpdateParams(obj PaymillObject) (map[string]any, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var all map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}

	params := make(map[string]any)
	for _, field := range obj.UpdateableFields() {
		if value, ok := all[field]; ok {
			params[field] = value
		}
	}
	return params, nil
}

// RestrictToUpdateable checks that every key in fields is updateable on obj and returns a copy.
func RestrictToUpdateable(obj PaymillObject, fields map[string]any) (map[string]any, error) {
	allowed := make(map[string]struct{})
	for _, field := range obj.UpdateableFields() {
		allowed[field] = struct{}{}
	}

	params := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, ok := allowed[key]; !ok {
			return nil, NewPMError(WrongParams, fmt.Sprintf("field %q cannot be updated", key))
		}
		params[key] = value
	}
	return params, nil
}

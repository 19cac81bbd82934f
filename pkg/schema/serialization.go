package schema

import (
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a definition file. YAML is the canonical format;
// JSON documents parse too since the YAML parser accepts them.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a definition document. Unknown keys are an error, so a
// typo in a field name surfaces instead of silently dropping the field.
// Parse does not validate; call Definition.Validate afterwards.
func Parse(data []byte) (*Definition, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
		DecodeHook:  shorthandHook,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	return &def, nil
}

// shorthandHook lets authors write bare strings for states and events
// ("states: [small, dead]") instead of the full mapping form.
func shorthandHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to {
	case reflect.TypeOf(State{}):
		return State{ID: data.(string)}, nil
	case reflect.TypeOf(Event{}):
		return Event{ID: data.(string)}, nil
	}
	return data, nil
}

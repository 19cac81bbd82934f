package schema

import "fmt"

// Type defines the contract for context field validation. Implementations
// decide whether a default value conforms to the declared field type.
type Type interface {
	// Name returns the human-readable name of the type (e.g. "string").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// TypeOf resolves a declared type name to its validator.
func TypeOf(name string) (Type, bool) {
	t, ok := builtins[name]
	return t, ok
}

var builtins = map[string]Type{
	"string": &StringType{},
	"int":    &IntType{},
	"float":  &FloatType{},
	"bool":   &BoolType{},
}

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	case float64:
		// JSON unmarshaling produces float64; accept whole numbers.
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType validates floating-point values (integers promote).
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int, int8, int16, int32, int64:
		return nil
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

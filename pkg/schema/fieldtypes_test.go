package schema

import "testing"

func TestTypeOf(t *testing.T) {
	for _, name := range []string{"string", "int", "float", "bool"} {
		typ, ok := TypeOf(name)
		if !ok {
			t.Fatalf("TypeOf(%q) not found", name)
		}
		if typ.Name() != name {
			t.Errorf("expected name %q, got %q", name, typ.Name())
		}
	}
	if _, ok := TypeOf("uuid"); ok {
		t.Error("TypeOf should not know 'uuid'")
	}
}

func TestIntType_AcceptsWholeFloats(t *testing.T) {
	typ, _ := TypeOf("int")

	// JSON decoding yields float64 for numbers.
	if err := typ.Validate(float64(42)); err != nil {
		t.Errorf("whole float should pass: %v", err)
	}
	if err := typ.Validate(float64(4.2)); err == nil {
		t.Error("fractional float should fail")
	}
}

func TestFloatType_PromotesInts(t *testing.T) {
	typ, _ := TypeOf("float")

	if err := typ.Validate(3); err != nil {
		t.Errorf("int should promote to float: %v", err)
	}
	if err := typ.Validate("3.0"); err == nil {
		t.Error("string should fail float validation")
	}
}

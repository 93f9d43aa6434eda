package validation

import "testing"

func TestValidate_RequiredFields(t *testing.T) {
	for _, kind := range []Kind{KindText, KindEmail, KindPhone, KindNumber, KindSelect} {
		for _, value := range []string{"", "   ", "\t"} {
			res := Validate(Field{Name: "f", Kind: kind, Value: value, Required: true})
			if res.Valid {
				t.Errorf("kind %s with blank value %q should be invalid", kind, value)
			}
			if res.Message != "This field is required" {
				t.Errorf("kind %s: unexpected message %q", kind, res.Message)
			}
		}
	}
}

func TestValidate_OptionalEmptyIsValid(t *testing.T) {
	res := Validate(Field{Name: "hba1c", Kind: KindNumber, Value: "", Min: 3, Max: 20, HasRange: true})
	if !res.Valid {
		t.Errorf("optional empty field should be valid, got %q", res.Message)
	}
}

func TestValidate_EmailShapes(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"user@example", false},
		{"user example@domain.com", false},
		{"user@@domain.com", false},
		{"@domain.com", false},
		{"user@", false},
		{"plainstring", false},
	}
	for _, tt := range tests {
		res := Validate(Field{Name: "email", Kind: KindEmail, Value: tt.email, Required: true})
		if res.Valid != tt.valid {
			t.Errorf("email %q: valid = %v, want %v", tt.email, res.Valid, tt.valid)
		}
		if !tt.valid && res.Message != "Please enter a valid email address" {
			t.Errorf("email %q: unexpected message %q", tt.email, res.Message)
		}
	}
}

func TestValidate_PhoneDigitCount(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"9876543210", true},
		{"+91 98765 43210", true},
		{"(987) 654-3210", true},
		{"987654321", false},
		{"12-34", false},
		{"abcdefghij", false},
	}
	for _, tt := range tests {
		res := Validate(Field{Name: "mobile", Kind: KindPhone, Value: tt.phone, Required: true})
		if res.Valid != tt.valid {
			t.Errorf("phone %q: valid = %v, want %v", tt.phone, res.Valid, tt.valid)
		}
	}
}

func TestValidate_NumberBounds(t *testing.T) {
	field := Field{Name: "height", Kind: KindNumber, Required: true, Min: 100, Max: 250, HasRange: true}

	for _, value := range []string{"100", "170", "250", "170.5"} {
		field.Value = value
		if res := Validate(field); !res.Valid {
			t.Errorf("value %q should be within bounds, got %q", value, res.Message)
		}
	}
	for _, value := range []string{"99", "251", "0", "-170", "tall"} {
		field.Value = value
		res := Validate(field)
		if res.Valid {
			t.Errorf("value %q should be out of bounds", value)
		}
		if res.Message != "Please enter a value between 100 and 250" {
			t.Errorf("value %q: unexpected message %q", value, res.Message)
		}
	}
}

func TestValidate_SelectRequiresChoice(t *testing.T) {
	if res := Validate(Field{Name: "program", Kind: KindSelect, Value: "", Required: true}); res.Valid {
		t.Error("required select with no choice should be invalid")
	}
	if res := Validate(Field{Name: "program", Kind: KindSelect, Value: "diabetes-plus", Required: true}); !res.Valid {
		t.Errorf("non-empty selection should be valid, got %q", res.Message)
	}
}

package validator

import "testing"

func TestISBN(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid ISBN-13", "9780306406157", true},
		{"valid ISBN-13 with hyphens", "978-0-306-40615-7", true},
		{"valid ISBN-10", "0306406152", true},
		{"valid ISBN-10 with X check digit", "097522980X", true},
		{"ISBN-13 with bad check digit", "9780306406158", false},
		{"ISBN-10 with bad check digit", "0306406153", false},
		{"X in the middle", "03064X6152", false},
		{"too short", "123456789", false},
		{"too long", "97803064061570", false},
		{"letters", "ABCDEFGHIJKLM", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ISBN(tt.value); got != tt.want {
				t.Errorf("ISBN(%q) = %v; want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidator(t *testing.T) {
	v := New()
	if !v.Valid() {
		t.Error("new validator should be valid")
	}
	v.Check(false, "title", "must be provided")
	v.Check(false, "title", "must not be more than 200 bytes long")
	if v.Valid() {
		t.Error("validator with errors should not be valid")
	}
	if v.Errors["title"] != "must be provided" {
		t.Errorf("first error message should win; got %q", v.Errors["title"])
	}
}

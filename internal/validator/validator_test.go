package validator

import "testing"

func TestValidateDate(t *testing.T) {
	if err := ValidateDate("2024-03-01"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	for _, raw := range []string{"", "03/01/2024", "2024-13-01", "2024-03-01T10:00:00Z"} {
		if err := ValidateDate(raw); err == nil {
			t.Fatalf("ValidateDate(%q) expected error", raw)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("   ") {
		t.Fatal("whitespace should be blank")
	}
	if IsBlank(" a ") {
		t.Fatal("non-empty value reported blank")
	}
}

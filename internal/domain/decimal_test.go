package domain

import (
	"encoding/json"
	"testing"
)

// --- Constructor Tests ---

func TestNewDecimalFromInt(t *testing.T) {
	testCases := []struct {
		name     string
		value    int64
		expected string
	}{
		{"zero", 0, "0"},
		{"positive", 100, "100"},
		{"negative", -50, "-50"},
		{"large", 1000000, "1000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecimalFromInt(tc.value)
			if d.String() != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, d.String())
			}
		})
	}
}

func TestNewDecimalFromString(t *testing.T) {
	testCases := []struct {
		name        string
		value       string
		expectError bool
		expected    string
	}{
		{"valid integer", "100", false, "100"},
		{"valid decimal", "123.45", false, "123.45"},
		{"valid price", "150.12", false, "150.12"},
		{"negative", "-0.01", false, "-0.01"},
		{"empty string", "", true, ""},
		{"not a number", "abc", true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDecimalFromString(tc.value)
			if tc.expectError {
				if err == nil {
					t.Fatalf("expected error for %q, got none", tc.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.String() != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, d.String())
			}
		})
	}
}

// --- Arithmetic Tests ---

func TestDecimal_Mul_Exact(t *testing.T) {
	// Fixed-point price times an integer quantity must not drift.
	price, err := NewDecimalFromString("150.12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total, err := price.Mul(NewDecimalFromInt(3))
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}

	if total.String() != "450.36" {
		t.Errorf("expected 450.36, got %s", total.String())
	}
}

func TestDecimal_AddSub(t *testing.T) {
	a, _ := NewDecimalFromString("10.50")
	b, _ := NewDecimalFromString("0.25")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if sum.String() != "10.75" {
		t.Errorf("expected 10.75, got %s", sum.String())
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if diff.String() != "10.25" {
		t.Errorf("expected 10.25, got %s", diff.String())
	}
}

func TestDecimal_IsPositive(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected bool
	}{
		{"positive", "0.01", true},
		{"zero", "0", false},
		{"negative", "-1", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewDecimalFromString(tc.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.IsPositive() != tc.expected {
				t.Errorf("IsPositive(%s): expected %v, got %v", tc.value, tc.expected, d.IsPositive())
			}
		})
	}
}

// --- JSON Tests ---

func TestDecimal_MarshalJSON(t *testing.T) {
	d, _ := NewDecimalFromString("150.12")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if string(data) != "150.12" {
		t.Errorf("expected 150.12, got %s", string(data))
	}
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare number", "150.12", "150.12"},
		{"quoted number", `"150.12"`, "150.12"},
		{"integer", "7", "7"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var d Decimal
			if err := json.Unmarshal([]byte(tc.input), &d); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if d.String() != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, d.String())
			}
		})
	}
}

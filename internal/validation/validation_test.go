package validation

import "testing"

func TestParseHint(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int
		valid bool
	}{
		{"absent defaults to zero", "", 0, true},
		{"zero", "0", 0, true},
		{"one", "1", 1, true},
		{"two", "2", 2, true},
		{"three", "3", 3, true},
		{"four", "4", 4, true},
		{"five rejected", "5", 0, false},
		{"negative rejected", "-1", 0, false},
		{"non-integer rejected", "abc", 0, false},
		{"float rejected", "2.5", 0, false},
		{"whitespace rejected", " 2", 0, false},
		{"plus sign accepted by Atoi", "+3", 3, true},
		{"huge value rejected", "999999999999999999999", 0, false},
		{"hex rejected", "0x2", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := ParseHint(tt.raw)
			if valid != tt.valid {
				t.Fatalf("ParseHint(%q) valid = %v, want %v", tt.raw, valid, tt.valid)
			}
			if valid && got != tt.want {
				t.Errorf("ParseHint(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"000", true},
		{"635", true},
		{"999", true},
		{"63", false},
		{"6350", false},
		{"", false},
		{"63a", false},
		{"-63", false},
		{"6 3", false},
	}

	for _, tt := range tests {
		if got := ValidateCode(tt.code); got != tt.want {
			t.Errorf("ValidateCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

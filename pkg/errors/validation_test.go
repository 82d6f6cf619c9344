package errors

import (
	"testing"
)

func TestValidatePunctuationSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
	}{
		{"period", ".", '.', false},
		{"exclamation", "!", '!', false},
		{"em dash", "—", '—', false},
		{"colon", ":", ':', false},

		{"empty", "", 0, true},
		{"two chars", "?!", 0, true},
		{"letter", "a", 0, true},
		{"digit", "7", 0, true},
		{"space", " ", 0, true},
		{"tab", "\t", 0, true},
		{"control", "\x01", 0, true},
		{"invalid utf8", "\xff", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePunctuationSymbol(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePunctuationSymbol(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidPunctuation) {
					t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPunctuation)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ValidatePunctuationSymbol(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePunctuationName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "period", false},
		{"hyphenated", "semi-colon", false},
		{"underscore and digits", "full_stop2", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 100)), true},
		{"space", "full stop", true},
		{"newline", "comma\n", true},
		{"quote", `x"onmouseover="alert(1)`, true},
		{"markup", "<b>", true},
		{"ampersand", "a&b", true},
		{"css selector", "a.b", true},
		{"non-ascii", "punto-é", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePunctuationName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePunctuationName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

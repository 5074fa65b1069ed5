package errors

import (
	"strings"
	"testing"
)

func TestValidateClassString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"typical", "fixed bottom-4 right-4 h-16 w-16", false},
		{"arbitrary values", "hover:drop-shadow-[0_0_0.5em_#646cffaa] max-w-[250px]", false},
		{"tabs and newlines", "fixed\tbottom-0\nm-2", false},
		{"too long", strings.Repeat("a", MaxClassLength+1), true},
		{"at limit", strings.Repeat("a", MaxClassLength), false},
		{"null byte", "fixed\x00", true},
		{"escape char", "fixed\x1b[31m", true},
		{"angle bracket", "fixed<script>", true},
		{"quote", `fixed" onload="x`, true},
		{"single quote", "fixed'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClassString(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClassString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://kimjansheden.se", false},
		{"http://localhost:8080", false},
		{"", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if err := ValidateURL(tt.url); (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

package errors

import (
	"testing"
)

func TestValidateFormats(t *testing.T) {
	allowed := []string{"svg", "png", "json"}
	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"multiple", []string{"svg", "json"}, false},

		{"empty", nil, true},
		{"unknown", []string{"gif"}, true},
		{"one unknown", []string{"svg", "bmp"}, true},
		{"case sensitive", []string{"SVG"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("expected INVALID_FORMAT, got %v", GetCode(err))
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out/bubble.svg", false},
		{"valid absolute", "/tmp/bubble.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name               string
		width, height, gap int
		wantErr            bool
	}{
		{"defaults", 800, 600, 2, false},
		{"no gap", 100, 100, 0, false},
		{"zero width", 0, 600, 2, true},
		{"negative height", 800, -1, 2, true},
		{"negative gap", 800, 600, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height, tt.gap)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

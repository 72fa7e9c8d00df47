package errors

import (
	"math"
	"testing"
)

func TestValidateFootprint(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantErr       bool
	}{
		{"valid apartment", 20, 15, false},
		{"valid square", 10, 10, false},
		{"valid minimum", 3, 3, false},

		{"zero width", 0, 10, true},
		{"zero height", 10, 0, true},
		{"negative", -5, 10, true},
		{"below minimum", 2.9, 10, true},
		{"nan", math.NaN(), 10, true},
		{"inf", math.Inf(1), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFootprint(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFootprint(%v, %v) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFootprint) {
				t.Errorf("ValidateFootprint(%v, %v) returned wrong error code: %v", tt.width, tt.height, err)
			}
		})
	}
}

func TestValidateRoomCount(t *testing.T) {
	tests := []struct {
		name     string
		roomType string
		count    int
		wantErr  bool
	}{
		{"valid single", "living_room", 1, false},
		{"valid several", "bedroom", 3, false},
		{"valid zero", "study", 0, false},
		{"valid maximum", "storage", 20, false},

		{"empty type", "", 1, true},
		{"negative", "bedroom", -1, true},
		{"over maximum", "bedroom", 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoomCount(tt.roomType, tt.count)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoomCount(%q, %d) error = %v, wantErr %v", tt.roomType, tt.count, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRequirement) {
				t.Errorf("ValidateRoomCount(%q, %d) returned wrong error code: %v", tt.roomType, tt.count, err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "out/layout.json", false},
		{"valid nested", "runs/2024/plan-01.json", false},
		{"valid filename only", "layout.json", false},
		{"valid absolute", "/tmp/layout.json", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"path traversal", "../../../etc/passwd", true},
		{"path traversal middle", "foo/../bar", true},
		{"null byte", "foo\x00bar", true},
		{"backslash", "foo\\bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidConfig,
		ErrCodeInvalidFootprint,
		ErrCodeInvalidRequirement,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

package errors

import (
	"math"
	"strings"
	"unicode"
)

// minFootprintSide is the smallest footprint dimension that can hold
// any template-sized room plus wall margins.
const minFootprintSide = 3.0

// ValidateFootprint validates a rectangular footprint's dimensions.
//
// Validation rules:
//   - Both dimensions must be finite
//   - Both dimensions must be at least 3 meters
func ValidateFootprint(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidFootprint, "footprint dimensions must be finite")
	}
	if width < minFootprintSide || height < minFootprintSide {
		return New(ErrCodeInvalidFootprint,
			"footprint %.1fx%.1f is too small (minimum %.0fx%.0f)",
			width, height, minFootprintSide, minFootprintSide)
	}
	return nil
}

// ValidateRoomCount validates a requested count for one room type.
// Counts are capped to keep generated layouts tractable.
func ValidateRoomCount(roomType string, count int) error {
	if roomType == "" {
		return New(ErrCodeInvalidRequirement, "room type cannot be empty")
	}
	if count < 0 {
		return New(ErrCodeInvalidRequirement, "%s: count cannot be negative", roomType)
	}
	const maxPerType = 20
	if count > maxPerType {
		return New(ErrCodeInvalidRequirement, "%s: count %d exceeds maximum %d", roomType, count, maxPerType)
	}
	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

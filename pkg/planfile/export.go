// Package planfile provides JSON import and export for floor-plan layouts.
//
// # Overview
//
// This package serializes layouts to and from a simple JSON document. The
// format is designed for:
//
//   - Handing optimized layouts to external renderers and CAD tooling
//   - Re-scoring a stored layout with different evaluation weights
//   - Caching finished runs for faster repeated invocations
//   - Round-trip preservation: export, re-import, and re-export identically
//
// # JSON Format
//
//	{
//	  "bounds": {"x": 0, "y": 0, "width": 20, "height": 15},
//	  "rooms": [
//	    {"id": 0, "type": "living_room", "bounds": {"x": 1, "y": 1, "width": 6, "height": 5}}
//	  ],
//	  "corridors": [],
//	  "score": 0.74,
//	  "meta": {"run_id": "..."}
//	}
//
// Room openings (doors, windows) and furniture are carried when present.
// The meta object can contain any data; the pipeline records the run ID,
// seed, and generation statistics there.
package planfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/planforge/pkg/plan"
)

// WriteJSON encodes a layout as JSON and writes it to w.
// The output includes the footprint, all rooms with their openings and
// furniture, corridors, the score, and metadata. This format can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(l *plan.Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a layout to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(l *plan.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(l, f)
}

package planfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/planforge/pkg/plan"
)

// ReadJSON decodes a JSON layout from r.
//
// The input must be a JSON object with a "bounds" rectangle and a "rooms"
// array. Optional fields:
//   - corridors: array of rectangles
//   - score: the last evaluation result (defaults to 0)
//   - meta: object with arbitrary key-value pairs
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - The footprint has a non-positive dimension
//   - A room has a duplicate ID or an unrecognized type
//
// Errors are wrapped with context describing which room caused the
// problem. The returned layout is independent of r and can be modified
// safely after ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*plan.Layout, error) {
	var data plan.Layout
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if data.Bounds.Width <= 0 || data.Bounds.Height <= 0 {
		return nil, fmt.Errorf("bounds %gx%g: dimensions must be positive", data.Bounds.Width, data.Bounds.Height)
	}

	layout := plan.NewLayout(data.Bounds)
	layout.Score = data.Score
	for key, value := range data.Meta {
		layout.Meta[key] = value
	}
	layout.Corridors = data.Corridors

	seen := make(map[int]bool, len(data.Rooms))
	for _, room := range data.Rooms {
		if seen[room.ID] {
			return nil, fmt.Errorf("room %d: duplicate id", room.ID)
		}
		seen[room.ID] = true
		if !slices.Contains(plan.AllRoomTypes, room.Type) {
			return nil, fmt.Errorf("room %d: unknown type %q", room.ID, room.Type)
		}
		layout.AttachRoom(room)
	}

	return layout, nil
}

// ImportJSON reads a JSON file at path and returns the decoded layout.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. If the file cannot be opened, or if decoding fails, ImportJSON
// returns an error describing the failure. The error wraps the underlying
// cause with the file path for context.
func ImportJSON(path string) (*plan.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	layout, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return layout, nil
}

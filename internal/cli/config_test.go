package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/plan"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
seed = 7
workers = 2

[footprint]
width = 20.0
height = 15.0

[rooms]
living_room = 1
bedroom = 2
kitchen = 1

[search]
max_iterations = 500
population_size = 30

[evaluation]
space_efficiency_weight = 0.5
lighting_weight = 0.5
`)

	opts, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if opts.Width != 20 || opts.Height != 15 {
		t.Errorf("footprint = %vx%v, want 20x15", opts.Width, opts.Height)
	}
	if got := opts.Rooms[plan.Bedroom]; got != 2 {
		t.Errorf("bedrooms = %d, want 2", got)
	}
	if opts.Search.MaxIterations != 500 {
		t.Errorf("max iterations = %d, want 500", opts.Search.MaxIterations)
	}
	if opts.Search.PopulationSize != 30 {
		t.Errorf("population = %d, want 30", opts.Search.PopulationSize)
	}
	if opts.Evaluation.SpaceEfficiencyWeight != 0.5 {
		t.Errorf("space weight = %v, want 0.5", opts.Evaluation.SpaceEfficiencyWeight)
	}
	if opts.Seed != 7 {
		t.Errorf("seed = %d, want 7", opts.Seed)
	}
	if opts.Workers != 2 {
		t.Errorf("workers = %d, want 2", opts.Workers)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "[footprint\nwidth = ")
	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLoadConfigUnknownRoomType(t *testing.T) {
	path := writeConfig(t, `
[footprint]
width = 20.0
height = 15.0

[rooms]
ballroom = 1
`)
	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidRequirement) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidRequirement)
	}
}

func TestParseRooms(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[plan.RoomType]int
		wantErr bool
	}{
		{
			name:  "single room",
			input: "living_room=1",
			want:  map[plan.RoomType]int{plan.LivingRoom: 1},
		},
		{
			name:  "multiple rooms",
			input: "living_room=1,bedroom=2,kitchen=1",
			want: map[plan.RoomType]int{
				plan.LivingRoom: 1,
				plan.Bedroom:    2,
				plan.Kitchen:    1,
			},
		},
		{
			name:  "spaces tolerated",
			input: " bedroom = 2 , bathroom = 1 ",
			want:  map[plan.RoomType]int{plan.Bedroom: 2, plan.Bathroom: 1},
		},
		{
			name:  "repeated type accumulates",
			input: "bedroom=1,bedroom=2",
			want:  map[plan.RoomType]int{plan.Bedroom: 3},
		},
		{
			name:    "missing equals",
			input:   "bedroom",
			wantErr: true,
		},
		{
			name:    "unknown type",
			input:   "ballroom=1",
			wantErr: true,
		},
		{
			name:    "non-numeric count",
			input:   "bedroom=two",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRooms(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseRooms(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRooms(%q) error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseRooms(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for roomType, count := range tt.want {
				if got[roomType] != count {
					t.Errorf("parseRooms(%q)[%s] = %d, want %d", tt.input, roomType, got[roomType], count)
				}
			}
		})
	}
}

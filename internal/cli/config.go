package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/evaluate"
	"github.com/matzehuels/planforge/pkg/optimize"
	"github.com/matzehuels/planforge/pkg/pipeline"
	"github.com/matzehuels/planforge/pkg/plan"
)

// runConfig is the on-disk TOML representation of a pipeline run.
//
//	[footprint]
//	width = 20.0
//	height = 15.0
//
//	[rooms]
//	living_room = 1
//	bedroom = 2
//
//	[search]
//	max_iterations = 2000
//	population_size = 50
//
//	[evaluation]
//	space_efficiency_weight = 0.25
type runConfig struct {
	Footprint  footprintConfig `toml:"footprint"`
	Rooms      map[string]int  `toml:"rooms"`
	Search     optimize.Config `toml:"search"`
	Evaluation evaluate.Config `toml:"evaluation"`
	Seed       uint64          `toml:"seed"`
	Workers    int             `toml:"workers"`
}

type footprintConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// loadConfig reads a TOML run configuration and converts it into pipeline
// options. Fields absent from the file stay zero and pick up pipeline
// defaults during validation.
func loadConfig(path string) (pipeline.Options, error) {
	var opts pipeline.Options

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg runConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	opts.Width = cfg.Footprint.Width
	opts.Height = cfg.Footprint.Height
	opts.Search = cfg.Search
	opts.Evaluation = cfg.Evaluation
	opts.Seed = cfg.Seed
	opts.Workers = cfg.Workers

	if len(cfg.Rooms) > 0 {
		opts.Rooms = make(map[plan.RoomType]int, len(cfg.Rooms))
		for name, count := range cfg.Rooms {
			roomType, err := roomTypeFromName(name)
			if err != nil {
				return opts, err
			}
			opts.Rooms[roomType] = count
		}
	}

	return opts, nil
}

package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/buildinfo"
	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/pipeline"
	"github.com/matzehuels/planforge/pkg/plan"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "planforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "planforge",
		Short:        "Planforge searches for good residential floor plans",
		Long:         `Planforge is a CLI tool for generating and optimizing residential floor-plan layouts: it places typed rooms into a rectangular footprint, searches for high-scoring arrangements, and scores them across space, lighting, ventilation, circulation, and comfort.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.evaluateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	runCache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(runCache, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/planforge/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseRooms parses a comma-separated room specification like
// "living_room=1,bedroom=2" into a requirement map.
func parseRooms(s string) (map[plan.RoomType]int, error) {
	if s == "" {
		return nil, nil
	}
	rooms := make(map[plan.RoomType]int)
	for _, part := range strings.Split(s, ",") {
		name, countStr, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return nil, errors.New(errors.ErrCodeInvalidRequirement, "room spec %q must look like type=count", part)
		}
		roomType, err := roomTypeFromName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidRequirement, "%s: count %q is not a number", name, countStr)
		}
		rooms[roomType] += count
	}
	return rooms, nil
}

// roomTypeFromName maps a CLI room name onto a known room type.
func roomTypeFromName(name string) (plan.RoomType, error) {
	candidate := plan.RoomType(strings.ToLower(name))
	for _, t := range plan.AllRoomTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidRequirement, "unknown room type %q", name)
}

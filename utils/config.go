package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// SidePanelWidth is the strip at the right edge of the window reserved for the
// status lamp and text, which the board must not reach into
const SidePanelWidth = 200

// Config holds the configuration for the board
type Config struct {
	Columns        int           `json:"columns"`
	Rows           int           `json:"rows"`
	CellSize       int           `json:"cell_size"`
	WindowWidth    int           `json:"window_width"`
	WindowHeight   int           `json:"window_height"`
	TPS            int           `json:"tps"`
	FrameRate      time.Duration `json:"frame_rate"`
	Workers        int           `json:"workers"`
	RandomDensity  float64       `json:"random_density"`
	NoiseSeed      int64         `json:"noise_seed"`
	MaxGenerations int           `json:"max_generations"`
	Headless       bool          `json:"headless"`
}

// DefaultConfig returns a 40x40 board of 10px cells in an 800x600 window
func DefaultConfig() Config {
	return Config{
		Columns:        40,
		Rows:           40,
		CellSize:       10,
		WindowWidth:    800,
		WindowHeight:   600,
		TPS:            60,
		FrameRate:      150 * time.Millisecond,
		Workers:        1,
		RandomDensity:  0.35,
		NoiseSeed:      1,
		MaxGenerations: 0,
		Headless:       false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a usable board
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0 || c.Rows <= 0:
		return errors.Errorf("grid must have positive dimensions, got %dx%d", c.Columns, c.Rows)
	case c.CellSize <= 0:
		return errors.Errorf("cell_size must be positive, got %d", c.CellSize)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Errorf("window must have positive dimensions, got %dx%d", c.WindowWidth, c.WindowHeight)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.FrameRate <= 0:
		return errors.Errorf("frame_rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Columns*c.CellSize > c.WindowWidth-SidePanelWidth:
		return errors.Errorf("board is %dpx wide, window_width %d leaves %dpx beside the side panel",
			c.Columns*c.CellSize, c.WindowWidth, c.WindowWidth-SidePanelWidth)
	case c.Rows*c.CellSize > c.WindowHeight:
		return errors.Errorf("board is %dpx tall, window_height is %d", c.Rows*c.CellSize, c.WindowHeight)
	}
	return nil
}

package wtree

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings of a DUI. Sizes are in lowDPI pixels, scaled for DPI.
type Config struct {
	DPI           int     `toml:"dpi"`
	ScrollbarSize int     `toml:"scrollbar_size"`
	GutterSize    int     `toml:"gutter_size"` // Width of split gutters and dock resizers.
	HandleSize    int     `toml:"handle_size"` // Slider handles.
	DockMin       float64 `toml:"dock_min"`    // Minimum fraction of the perpendicular extent for a dock band.
	DockMax       float64 `toml:"dock_max"`    // Maximum fraction.
	ScrollStep    int     `toml:"scroll_step"` // Pixels per arrow key or wheel step.
	PageStep      int     `toml:"page_step"`   // Pixels per page key, or click on the scrollbar track.
	RepeatMillis  int     `toml:"repeat_ms"`   // Interval for repeating while a scrollbar button is held.
	SettingsPath  string  `toml:"settings_path"`

	DebugLayout int  `toml:"debug_layout"` // If >0, log each measure/arrange.
	DebugDraw   int  `toml:"debug_draw"`   // If >0, log each draw.
	LogInputs   bool `toml:"log_inputs"`
	LogTiming   bool `toml:"log_timing"`
}

// DefaultConfig returns the configuration used for missing values.
func DefaultConfig() Config {
	return Config{
		DPI:           100,
		ScrollbarSize: 10,
		GutterSize:    4,
		HandleSize:    12,
		DockMin:       0.10,
		DockMax:       0.40,
		ScrollStep:    50,
		PageStep:      200,
		RepeatMillis:  100,
	}
}

// LoadConfig reads a TOML config file over the defaults. A missing file
// results in the default config.
func LoadConfig(path string) (config Config, rerr error) {
	config = DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	check, handle := fileErrors(path, &rerr)
	defer handle()

	check(err, "failed to read")
	check(toml.Unmarshal(data, &config), "failed to parse")
	check(config.Check(), "invalid config")
	return config, nil
}

// withDefaults returns c with zero values replaced by those of DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	for _, f := range []struct{ v, def *int }{
		{&c.DPI, &def.DPI},
		{&c.ScrollbarSize, &def.ScrollbarSize},
		{&c.GutterSize, &def.GutterSize},
		{&c.HandleSize, &def.HandleSize},
		{&c.ScrollStep, &def.ScrollStep},
		{&c.PageStep, &def.PageStep},
		{&c.RepeatMillis, &def.RepeatMillis},
	} {
		if *f.v == 0 {
			*f.v = *f.def
		}
	}
	if c.DockMin == 0 {
		c.DockMin = def.DockMin
	}
	if c.DockMax == 0 {
		c.DockMax = def.DockMax
	}
	return c
}

// Check returns an error for invalid values.
func (c Config) Check() error {
	switch {
	case c.DPI <= 0:
		return fmt.Errorf("dpi must be positive")
	case c.ScrollbarSize < 0 || c.GutterSize < 0 || c.HandleSize <= 0:
		return fmt.Errorf("sizes must not be negative, handle size must be positive")
	case !(c.DockMin > 0 && c.DockMin <= c.DockMax && c.DockMax <= 1):
		return fmt.Errorf("need 0 < dock_min <= dock_max <= 1, got %v and %v", c.DockMin, c.DockMax)
	case c.ScrollStep <= 0 || c.PageStep <= 0:
		return fmt.Errorf("scroll steps must be positive")
	case c.RepeatMillis <= 0:
		return fmt.Errorf("repeat_ms must be positive")
	}
	return nil
}

func (c Config) repeat() time.Duration {
	return time.Duration(c.RepeatMillis) * time.Millisecond
}

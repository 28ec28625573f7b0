package world

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/event"
)

// Settings controls engine-level behavior of a World. All fields have
// sensible defaults; a zero Settings should be replaced with
// DefaultSettings rather than used directly.
type Settings struct {
	Touch  TouchConfig  `yaml:"touch"`
	Record RecordConfig `yaml:"record"`
	Render RenderConfig `yaml:"render"`
}

// TouchConfig tunes gesture recognition thresholds.
type TouchConfig struct {
	// TapSlop is the maximum distance in logical pixels a touch may
	// travel and still register as a tap.
	TapSlop float32 `yaml:"tap_slop"`
	// TapTime is the maximum duration of a tap.
	TapTime Duration `yaml:"tap_time"`
	// DoubleTapSlop is the maximum distance between two taps that
	// combine into a double tap.
	DoubleTapSlop float32 `yaml:"double_tap_slop"`
	// DoubleTapTime is the maximum delay between two taps that
	// combine into a double tap.
	DoubleTapTime Duration `yaml:"double_tap_time"`
	// LongTapTime is the minimum hold duration for a long tap.
	LongTapTime Duration `yaml:"long_tap_time"`
	// PanDistance is the distance a touch must travel before it
	// starts panning.
	PanDistance float32 `yaml:"pan_distance"`
}

// RecordConfig tunes the draw-recording cache.
type RecordConfig struct {
	// CostThreshold is the minimum estimated draw cost before a
	// widget's draw output is recorded.
	CostThreshold float32 `yaml:"cost_threshold"`
	// MaxFramesUnused is the number of frames a recording may go
	// unused before it is evicted.
	MaxFramesUnused uint64 `yaml:"max_frames_unused"`
	// MaxMemoryUsage is the recording memory budget in bytes.
	MaxMemoryUsage uint64 `yaml:"max_memory_usage"`
}

// RenderConfig tunes rendering behavior.
type RenderConfig struct {
	// PixelAlign snaps widget sizes and offsets to physical pixel
	// boundaries during layout and compose.
	PixelAlign bool `yaml:"pixel_align"`
}

// Duration wraps time.Duration with YAML support for strings like
// "200ms" or "1.5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// DefaultSettings returns the settings a World uses when none are
// provided.
func DefaultSettings() Settings {
	touch := event.DefaultTouchSettings()
	return Settings{
		Touch: TouchConfig{
			TapSlop:       touch.TapSlop,
			TapTime:       Duration(touch.TapTime),
			DoubleTapSlop: touch.DoubleTapSlop,
			DoubleTapTime: Duration(touch.DoubleTapTime),
			LongTapTime:   Duration(touch.LongTapTime),
			PanDistance:   touch.PanDistance,
		},
		Record: RecordConfig{
			CostThreshold:   65.0,
			MaxFramesUnused: 30,
			MaxMemoryUsage:  512 * 1024 * 1024,
		},
		Render: RenderConfig{
			PixelAlign: true,
		},
	}
}

// LoadSettings reads settings from a YAML file, falling back to
// DefaultSettings when the file does not exist.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings parses YAML settings. Fields absent from the document
// keep their default values.
func ParseSettings(data []byte) (Settings, error) {
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

func (c TouchConfig) touchSettings() event.TouchSettings {
	return event.TouchSettings{
		TapSlop:       c.TapSlop,
		TapTime:       time.Duration(c.TapTime),
		DoubleTapSlop: c.DoubleTapSlop,
		DoubleTapTime: time.Duration(c.DoubleTapTime),
		LongTapTime:   time.Duration(c.LongTapTime),
		PanDistance:   c.PanDistance,
	}
}

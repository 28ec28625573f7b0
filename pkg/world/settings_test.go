package world

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseSettingsOverridesDefaults(t *testing.T) {
	settings, err := ParseSettings([]byte(`
touch:
  tap_time: 250ms
  pan_distance: 4
record:
  max_memory_usage: 1048576
`))
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}

	if settings.Touch.TapTime != Duration(250*time.Millisecond) {
		t.Fatalf("tap_time = %v", time.Duration(settings.Touch.TapTime))
	}
	if settings.Touch.PanDistance != 4 {
		t.Fatalf("pan_distance = %v", settings.Touch.PanDistance)
	}
	if settings.Record.MaxMemoryUsage != 1<<20 {
		t.Fatalf("max_memory_usage = %d", settings.Record.MaxMemoryUsage)
	}

	// untouched fields keep their defaults
	defaults := DefaultSettings()
	if settings.Touch.TapSlop != defaults.Touch.TapSlop {
		t.Fatalf("tap_slop = %v, want default %v", settings.Touch.TapSlop, defaults.Touch.TapSlop)
	}
	if settings.Record.CostThreshold != defaults.Record.CostThreshold {
		t.Fatalf("cost_threshold = %v, want default", settings.Record.CostThreshold)
	}
	if !settings.Render.PixelAlign {
		t.Fatalf("pixel_align lost its default")
	}
}

func TestParseSettingsRejectsBadDuration(t *testing.T) {
	_, err := ParseSettings([]byte("touch:\n  tap_time: banana\n"))
	if err == nil {
		t.Fatalf("invalid duration accepted")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	want := DefaultSettings()
	want.Touch.LongTapTime = Duration(700 * time.Millisecond)
	want.Record.MaxFramesUnused = 12

	data, err := yaml.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("missing file did not yield defaults")
	}
}

func TestLoadSettingsReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("touch:\n  tap_slop: 16\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Touch.TapSlop != 16 {
		t.Fatalf("tap_slop = %v, want 16", settings.Touch.TapSlop)
	}
}

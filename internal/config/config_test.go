package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "", cfg.Store.Path)
	assert.Equal(t, "Local", cfg.Calendar.Timezone)
	assert.Equal(t, "monday", cfg.Calendar.WeekStart)
	assert.True(t, cfg.Review.Shuffle)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
[store]
path = "/tmp/cards.db"

[calendar]
timezone = "Europe/Stockholm"
week_start = "sunday"

[review]
shuffle = false
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cards.db", cfg.Store.Path)
		assert.Equal(t, "Europe/Stockholm", cfg.Calendar.Timezone)
		assert.False(t, cfg.Review.Shuffle)

		ws, err := cfg.WeekStartDay()
		require.NoError(t, err)
		assert.Equal(t, time.Sunday, ws)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "[review]\nshuffle = false\n"))
		require.NoError(t, err)
		assert.Equal(t, "monday", cfg.Calendar.WeekStart)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[review]\nshufle = true\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "review.shufle")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[review\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}

func TestLoadDefault(t *testing.T) {
	t.Run("no file uses defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		cfg, err := LoadDefault("")
		require.NoError(t, err)
		assert.Equal(t, Defaults(), *cfg)
	})

	t.Run("file in config home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		dir := filepath.Join(home, "cardcycle")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[calendar]\nweek_start = \"wed\"\n"), 0o644))

		cfg, err := LoadDefault("")
		require.NoError(t, err)
		assert.Equal(t, "wed", cfg.Calendar.WeekStart)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("CARDCYCLE_DB", "/data/cc.db")
	t.Setenv("CARDCYCLE_TIMEZONE", "UTC")
	t.Setenv("CARDCYCLE_WEEK_START", "saturday")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, "/data/cc.db", cfg.Store.Path)
	assert.Equal(t, "UTC", cfg.Calendar.Timezone)
	assert.Equal(t, "saturday", cfg.Calendar.WeekStart)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.Calendar.Timezone = "Mars/Olympus_Mons"
	cfg.Calendar.WeekStart = "someday"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "calendar.timezone")
	assert.Contains(t, err.Error(), "calendar.week_start")
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"monday", time.Monday, false},
		{"Sun", time.Sunday, false},
		{" FRIDAY ", time.Friday, false},
		{"thu", time.Thursday, false},
		{"mo", time.Sunday, true},
		{"", time.Sunday, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
)

func TestFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		f       flags
		mode    constants.SelectionMode
		wantErr string
	}{
		{"defaults", flags{Items: 20, Mode: "single"}, constants.SelectionSingle, ""},
		{"multi", flags{Items: 0, Mode: "multi"}, constants.SelectionMulti, ""},
		{"negative items", flags{Items: -1, Mode: "single"}, 0, "--items"},
		{"negative refresh", flags{Mode: "single", Refresh: -1}, 0, "--refresh"},
		{"unknown mode", flags{Mode: "extended"}, 0, "unknown selection mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.f.validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mode, cfg.Mode)
			assert.NotZero(t, cfg.Seed)
		})
	}
}

func TestFlags_ValidateKeepsSeed(t *testing.T) {
	cfg, err := flags{Mode: "none", Seed: 7}.validate()

	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestNormalizeLang(t *testing.T) {
	assert.Equal(t, "zh-CN", normalizeLang("zh_CN.UTF-8"))
	assert.Equal(t, "de-DE", normalizeLang("de_DE@euro"))
	assert.Equal(t, "en", normalizeLang("en"))
	assert.Empty(t, normalizeLang("C.UTF-8"))
	assert.Empty(t, normalizeLang(""))
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"items", "mode", "theme", "lang", "refresh", "evdev", "log-level", "seed"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"sdl", "term"}, names)
}

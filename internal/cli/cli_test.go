package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()
	cfg, shouldExit, err := Parse(nil, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "", cfg.SheetPath)
	assert.Equal(t, "", cfg.OutputPath)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.SeedOffset, "seed offset is only set when the flag is given")
	assert.Zero(t, cfg.ServePort)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()
	args := []string{
		"--sheet", "sheets/",
		"-o", "out.svg",
		"--symmetry", "horizontal",
		"--seed-offset", "0",
		"--workers", "3",
		"--log-format", "JSON",
		"--log-level", "DEBUG",
		"--trace-file", "trace.json",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, shouldExit)

	assert.Equal(t, "sheets/", cfg.SheetPath)
	assert.Equal(t, "out.svg", cfg.OutputPath)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, "horizontal", cfg.Symmetry)
	require.NotNil(t, cfg.SeedOffset)
	assert.Equal(t, uint64(0), *cfg.SeedOffset)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "trace.json", cfg.TraceFile)
}

func TestParse_PositionalSheetPath(t *testing.T) {
	t.Parallel()
	cfg, _, err := Parse([]string{"-format", "svg", "my.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "my.hcl", cfg.SheetPath)
	assert.Equal(t, "svg", cfg.Format)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-symmetry")
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--nope"}, "flag provided but not defined: -nope"},
		{"bad log format", []string{"--log-format", "xml"}, "invalid log-format"},
		{"bad log level", []string{"--log-level", "loud"}, "invalid log-level"},
		{"bad symmetry", []string{"--symmetry", "radial"}, `could not parse symmetry "radial"`},
		{"bad format", []string{"--format", "gif"}, "unsupported output format"},
		{"two paths", []string{"a.hcl", "b.hcl"}, "expected at most one sheet path"},
		{"serve with output", []string{"--serve-port", "8080", "-o", "x.png"}, "cannot be combined"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

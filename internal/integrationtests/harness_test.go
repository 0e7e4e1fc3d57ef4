package integrationtests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/splot2hlvl/internal/app"
	"github.com/specialistvlad/splot2hlvl/internal/sxfm"
	"github.com/specialistvlad/splot2hlvl/internal/testutil"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of a conversion run.
type HarnessResult struct {
	Root      string // temporary directory the files were written to
	Output    string // programs written to standard output
	LogOutput string
	Err       error
	App       *app.App
}

// ReadOutput returns the content of a file the run wrote under Root.
func (r *HarnessResult) ReadOutput(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Root, rel))
	require.NoError(t, err)
	return string(data)
}

// RunConversion writes files into a fresh temporary directory and runs the
// application with cfg. Relative paths in cfg are resolved against that
// directory.
func RunConversion(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		resolved := filepath.Join(root, p)
		if p[len(p)-1] == '/' {
			resolved += string(filepath.Separator)
		}
		return resolved
	}
	cfg.InputPath = resolve(cfg.InputPath)
	cfg.OutputPath = resolve(cfg.OutputPath)
	cfg.TemplatesPath = resolve(cfg.TemplatesPath)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	result := &HarnessResult{Root: root}

	converter, err := app.New(out, logs, config, sxfm.NewLoader())
	if err == nil {
		result.App = converter
		err = converter.Run(context.Background())
	}

	if os.Getenv("SPLOT2HLVL_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	result.Output = out.String()
	result.LogOutput = logs.String()
	result.Err = err
	return result
}

package app

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/specialistvlad/splot2hlvl/internal/ctxlog"
	"github.com/specialistvlad/splot2hlvl/internal/fsutil"
	"github.com/specialistvlad/splot2hlvl/internal/hlvl"
)

// inputExtension selects the files converted from a directory input.
const inputExtension = ".xml"

// job is one input file and the target name its program is generated for.
type job struct {
	input  string
	target string
}

// Run converts every configured input. Inputs are processed sequentially and
// the first failure aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.programs = nil

	jobs, batch, err := a.plan()
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		a.logger.Warn("No feature models found, nothing to convert.", "input", a.config.InputPath)
		return nil
	}

	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.convert(ctx, j, batch); err != nil {
			return err
		}
	}

	a.logger.Info("Conversion complete.", "programs", len(a.programs))
	return nil
}

// plan expands the input path into jobs. A directory yields one job per .xml
// file; with an explicit target their names become `<target><index>`.
func (a *App) plan() ([]job, bool, error) {
	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return nil, false, &LoadError{Path: a.config.InputPath, Err: err}
	}

	if !info.IsDir() {
		target := a.config.TargetName
		if target == "" {
			target = fsutil.BaseName(a.config.InputPath)
		}
		return []job{{input: a.config.InputPath, target: target}}, false, nil
	}

	files, err := fsutil.FindFilesByExtension(a.config.InputPath, inputExtension)
	if err != nil {
		return nil, true, &LoadError{Path: a.config.InputPath, Err: err}
	}
	a.logger.Debug("Input directory scanned.", "path", a.config.InputPath, "files", len(files))

	jobs := make([]job, 0, len(files))
	seen := make(map[string]string, len(files))
	for i, f := range files {
		target := fsutil.BaseName(f)
		if a.config.TargetName != "" {
			target = a.config.TargetName + strconv.Itoa(i)
		}
		// Programs written to a directory are named after their target.
		if prev, dup := seen[target]; dup && a.config.OutputPath != "" {
			return nil, true, fmt.Errorf("%w: %s and %s both produce %s%s",
				ErrTargetConflict, prev, f, target, fsutil.ProgramExtension)
		}
		seen[target] = f
		jobs = append(jobs, job{input: f, target: target})
	}
	return jobs, true, nil
}

func (a *App) convert(ctx context.Context, j job, batch bool) error {
	logger := ctxlog.FromContext(ctx).With("input", j.input, "target", j.target)

	m, err := a.loader.Load(ctx, j.input)
	if err != nil {
		return &LoadError{Path: j.input, Err: err}
	}

	p, err := hlvl.Translate(ctx, m, a.templates.ModelName(j.target), hlvl.WithTemplates(a.templates))
	if err != nil {
		return fmt.Errorf("failed to translate %s: %w", j.input, err)
	}
	a.programs = append(a.programs, p)

	stats := p.Stats()
	logger.Debug("Program generated.",
		"model", p.ModelName,
		"elements", stats.Elements,
		"relations", stats.Relations(),
		"groups", stats.Groups,
		"expressions", stats.Expressions,
	)

	output := a.config.OutputPath
	if batch && output != "" {
		// A batch always writes into a directory.
		output += string(os.PathSeparator)
	}
	dest, err := fsutil.ResolveOutputPath(output, j.target)
	if err != nil {
		return &WriteError{Path: a.config.OutputPath, Err: err}
	}

	if dest == "" {
		if _, err := p.WriteTo(a.outW); err != nil {
			return &WriteError{Path: "stdout", Err: err}
		}
		return nil
	}

	if err := fsutil.WriteFile(dest, []byte(p.String())); err != nil {
		return &WriteError{Path: dest, Err: err}
	}
	logger.Info("Program written.", "path", dest)
	return nil
}

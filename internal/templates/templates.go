package templates

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/splot2hlvl/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ModelVariable is the only variable available inside template strings.
const ModelVariable = "model"

//go:embed default.hcl
var defaultSource []byte

// fileRoot is the HCL schema of a templates file. Every attribute is optional
// so that user files can override a subset of the built-in values.
type fileRoot struct {
	ModelSuffix    hcl.Expression `hcl:"model_suffix,optional"`
	Header         hcl.Expression `hcl:"header,optional"`
	ElementsLabel  hcl.Expression `hcl:"elements_label,optional"`
	RelationsLabel hcl.Expression `hcl:"relations_label,optional"`
	Operations     hcl.Expression `hcl:"operations,optional"`
}

// Set is a parsed, validated collection of program templates.
type Set struct {
	// ModelSuffix is appended to the target name to form the model name.
	ModelSuffix string

	header         hcl.Expression
	elementsLabel  hcl.Expression
	relationsLabel hcl.Expression
	operations     hcl.Expression
}

// Text is a template Set rendered for one model name.
type Text struct {
	Header         string
	ElementsLabel  string
	RelationsLabel string
	Operations     string
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the built-in template set. It panics if the embedded file is
// invalid, which can only happen through a broken build.
func Default() *Set {
	defaultOnce.Do(func() {
		set, err := parse(defaultSource, "default.hcl", nil)
		if err != nil {
			panic(fmt.Errorf("templates: embedded default.hcl is invalid: %w", err))
		}
		defaultSet = set
	})
	return defaultSet
}

// LoadFile reads a templates file from disk. Attributes missing from the file
// are taken from Default().
func LoadFile(ctx context.Context, path string) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading templates file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file %s: %w", path, err)
	}
	set, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Templates file loaded.", "path", path, "model_suffix", set.ModelSuffix)
	return set, nil
}

// Parse decodes templates from HCL source. The filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Set, error) {
	return parse(src, filename, Default())
}

// ModelName joins a target name with the configured suffix.
func (s *Set) ModelName(target string) string {
	return target + s.ModelSuffix
}

// Render evaluates every template with the given model name.
func (s *Set) Render(modelName string) (Text, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{ModelVariable: cty.StringVal(modelName)},
	}

	var (
		t   Text
		err error
	)
	if t.Header, err = evalString(s.header, evalCtx, "header"); err != nil {
		return Text{}, err
	}
	if t.ElementsLabel, err = evalString(s.elementsLabel, evalCtx, "elements_label"); err != nil {
		return Text{}, err
	}
	if t.RelationsLabel, err = evalString(s.relationsLabel, evalCtx, "relations_label"); err != nil {
		return Text{}, err
	}
	if t.Operations, err = evalString(s.operations, evalCtx, "operations"); err != nil {
		return Text{}, err
	}
	return t, nil
}

func parse(src []byte, filename string, fallback *Set) (*Set, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse templates file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode templates file %s: %w", filename, diags)
	}

	set := &Set{
		header:         pick(root.Header, fallback, func(s *Set) hcl.Expression { return s.header }),
		elementsLabel:  pick(root.ElementsLabel, fallback, func(s *Set) hcl.Expression { return s.elementsLabel }),
		relationsLabel: pick(root.RelationsLabel, fallback, func(s *Set) hcl.Expression { return s.relationsLabel }),
		operations:     pick(root.Operations, fallback, func(s *Set) hcl.Expression { return s.operations }),
	}
	if name := set.firstMissing(); name != "" {
		return nil, fmt.Errorf("templates file %s: missing required attribute %q", filename, name)
	}

	suffix, err := evalString(root.ModelSuffix, nil, "model_suffix")
	switch {
	case err != nil:
		return nil, fmt.Errorf("templates file %s: %w", filename, err)
	case isMissing(root.ModelSuffix) && fallback != nil:
		set.ModelSuffix = fallback.ModelSuffix
	default:
		set.ModelSuffix = suffix
	}

	// Probe once so that Render cannot fail on a set returned from here.
	if _, err := set.Render("probe"); err != nil {
		return nil, fmt.Errorf("templates file %s: %w", filename, err)
	}
	return set, nil
}

// firstMissing names the first unset template in output order, or returns "".
func (s *Set) firstMissing() string {
	for _, attr := range []struct {
		name string
		expr hcl.Expression
	}{
		{"header", s.header},
		{"elements_label", s.elementsLabel},
		{"relations_label", s.relationsLabel},
		{"operations", s.operations},
	} {
		if attr.expr == nil {
			return attr.name
		}
	}
	return ""
}

// pick returns expr unless the attribute was absent from the file, in which
// case the fallback set's expression is used.
func pick(expr hcl.Expression, fallback *Set, get func(*Set) hcl.Expression) hcl.Expression {
	if !isMissing(expr) {
		return expr
	}
	if fallback == nil {
		return nil
	}
	return get(fallback)
}

// isMissing reports whether gohcl synthesized expr for an absent attribute.
func isMissing(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	if len(expr.Variables()) > 0 {
		return false
	}
	val, diags := expr.Value(nil)
	return !diags.HasErrors() && val.IsNull()
}

func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext, name string) (string, error) {
	if isMissing(expr) {
		return "", nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate %q: %w", name, diags)
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%q must be a string: %w", name, err)
	}
	if str.IsNull() || !str.IsKnown() {
		return "", fmt.Errorf("%q must be a known, non-null string", name)
	}
	return str.AsString(), nil
}

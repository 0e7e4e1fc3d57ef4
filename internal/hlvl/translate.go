package hlvl

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/splot2hlvl/internal/ctxlog"
	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
	"github.com/specialistvlad/splot2hlvl/internal/templates"
)

// ErrNilModel is returned when there is no feature tree to translate.
var ErrNilModel = errors.New("hlvl: model is nil or has no root")

type options struct {
	templates *templates.Set
}

// Option configures Translate.
type Option func(*options)

// WithTemplates replaces the built-in header, labels and operations block.
func WithTemplates(set *templates.Set) Option {
	return func(o *options) {
		if set != nil {
			o.templates = set
		}
	}
}

// Translate converts m into an HLVL program named modelName: the structural
// relations of the tree first, then one expression relation per constraint.
func Translate(ctx context.Context, m *featuremodel.Model, modelName string, opts ...Option) (*Program, error) {
	o := options{templates: templates.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := m.Root(); err != nil {
		return nil, ErrNilModel
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translating feature model.", "model", modelName, "nodes", m.Len())

	elements, relations := Traverse(m)
	nameOf := nameResolver(m)
	for _, clause := range m.Constraints() {
		relations = append(relations, TranslateClause(clause, nameOf))
	}

	text, err := o.templates.Render(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to render templates for %s: %w", modelName, err)
	}

	p := &Program{
		ModelName: modelName,
		Elements:  elements,
		Relations: relations,
		text:      text,
	}
	stats := p.Stats()
	logger.Debug("Feature model translated.",
		"model", modelName,
		"elements", stats.Elements,
		"decompositions", stats.Decompositions,
		"groups", stats.Groups,
		"expressions", stats.Expressions,
	)
	return p, nil
}

package sxfm

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/specialistvlad/splot2hlvl/internal/ctxlog"
	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
)

// ErrSyntax marks malformed SXFM input. Errors returned by Parse wrap it
// together with the offending line.
var ErrSyntax = errors.New("sxfm syntax error")

// Loader is the SXFM implementation of the featuremodel.Loader interface.
type Loader struct{}

// NewLoader creates a new SXFM loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ featuremodel.Loader = (*Loader)(nil)

// document is the XML envelope of an SXFM file. Elements other than the
// feature tree and the constraints, such as <meta>, are ignored.
type document struct {
	XMLName     xml.Name `xml:"feature_model"`
	Name        string   `xml:"name,attr"`
	FeatureTree string   `xml:"feature_tree"`
	Constraints string   `xml:"constraints"`
}

// Load reads and parses the SXFM file at path.
func (l *Loader) Load(ctx context.Context, path string) (*featuremodel.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("SXFM loader started.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feature model %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load feature model %s: %w", path, err)
	}
	logger.Debug("SXFM loading complete.", "path", path, "nodes", m.Len(), "constraints", len(m.Constraints()))
	return m, nil
}

// Parse reads one SXFM document from r.
func Parse(ctx context.Context, r io.Reader) (*featuremodel.Model, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: invalid XML: %w", ErrSyntax, err)
	}
	if strings.TrimSpace(doc.FeatureTree) == "" {
		return nil, fmt.Errorf("%w: missing or empty <feature_tree>", ErrSyntax)
	}

	p := newParser(doc.Name)
	if err := p.parseTree(doc.FeatureTree); err != nil {
		return nil, err
	}
	if err := p.parseConstraints(doc.Constraints); err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("SXFM document parsed.", "model", doc.Name, "nodes", p.model.Len())
	return p.model, nil
}

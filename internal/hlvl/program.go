package hlvl

import (
	"io"
	"strconv"
	"strings"

	"github.com/specialistvlad/splot2hlvl/internal/templates"
)

// Program is a translated HLVL program. It is immutable once returned by
// Translate.
type Program struct {
	ModelName string
	Elements  []ElementDecl
	Relations []Relation

	text templates.Text
}

// Stats counts what a program declares.
type Stats struct {
	Elements       int
	Core           int
	Decompositions int
	Groups         int
	Expressions    int
}

// Relations returns the total number of relations.
func (s Stats) Relations() int {
	return s.Core + s.Decompositions + s.Groups + s.Expressions
}

// Assemble concatenates the rendered templates with the element and relation
// blocks: header, elements label, elements, relations label, relations,
// operations.
func Assemble(text templates.Text, elements, relations string) string {
	var sb strings.Builder
	sb.Grow(len(text.Header) + len(text.ElementsLabel) + len(elements) +
		len(text.RelationsLabel) + len(relations) + len(text.Operations))
	sb.WriteString(text.Header)
	sb.WriteString(text.ElementsLabel)
	sb.WriteString(elements)
	sb.WriteString(text.RelationsLabel)
	sb.WriteString(relations)
	sb.WriteString(text.Operations)
	return sb.String()
}

// ElementsBlock renders one tab-indented declaration per line.
func (p *Program) ElementsBlock() string {
	var sb strings.Builder
	for _, e := range p.Elements {
		sb.WriteByte('\t')
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RelationsBlock renders one tab-indented, numbered relation per line.
func (p *Program) RelationsBlock() string {
	var sb strings.Builder
	for i, r := range p.Relations {
		sb.WriteString("\tr")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(r.Body())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the full program text.
func (p *Program) String() string {
	return Assemble(p.text, p.ElementsBlock(), p.RelationsBlock())
}

// WriteTo writes the full program text to w.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

// Stats returns the number of elements and relations per kind.
func (p *Program) Stats() Stats {
	s := Stats{Elements: len(p.Elements)}
	for _, r := range p.Relations {
		switch r.Kind {
		case RelationCore:
			s.Core++
		case RelationDecomposition:
			s.Decompositions++
		case RelationGroup:
			s.Groups++
		case RelationExpression:
			s.Expressions++
		}
	}
	return s
}

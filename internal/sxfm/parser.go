package sxfm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
)

var (
	// featureRegex matches `:r Name(id)`, `:m Name (id)`, `:o Name` and `: Name(id)`.
	featureRegex = regexp.MustCompile(`^:([rmo]?)\s+(.+?)\s*(?:\(([^()]*)\))?$`)
	// groupRegex matches `:g (id) [min,max]` and `:g [min,max]`.
	groupRegex = regexp.MustCompile(`^:g\s*(?:\(([^()]*)\))?\s*\[\s*(\d+)\s*,\s*(\d+|\*)\s*\]$`)
	// orRegex splits a clause body into literals.
	orRegex = regexp.MustCompile(`(?i)\s+or\s+`)
)

// parser accumulates one model while reading the two text sections.
type parser struct {
	model *featuremodel.Model
	// ids lists every node id in declaration order, for suggestions.
	ids []string
}

func newParser(name string) *parser {
	return &parser{model: featuremodel.New(name)}
}

func syntaxErr(section string, line int, text, format string, args ...any) error {
	return fmt.Errorf("%w: %s line %d %q: %s", ErrSyntax, section, line, text, fmt.Sprintf(format, args...))
}

// parseTree reads the <feature_tree> section.
func (p *parser) parseTree(text string) error {
	const section = "feature_tree"

	var (
		stack     []featuremodel.NodeID
		baseDepth = -1
	)
	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		tabs := len(raw) - len(strings.TrimLeft(raw, "\t"))
		if baseDepth < 0 {
			baseDepth = tabs
		}
		depth := tabs - baseDepth

		if depth < 0 || depth > len(stack) {
			return syntaxErr(section, lineNo, line, "unexpected indentation")
		}
		stack = stack[:depth]

		id, err := p.addNode(stack, line, lineNo)
		if err != nil {
			return err
		}
		stack = append(stack, id)
	}

	if _, err := p.model.Root(); err != nil {
		return fmt.Errorf("%w: %s has no root feature", ErrSyntax, section)
	}
	return nil
}

// addNode adds one tree line under the innermost node of stack.
func (p *parser) addNode(stack []featuremodel.NodeID, line string, lineNo int) (featuremodel.NodeID, error) {
	const section = "feature_tree"

	var parent featuremodel.NodeID
	if len(stack) > 0 {
		parent = stack[len(stack)-1]
	}

	if m := groupRegex.FindStringSubmatch(line); m != nil {
		if parent == "" {
			return "", syntaxErr(section, lineNo, line, "group without a parent feature")
		}
		id := featuremodel.NodeID(strings.TrimSpace(m[1]))
		if id == "" {
			id = featuremodel.NodeID("_g" + strconv.Itoa(lineNo))
		}
		lower, err := strconv.Atoi(m[2])
		if err != nil {
			return "", syntaxErr(section, lineNo, line, "invalid group minimum: %v", err)
		}
		upper := featuremodel.Unbounded
		if m[3] != "*" {
			if upper, err = strconv.Atoi(m[3]); err != nil {
				return "", syntaxErr(section, lineNo, line, "invalid group maximum: %v", err)
			}
		}
		if err := p.model.AddGroup(parent, id, lower, upper); err != nil {
			return "", syntaxErr(section, lineNo, line, "%v", err)
		}
		p.ids = append(p.ids, string(id))
		return id, nil
	}

	m := featureRegex.FindStringSubmatch(line)
	if m == nil {
		return "", syntaxErr(section, lineNo, line, "unrecognized feature line")
	}
	kind, name := m[1], strings.TrimSpace(m[2])
	id := featuremodel.NodeID(strings.TrimSpace(m[3]))
	if id == "" {
		id = featuremodel.NodeID(name)
	}

	var err error
	switch kind {
	case "r":
		if parent != "" {
			return "", syntaxErr(section, lineNo, line, "root feature must not be indented")
		}
		err = p.model.AddRoot(id, name)
	case "m", "o":
		if parent == "" {
			return "", syntaxErr(section, lineNo, line, "only the root feature may appear at the top level")
		}
		err = p.model.AddSolitaire(parent, id, name, kind == "o")
	default:
		if parent == "" {
			return "", syntaxErr(section, lineNo, line, "only the root feature may appear at the top level")
		}
		err = p.model.AddGrouped(parent, id, name)
	}
	if err != nil {
		return "", syntaxErr(section, lineNo, line, "%v", err)
	}
	p.ids = append(p.ids, string(id))
	return id, nil
}

// parseConstraints reads the <constraints> section. Each non-blank line is
// one CNF clause.
func (p *parser) parseConstraints(text string) error {
	const section = "constraints"

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		label, body, ok := strings.Cut(line, ":")
		if !ok {
			return syntaxErr(section, lineNo, line, "expected `label: literal or literal ...`")
		}
		label, body = strings.TrimSpace(label), strings.TrimSpace(body)

		var literals []featuremodel.Literal
		if body != "" {
			for _, token := range orRegex.Split(body, -1) {
				lit, err := p.parseLiteral(token)
				if err != nil {
					return syntaxErr(section, lineNo, line, "%v", err)
				}
				literals = append(literals, lit)
			}
		}
		if err := p.model.AddConstraint(label, literals...); err != nil {
			return syntaxErr(section, lineNo, line, "%v", err)
		}
	}
	return nil
}

func (p *parser) parseLiteral(token string) (featuremodel.Literal, error) {
	token = strings.TrimSpace(token)
	positive := true
	if rest, negated := strings.CutPrefix(token, "~"); negated {
		positive = false
		token = strings.TrimSpace(rest)
	}
	if token == "" {
		return featuremodel.Literal{}, fmt.Errorf("empty literal")
	}

	id := featuremodel.NodeID(token)
	if _, ok := p.model.Node(id); !ok {
		if suggestion := nameSuggestion(token, p.ids); suggestion != "" {
			return featuremodel.Literal{}, fmt.Errorf("unknown feature id %q (did you mean %q?)", token, suggestion)
		}
		return featuremodel.Literal{}, fmt.Errorf("unknown feature id %q", token)
	}
	return featuremodel.Literal{Var: id, Positive: positive}, nil
}

// nameSuggestion returns the closest candidate to given, or "" when none is
// within a small edit distance.
func nameSuggestion(given string, candidates []string) string {
	best, bestDist := "", 3
	for _, c := range candidates {
		if dist := levenshtein.Distance(given, c, nil); dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}

package hlvl

import "github.com/specialistvlad/splot2hlvl/internal/featuremodel"

// NegationMarker prefixes negated literals in expression relations.
const NegationMarker = "~"

// TranslateClause converts one CNF clause into an expression relation.
// nameOf resolves a variable to its sanitized element name.
//
// Negative literals come first, then positive ones, each group in clause
// order. An empty clause yields `expression()`.
func TranslateClause(c featuremodel.Clause, nameOf func(featuremodel.NodeID) string) Relation {
	var positives, negatives []string
	for _, lit := range c.Literals {
		name := nameOf(lit.Var)
		if lit.Positive {
			positives = append(positives, name)
		} else {
			negatives = append(negatives, NegationMarker+name)
		}
	}

	literals := make([]string, 0, len(negatives)+len(positives))
	literals = append(literals, negatives...)
	literals = append(literals, positives...)
	return Relation{Kind: RelationExpression, Literals: literals}
}

package hlvl

import (
	"fmt"

	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
)

// GroupType is the relation kind a feature group maps to.
type GroupType int

const (
	// ExactlyOne is an alternative group, rendered [1,1].
	ExactlyOne GroupType = iota
	// InclusiveOr is an or-group, rendered [0,*].
	InclusiveOr
)

// Classify maps a group's maximum cardinality to a GroupType. Only
// featuremodel.Unbounded yields InclusiveOr; every bounded maximum, including
// values above one, collapses to ExactlyOne.
func Classify(maxCardinality int) GroupType {
	if maxCardinality == featuremodel.Unbounded {
		return InclusiveOr
	}
	return ExactlyOne
}

// Cardinality returns the HLVL cardinality suffix of a group relation.
func (g GroupType) Cardinality() string {
	switch g {
	case ExactlyOne:
		return "[1,1]"
	case InclusiveOr:
		return "[0,*]"
	default:
		panic(fmt.Sprintf("hlvl: unknown group type %d", int(g)))
	}
}

// String returns the name of the group type.
func (g GroupType) String() string {
	switch g {
	case ExactlyOne:
		return "ExactlyOne"
	case InclusiveOr:
		return "InclusiveOr"
	default:
		return fmt.Sprintf("GroupType(%d)", int(g))
	}
}

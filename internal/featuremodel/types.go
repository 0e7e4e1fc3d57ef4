package featuremodel

import (
	"context"
	"fmt"
)

// Unbounded is the group cardinality maximum written as `*` in SPLOT models.
const Unbounded = -1

// NodeID identifies a feature node inside one model.
type NodeID string

// Kind distinguishes the node variants of a feature tree. The set is closed:
// nodes can only be created through the Model builder methods.
type Kind int

const (
	// KindRoot is the single root feature of the model.
	KindRoot Kind = iota
	// KindSolitaire is a mandatory or optional child feature.
	KindSolitaire
	// KindGroup is a structural container of grouped features with a cardinality.
	KindGroup
	// KindGrouped is a feature that belongs to a group.
	KindGrouped
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindSolitaire:
		return "solitaire"
	case KindGroup:
		return "group"
	case KindGrouped:
		return "grouped"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single vertex of the feature tree.
type Node struct {
	ID   NodeID
	Name string
	Kind Kind

	// Optional is only meaningful for KindSolitaire.
	Optional bool

	// Min and Max are only meaningful for KindGroup. Max == Unbounded means `*`.
	Min int
	Max int

	// Parent is empty for the root.
	Parent   NodeID
	Children []NodeID
}

// Literal is a signed reference to a feature variable inside a clause.
type Literal struct {
	Var      NodeID
	Positive bool
}

// Clause is one CNF constraint: a disjunction of literals.
type Clause struct {
	Label    string
	Literals []Literal
}

// Loader is the interface for a format-specific feature model loader.
type Loader interface {
	// Load reads the model stored at path and returns it fully built.
	Load(ctx context.Context, path string) (*Model, error)
}

package hlvl

import (
	"fmt"
	"strings"
)

// ElementDecl declares one boolean element.
type ElementDecl struct {
	Name string
}

// String renders the declaration without indentation.
func (e ElementDecl) String() string {
	return "boolean " + e.Name
}

// RelationKind distinguishes the four relation forms of the output language.
type RelationKind int

const (
	RelationCore RelationKind = iota
	RelationDecomposition
	RelationGroup
	RelationExpression
)

// String returns the HLVL keyword of the relation kind.
func (k RelationKind) String() string {
	switch k {
	case RelationCore:
		return "coreElements"
	case RelationDecomposition:
		return "decomposition"
	case RelationGroup:
		return "group"
	case RelationExpression:
		return "expression"
	default:
		return fmt.Sprintf("RelationKind(%d)", int(k))
	}
}

// DecompositionType tags a decomposition relation.
type DecompositionType int

const (
	Mandatory DecompositionType = iota
	Optional
)

// Tag returns the HLVL suffix of the decomposition: <1> or <0>.
func (d DecompositionType) Tag() string {
	if d == Optional {
		return "<0>"
	}
	return "<1>"
}

// Relation is one emitted relation. Which fields are set depends on Kind:
//
//   - RelationCore: Parent is the root element.
//   - RelationDecomposition: Parent, one entry in Children, Decomposition.
//   - RelationGroup: Parent, the ordered Children, Group.
//   - RelationExpression: Literals, already rendered (`~a`, `b`).
type Relation struct {
	Kind          RelationKind
	Parent        string
	Children      []string
	Decomposition DecompositionType
	Group         GroupType
	Literals      []string
}

// Body renders the relation without its `r<k>:` label.
func (r Relation) Body() string {
	switch r.Kind {
	case RelationCore:
		return "coreElements(" + r.Parent + ")"
	case RelationDecomposition:
		return "decomposition(" + r.Parent + ",[" + strings.Join(r.Children, ", ") + "])" + r.Decomposition.Tag()
	case RelationGroup:
		return "group(" + r.Parent + ",[" + strings.Join(r.Children, ", ") + "])" + r.Group.Cardinality()
	case RelationExpression:
		return "expression(" + strings.Join(r.Literals, " OR ") + ")"
	default:
		panic(fmt.Sprintf("hlvl: unknown relation kind %d", int(r.Kind)))
	}
}

func coreRelation(root string) Relation {
	return Relation{Kind: RelationCore, Parent: root}
}

func decompositionRelation(parent, child string, optional bool) Relation {
	d := Mandatory
	if optional {
		d = Optional
	}
	return Relation{Kind: RelationDecomposition, Parent: parent, Children: []string{child}, Decomposition: d}
}

func groupRelation(parent string, children []string, g GroupType) Relation {
	return Relation{Kind: RelationGroup, Parent: parent, Children: children, Group: g}
}

package hlvl

import (
	"fmt"

	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
)

// Traverse walks the feature tree depth-first, parents before children and
// siblings in stored order, and returns the element declarations and the
// structural relations in emission order. A model without a root yields
// nothing.
func Traverse(m *featuremodel.Model) ([]ElementDecl, []Relation) {
	root, err := m.Root()
	if err != nil {
		return nil, nil
	}

	var (
		elements  []ElementDecl
		relations []Relation
	)
	var visit func(n featuremodel.Node)
	visit = func(n featuremodel.Node) {
		e, r := emit(m, n)
		elements = append(elements, e...)
		relations = append(relations, r...)
		for _, child := range m.Children(n.ID) {
			visit(child)
		}
	}
	visit(root)
	return elements, relations
}

// emit returns what a single node contributes to the program, without
// looking at its descendants beyond a group's direct members.
func emit(m *featuremodel.Model, n featuremodel.Node) ([]ElementDecl, []Relation) {
	switch n.Kind {
	case featuremodel.KindRoot:
		name := Sanitize(n.Name)
		return []ElementDecl{{Name: name}}, []Relation{coreRelation(name)}

	case featuremodel.KindSolitaire:
		name := Sanitize(n.Name)
		return []ElementDecl{{Name: name}}, []Relation{decompositionRelation(parentName(m, n), name, n.Optional)}

	case featuremodel.KindGroup:
		members := m.Children(n.ID)
		elements := make([]ElementDecl, 0, len(members))
		names := make([]string, 0, len(members))
		for _, member := range members {
			name := Sanitize(member.Name)
			elements = append(elements, ElementDecl{Name: name})
			names = append(names, name)
		}
		return elements, []Relation{groupRelation(parentName(m, n), names, Classify(n.Max))}

	case featuremodel.KindGrouped:
		return nil, nil

	default:
		panic(fmt.Sprintf("hlvl: unhandled node kind %s", n.Kind))
	}
}

func parentName(m *featuremodel.Model, n featuremodel.Node) string {
	parent, ok := m.Parent(n.ID)
	if !ok {
		return ""
	}
	return Sanitize(parent.Name)
}

// nameResolver returns the nameOf function TranslateClause expects for m.
func nameResolver(m *featuremodel.Model) func(featuremodel.NodeID) string {
	return func(id featuremodel.NodeID) string {
		if n, ok := m.Node(id); ok {
			return Sanitize(n.Name)
		}
		return Sanitize(string(id))
	}
}

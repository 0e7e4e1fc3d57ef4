package featuremodel

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDuplicateID        = errors.New("duplicate node id")
	ErrUnknownNode        = errors.New("unknown node")
	ErrRootExists         = errors.New("model already has a root")
	ErrNoRoot             = errors.New("model has no root")
	ErrInvalidParent      = errors.New("invalid parent for node kind")
	ErrInvalidCardinality = errors.New("invalid group cardinality")
)

// Model is a feature tree plus its cross-tree constraints.
type Model struct {
	Name string

	root        NodeID
	nodes       map[NodeID]*Node
	constraints []Clause
}

// New creates an empty model with the given name.
func New(name string) *Model {
	return &Model{
		Name:  name,
		nodes: make(map[NodeID]*Node),
	}
}

// AddRoot adds the root feature. A model has exactly one root, and it must be
// added before any other node.
func (m *Model) AddRoot(id NodeID, name string) error {
	if m.root != "" {
		return fmt.Errorf("adding root %q: %w", id, ErrRootExists)
	}
	if err := m.insert(&Node{ID: id, Name: name, Kind: KindRoot}); err != nil {
		return err
	}
	m.root = id
	return nil
}

// AddSolitaire adds a mandatory or optional feature under a root, solitaire
// or grouped feature.
func (m *Model) AddSolitaire(parent, id NodeID, name string, optional bool) error {
	if err := m.checkParent(parent, KindSolitaire, KindRoot, KindSolitaire, KindGrouped); err != nil {
		return err
	}
	return m.attach(parent, &Node{ID: id, Name: name, Kind: KindSolitaire, Optional: optional})
}

// AddGroup adds a feature group with cardinality [lower,upper] under a root,
// solitaire or grouped feature. Use Unbounded for a `*` upper bound.
func (m *Model) AddGroup(parent, id NodeID, lower, upper int) error {
	if lower < 0 || upper < Unbounded {
		return fmt.Errorf("group %q [%d,%d]: %w", id, lower, upper, ErrInvalidCardinality)
	}
	if err := m.checkParent(parent, KindGroup, KindRoot, KindSolitaire, KindGrouped); err != nil {
		return err
	}
	return m.attach(parent, &Node{ID: id, Kind: KindGroup, Min: lower, Max: upper})
}

// AddGrouped adds a member feature to a group.
func (m *Model) AddGrouped(group, id NodeID, name string) error {
	if err := m.checkParent(group, KindGrouped, KindGroup); err != nil {
		return err
	}
	return m.attach(group, &Node{ID: id, Name: name, Kind: KindGrouped})
}

// AddConstraint appends a CNF clause. Every literal must reference a node that
// is already part of the model. Clauses without literals are accepted.
func (m *Model) AddConstraint(label string, literals ...Literal) error {
	for _, lit := range literals {
		if _, ok := m.nodes[lit.Var]; !ok {
			return fmt.Errorf("constraint %q references %q: %w", label, lit.Var, ErrUnknownNode)
		}
	}
	m.constraints = append(m.constraints, Clause{Label: label, Literals: slices.Clone(literals)})
	return nil
}

// Root returns the root node.
func (m *Model) Root() (Node, error) {
	if m == nil || m.root == "" {
		return Node{}, ErrNoRoot
	}
	return m.copyOf(m.nodes[m.root]), nil
}

// Node looks up a node by id.
func (m *Model) Node(id NodeID) (Node, bool) {
	n, ok := m.nodes[id]
	if !ok {
		return Node{}, false
	}
	return m.copyOf(n), true
}

// Parent returns the parent of the node with the given id. The root has none.
func (m *Model) Parent(id NodeID) (Node, bool) {
	n, ok := m.nodes[id]
	if !ok || n.Parent == "" {
		return Node{}, false
	}
	return m.Node(n.Parent)
}

// Children returns the children of a node in their stored order.
func (m *Model) Children(id NodeID) []Node {
	n, ok := m.nodes[id]
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(n.Children))
	for _, child := range n.Children {
		out = append(out, m.copyOf(m.nodes[child]))
	}
	return out
}

// Constraints returns the clauses in the order they were added.
func (m *Model) Constraints() []Clause {
	out := make([]Clause, len(m.constraints))
	for i, c := range m.constraints {
		out[i] = Clause{Label: c.Label, Literals: slices.Clone(c.Literals)}
	}
	return out
}

// Len returns the number of nodes in the model, groups included.
func (m *Model) Len() int {
	return len(m.nodes)
}

func (m *Model) checkParent(parent NodeID, kind Kind, allowed ...Kind) error {
	p, ok := m.nodes[parent]
	if !ok {
		return fmt.Errorf("parent %q of %s node: %w", parent, kind, ErrUnknownNode)
	}
	if !slices.Contains(allowed, p.Kind) {
		return fmt.Errorf("%s node under %s %q: %w", kind, p.Kind, parent, ErrInvalidParent)
	}
	return nil
}

func (m *Model) attach(parent NodeID, n *Node) error {
	n.Parent = parent
	if err := m.insert(n); err != nil {
		return err
	}
	p := m.nodes[parent]
	p.Children = append(p.Children, n.ID)
	return nil
}

func (m *Model) insert(n *Node) error {
	if _, exists := m.nodes[n.ID]; exists {
		return fmt.Errorf("node %q: %w", n.ID, ErrDuplicateID)
	}
	m.nodes[n.ID] = n
	return nil
}

func (m *Model) copyOf(n *Node) Node {
	c := *n
	c.Children = slices.Clone(n.Children)
	return c
}

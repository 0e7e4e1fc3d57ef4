package featuremodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSmallModel(t *testing.T) *Model {
	t.Helper()
	m := New("small")
	require.NoError(t, m.AddRoot("_r", "GPL"))
	require.NoError(t, m.AddSolitaire("_r", "_r_1", "Gtp", false))
	require.NoError(t, m.AddGroup("_r_1", "_r_1_2", 1, 1))
	require.NoError(t, m.AddGrouped("_r_1_2", "_r_1_2_3", "directed"))
	require.NoError(t, m.AddGrouped("_r_1_2", "_r_1_2_4", "undirected"))
	require.NoError(t, m.AddSolitaire("_r", "_r_5", "Weight", true))
	return m
}

func TestModel_Structure(t *testing.T) {
	m := buildSmallModel(t)

	root, err := m.Root()
	require.NoError(t, err)
	assert.Equal(t, NodeID("_r"), root.ID)
	assert.Equal(t, KindRoot, root.Kind)
	assert.Equal(t, []NodeID{"_r_1", "_r_5"}, root.Children)
	assert.Equal(t, 6, m.Len())

	group, ok := m.Node("_r_1_2")
	require.True(t, ok)
	assert.Equal(t, KindGroup, group.Kind)
	assert.Equal(t, 1, group.Min)
	assert.Equal(t, 1, group.Max)

	parent, ok := m.Parent("_r_1_2")
	require.True(t, ok)
	assert.Equal(t, "Gtp", parent.Name)

	_, ok = m.Parent("_r")
	assert.False(t, ok, "the root has no parent")

	children := m.Children("_r_1_2")
	require.Len(t, children, 2)
	assert.Equal(t, "directed", children[0].Name)
	assert.Equal(t, "undirected", children[1].Name)

	weight, ok := m.Node("_r_5")
	require.True(t, ok)
	assert.True(t, weight.Optional)
}

func TestModel_ReturnedNodesAreCopies(t *testing.T) {
	m := buildSmallModel(t)

	root, err := m.Root()
	require.NoError(t, err)
	root.Children[0] = "tampered"
	root.Name = "tampered"

	again, err := m.Root()
	require.NoError(t, err)
	assert.Equal(t, "GPL", again.Name)
	assert.Equal(t, NodeID("_r_1"), again.Children[0])
}

func TestModel_BuilderErrors(t *testing.T) {
	testCases := []struct {
		name      string
		build     func(m *Model) error
		expectErr error
	}{
		{
			name:      "second root",
			build:     func(m *Model) error { return m.AddRoot("other", "Other") },
			expectErr: ErrRootExists,
		},
		{
			name:      "duplicate id",
			build:     func(m *Model) error { return m.AddSolitaire("_r", "_r_1", "Again", false) },
			expectErr: ErrDuplicateID,
		},
		{
			name:      "unknown parent",
			build:     func(m *Model) error { return m.AddSolitaire("nope", "x", "X", false) },
			expectErr: ErrUnknownNode,
		},
		{
			name:      "solitaire inside a group",
			build:     func(m *Model) error { return m.AddSolitaire("_r_1_2", "x", "X", true) },
			expectErr: ErrInvalidParent,
		},
		{
			name:      "grouped outside a group",
			build:     func(m *Model) error { return m.AddGrouped("_r", "x", "X") },
			expectErr: ErrInvalidParent,
		},
		{
			name:      "group directly inside a group",
			build:     func(m *Model) error { return m.AddGroup("_r_1_2", "g", 1, 1) },
			expectErr: ErrInvalidParent,
		},
		{
			name:      "negative min",
			build:     func(m *Model) error { return m.AddGroup("_r", "g", -1, 1) },
			expectErr: ErrInvalidCardinality,
		},
		{
			name:      "max below unbounded",
			build:     func(m *Model) error { return m.AddGroup("_r", "g", 0, -2) },
			expectErr: ErrInvalidCardinality,
		},
		{
			name: "constraint on unknown variable",
			build: func(m *Model) error {
				return m.AddConstraint("c1", Literal{Var: "_r_1", Positive: true}, Literal{Var: "ghost"})
			},
			expectErr: ErrUnknownNode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := buildSmallModel(t)
			err := tc.build(m)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestModel_GroupUnderGroupedFeature(t *testing.T) {
	m := buildSmallModel(t)
	require.NoError(t, m.AddGroup("_r_1_2_3", "g", 0, Unbounded))
	require.NoError(t, m.AddGrouped("g", "g_1", "weighted"))

	parent, ok := m.Parent("g")
	require.True(t, ok)
	assert.Equal(t, "directed", parent.Name)
}

func TestModel_Constraints(t *testing.T) {
	m := buildSmallModel(t)
	require.NoError(t, m.AddConstraint("c1", Literal{Var: "_r_1_2_3"}, Literal{Var: "_r_5", Positive: true}))
	require.NoError(t, m.AddConstraint("empty"))

	clauses := m.Constraints()
	require.Len(t, clauses, 2)
	assert.Equal(t, "c1", clauses[0].Label)
	assert.Equal(t, []Literal{{Var: "_r_1_2_3"}, {Var: "_r_5", Positive: true}}, clauses[0].Literals)
	assert.Empty(t, clauses[1].Literals)

	clauses[0].Literals[0].Positive = true
	assert.False(t, m.Constraints()[0].Literals[0].Positive, "constraints must not be mutable from outside")
}

func TestModel_NoRoot(t *testing.T) {
	_, err := New("empty").Root()
	assert.ErrorIs(t, err, ErrNoRoot)

	var nilModel *Model
	_, err = nilModel.Root()
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "root", KindRoot.String())
	assert.Equal(t, "solitaire", KindSolitaire.String())
	assert.Equal(t, "group", KindGroup.String())
	assert.Equal(t, "grouped", KindGrouped.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

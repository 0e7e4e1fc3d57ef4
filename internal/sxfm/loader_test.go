package sxfm

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
	"github.com/specialistvlad/splot2hlvl/internal/hlvl"
	"github.com/specialistvlad/splot2hlvl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_GPL(t *testing.T) {
	m, err := Parse(context.Background(), strings.NewReader(testutil.GPLXML))
	require.NoError(t, err)

	assert.Equal(t, "Graph Product Line", m.Name)
	assert.Equal(t, 21, m.Len(), "17 features and 4 groups")

	root, err := m.Root()
	require.NoError(t, err)
	assert.Equal(t, "GPL", root.Name)
	assert.Equal(t, []featuremodel.NodeID{"_r_1", "_r_5", "_r_9", "_r_13"}, root.Children)

	algorithms, ok := m.Node("_r_13_14")
	require.True(t, ok)
	assert.Equal(t, featuremodel.KindGroup, algorithms.Kind)
	assert.Equal(t, 1, algorithms.Min)
	assert.Equal(t, featuremodel.Unbounded, algorithms.Max)

	weight, ok := m.Node("_r_5")
	require.True(t, ok)
	assert.True(t, weight.Optional)

	clauses := m.Constraints()
	require.Len(t, clauses, 13)
	assert.Equal(t, "constraint_1", clauses[0].Label)
	assert.Equal(t, []featuremodel.Literal{
		{Var: "_r_5_6_8", Positive: true},
		{Var: "_r_13_14_18", Positive: false},
	}, clauses[0].Literals)
}

func TestParse_GPLMatchesBuilderModel(t *testing.T) {
	ctx := context.Background()
	loaded, err := Parse(ctx, strings.NewReader(testutil.GPLXML))
	require.NoError(t, err)

	fromXML, err := hlvl.Translate(ctx, loaded, "test0_generated")
	require.NoError(t, err)
	fromBuilder, err := hlvl.Translate(ctx, testutil.GPLModel(t), "test0_generated")
	require.NoError(t, err)

	assert.Equal(t, testutil.GPLProgram, fromXML.String())
	assert.Equal(t, fromBuilder.String(), fromXML.String())
}

func TestLoader_Load_CarFixture(t *testing.T) {
	m, err := NewLoader().Load(context.Background(), filepath.Join("testdata", "car.xml"))
	require.NoError(t, err)
	assert.Equal(t, "Car", m.Name)

	// Features without an explicit id are identified by their name.
	engine, ok := m.Node("Engine")
	require.True(t, ok)
	assert.Equal(t, featuremodel.KindSolitaire, engine.Kind)
	assert.False(t, engine.Optional)

	// Groups without an id get one derived from their line.
	group, ok := m.Node("_g4")
	require.True(t, ok)
	assert.Equal(t, featuremodel.KindGroup, group.Kind)

	extras, ok := m.Node("extras_g")
	require.True(t, ok)
	assert.Equal(t, 2, extras.Min)
	assert.Equal(t, 3, extras.Max)

	p, err := hlvl.Translate(context.Background(), m, "car_generated")
	require.NoError(t, err)
	assert.Equal(t, "model  car_generated\n"+
		"elements: \n"+
		"\tboolean Car\n"+
		"\tboolean Engine\n"+
		"\tboolean Electric\n"+
		"\tboolean Gas_Engine\n"+
		"\tboolean TurboMinusCharger\n"+
		"\tboolean Extras\n"+
		"\tboolean SatdotNav\n"+
		"\tboolean AudioPlus\n"+
		"\tboolean RoofRack\n"+
		"relations:\n"+
		"\tr0: coreElements(Car)\n"+
		"\tr1: decomposition(Car,[Engine])<1>\n"+
		"\tr2: group(Engine,[Electric, Gas_Engine])[1,1]\n"+
		"\tr3: decomposition(Gas_Engine,[TurboMinusCharger])<0>\n"+
		"\tr4: decomposition(Car,[Extras])<0>\n"+
		"\tr5: group(Extras,[SatdotNav, AudioPlus, RoofRack])[1,1]\n"+
		"\tr6: expression(~TurboMinusCharger OR Gas_Engine)\n"+
		"\tr7: expression(~SatdotNav OR ~RoofRack OR AudioPlus)\n"+
		"\tr8: expression()\n"+
		"operations:\n"+
		"validModel,numberOfConfigurations\n", p.String())
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Errors(t *testing.T) {
	wrap := func(tree, constraints string) string {
		return "<feature_model name=\"m\"><feature_tree>\n" + tree +
			"\n</feature_tree><constraints>\n" + constraints + "\n</constraints></feature_model>"
	}

	testCases := []struct {
		name        string
		doc         string
		errContains string
	}{
		{
			name:        "not xml",
			doc:         "feature_model",
			errContains: "invalid XML",
		},
		{
			name:        "wrong root element",
			doc:         "<model><feature_tree>:r A</feature_tree></model>",
			errContains: "invalid XML",
		},
		{
			name:        "empty tree",
			doc:         wrap("", ""),
			errContains: "missing or empty <feature_tree>",
		},
		{
			name:        "first line is not the root",
			doc:         wrap(":m A(a)", ""),
			errContains: "only the root feature may appear at the top level",
		},
		{
			name:        "two roots",
			doc:         wrap(":r A(a)\n:r B(b)", ""),
			errContains: "model already has a root",
		},
		{
			name:        "indentation jump",
			doc:         wrap(":r A(a)\n\t\t:m B(b)", ""),
			errContains: "unexpected indentation",
		},
		{
			name:        "unrecognized line",
			doc:         wrap(":r A(a)\n\t:x B(b)", ""),
			errContains: "unrecognized feature line",
		},
		{
			name:        "grouped feature outside a group",
			doc:         wrap(":r A(a)\n\t: B(b)", ""),
			errContains: "invalid parent for node kind",
		},
		{
			name:        "duplicate id",
			doc:         wrap(":r A(a)\n\t:m B(a)", ""),
			errContains: "duplicate node id",
		},
		{
			name:        "constraint without label",
			doc:         wrap(":r A(a)", "~a or a"),
			errContains: "expected `label: literal or literal ...`",
		},
		{
			name:        "unknown constraint id with suggestion",
			doc:         wrap(":r A(_r)\n\t:o B(_r_1)", "c1: ~_r_2 or _r"),
			errContains: `unknown feature id "_r_2" (did you mean "_r_1"?)`,
		},
		{
			name:        "unknown constraint id without suggestion",
			doc:         wrap(":r A(_r)", "c1: completely_different"),
			errContains: `unknown feature id "completely_different"`,
		},
		{
			name:        "empty literal",
			doc:         wrap(":r A(a)", "c1: ~ or a"),
			errContains: "empty literal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestParse_NoConstraintsSection(t *testing.T) {
	doc := "<feature_model name=\"m\"><feature_tree>\n:r A\n\t:o B\n</feature_tree></feature_model>"
	m, err := Parse(context.Background(), strings.NewReader(doc))
	require.NoError(t, err)
	assert.Empty(t, m.Constraints())
	assert.Equal(t, 2, m.Len())
}

func TestNameSuggestion(t *testing.T) {
	candidates := []string{"_r", "_r_1", "_r_1_2", "mstprim"}
	assert.Equal(t, "_r_1", nameSuggestion("_r_2", candidates))
	assert.Equal(t, "mstprim", nameSuggestion("mstprin", candidates))
	assert.Equal(t, "", nameSuggestion("something else", candidates))
}

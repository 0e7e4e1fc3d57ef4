package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/specialistvlad/splot2hlvl/internal/featuremodel"
	"github.com/stretchr/testify/require"
)

// GPLXML is the Graph Product Line model in SXFM form. The first constraint
// lists its positive literal first on purpose.
const GPLXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<feature_model name="Graph Product Line">
<meta>
<data name="description">Graph Product Line</data>
<data name="creator">Roberto Lopez-Herrejon</data>
</meta>
<feature_tree>
:r GPL(_r)
	:m Gtp(_r_1)
		:g (_r_1_2) [1,1]
			: directed(_r_1_2_3)
			: undirected(_r_1_2_4)
	:o Weight(_r_5)
		:g (_r_5_6) [1,1]
			: weighted(_r_5_6_7)
			: unweighted(_r_5_6_8)
	:o Search(_r_9)
		:g (_r_9_10) [1,1]
			: BFS(_r_9_10_11)
			: DFS(_r_9_10_12)
	:m Algorithms(_r_13)
		:g (_r_13_14) [1,*]
			: connected(_r_13_14_15)
			: stronglyc(_r_13_14_16)
			: cycle(_r_13_14_17)
			: mstprim(_r_13_14_18)
			: mstkruskal(_r_13_14_19)
			: shortest(_r_13_14_20)
</feature_tree>
<constraints>
constraint_1:_r_5_6_8 or ~_r_13_14_18
constraint_2:~_r_13_14_16 or ~_r_13_14_20
constraint_3:~_r_13_14_18 or _r_1_2_4
constraint_4:~_r_13_14_20 or _r_1_2_3
constraint_5:~_r_13_14_18 or ~_r_13_14_19
constraint_6:~_r_13_14_19 or _r_5_6_8
constraint_7:~_r_13_14_16 or _r_1_2_4
constraint_8:~_r_13_14_15 or ~_r_13_14_16
constraint_9:~_r_13_14_15 or _r_9
constraint_10:~_r_13_14_19 or _r_1_2_4
constraint_11:~_r_13_14_19 or ~_r_13_14_20
constraint_12:~_r_13_14_18 or ~_r_13_14_20
constraint_13:~_r_13_14_17 or _r_9_10_12
</constraints>
</feature_model>
`

// GPLProgram is the HLVL program expected for GPLXML with target name "test0".
const GPLProgram = "model  test0_generated\n" +
	"elements: \n" +
	"\tboolean GPL\n" +
	"\tboolean Gtp\n" +
	"\tboolean directed\n" +
	"\tboolean undirected\n" +
	"\tboolean Weight\n" +
	"\tboolean weighted\n" +
	"\tboolean unweighted\n" +
	"\tboolean Search\n" +
	"\tboolean BFS\n" +
	"\tboolean DFS\n" +
	"\tboolean Algorithms\n" +
	"\tboolean connected\n" +
	"\tboolean stronglyc\n" +
	"\tboolean cycle\n" +
	"\tboolean mstprim\n" +
	"\tboolean mstkruskal\n" +
	"\tboolean shortest\n" +
	"relations:\n" +
	"\tr0: coreElements(GPL)\n" +
	"\tr1: decomposition(GPL,[Gtp])<1>\n" +
	"\tr2: group(Gtp,[directed, undirected])[1,1]\n" +
	"\tr3: decomposition(GPL,[Weight])<0>\n" +
	"\tr4: group(Weight,[weighted, unweighted])[1,1]\n" +
	"\tr5: decomposition(GPL,[Search])<0>\n" +
	"\tr6: group(Search,[BFS, DFS])[1,1]\n" +
	"\tr7: decomposition(GPL,[Algorithms])<1>\n" +
	"\tr8: group(Algorithms,[connected, stronglyc, cycle, mstprim, mstkruskal, shortest])[0,*]\n" +
	"\tr9: expression(~mstprim OR unweighted)\n" +
	"\tr10: expression(~stronglyc OR ~shortest)\n" +
	"\tr11: expression(~mstprim OR undirected)\n" +
	"\tr12: expression(~shortest OR directed)\n" +
	"\tr13: expression(~mstprim OR ~mstkruskal)\n" +
	"\tr14: expression(~mstkruskal OR unweighted)\n" +
	"\tr15: expression(~stronglyc OR undirected)\n" +
	"\tr16: expression(~connected OR ~stronglyc)\n" +
	"\tr17: expression(~connected OR Search)\n" +
	"\tr18: expression(~mstkruskal OR undirected)\n" +
	"\tr19: expression(~mstkruskal OR ~shortest)\n" +
	"\tr20: expression(~mstprim OR ~shortest)\n" +
	"\tr21: expression(~cycle OR DFS)\n" +
	"operations:\n" +
	"validModel,numberOfConfigurations\n"

// GPLModel builds the same model as GPLXML directly through the builder API.
func GPLModel(t *testing.T) *featuremodel.Model {
	t.Helper()

	m := featuremodel.New("Graph Product Line")
	require.NoError(t, m.AddRoot("_r", "GPL"))

	require.NoError(t, m.AddSolitaire("_r", "_r_1", "Gtp", false))
	require.NoError(t, m.AddGroup("_r_1", "_r_1_2", 1, 1))
	require.NoError(t, m.AddGrouped("_r_1_2", "_r_1_2_3", "directed"))
	require.NoError(t, m.AddGrouped("_r_1_2", "_r_1_2_4", "undirected"))

	require.NoError(t, m.AddSolitaire("_r", "_r_5", "Weight", true))
	require.NoError(t, m.AddGroup("_r_5", "_r_5_6", 1, 1))
	require.NoError(t, m.AddGrouped("_r_5_6", "_r_5_6_7", "weighted"))
	require.NoError(t, m.AddGrouped("_r_5_6", "_r_5_6_8", "unweighted"))

	require.NoError(t, m.AddSolitaire("_r", "_r_9", "Search", true))
	require.NoError(t, m.AddGroup("_r_9", "_r_9_10", 1, 1))
	require.NoError(t, m.AddGrouped("_r_9_10", "_r_9_10_11", "BFS"))
	require.NoError(t, m.AddGrouped("_r_9_10", "_r_9_10_12", "DFS"))

	require.NoError(t, m.AddSolitaire("_r", "_r_13", "Algorithms", false))
	require.NoError(t, m.AddGroup("_r_13", "_r_13_14", 1, featuremodel.Unbounded))
	for _, f := range []struct{ id, name string }{
		{"_r_13_14_15", "connected"},
		{"_r_13_14_16", "stronglyc"},
		{"_r_13_14_17", "cycle"},
		{"_r_13_14_18", "mstprim"},
		{"_r_13_14_19", "mstkruskal"},
		{"_r_13_14_20", "shortest"},
	} {
		require.NoError(t, m.AddGrouped("_r_13_14", featuremodel.NodeID(f.id), f.name))
	}

	clauses := [][]featuremodel.Literal{
		{pos("_r_5_6_8"), neg("_r_13_14_18")},
		{neg("_r_13_14_16"), neg("_r_13_14_20")},
		{neg("_r_13_14_18"), pos("_r_1_2_4")},
		{neg("_r_13_14_20"), pos("_r_1_2_3")},
		{neg("_r_13_14_18"), neg("_r_13_14_19")},
		{neg("_r_13_14_19"), pos("_r_5_6_8")},
		{neg("_r_13_14_16"), pos("_r_1_2_4")},
		{neg("_r_13_14_15"), neg("_r_13_14_16")},
		{neg("_r_13_14_15"), pos("_r_9")},
		{neg("_r_13_14_19"), pos("_r_1_2_4")},
		{neg("_r_13_14_19"), neg("_r_13_14_20")},
		{neg("_r_13_14_18"), neg("_r_13_14_20")},
		{neg("_r_13_14_17"), pos("_r_9_10_12")},
	}
	for i, lits := range clauses {
		require.NoError(t, m.AddConstraint("constraint_"+strconv.Itoa(i+1), lits...))
	}
	return m
}

func pos(id string) featuremodel.Literal {
	return featuremodel.Literal{Var: featuremodel.NodeID(id), Positive: true}
}

func neg(id string) featuremodel.Literal {
	return featuremodel.Literal{Var: featuremodel.NodeID(id)}
}

// WriteGPLFile writes GPLXML to dir/name and returns the file path.
func WriteGPLFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(GPLXML), 0o600))
	return path
}

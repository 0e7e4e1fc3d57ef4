// Package sxfm loads feature models written in the SPLOT XML Feature Model
// (SXFM) format into a featuremodel.Model.
//
// An SXFM document wraps two indentation-based text sections:
//
//	<feature_model name="Graph Product Line">
//	<feature_tree>
//	:r GPL(_r)
//		:m Gtp(_r_1)
//			:g (_r_1_2) [1,1]
//				: directed(_r_1_2_3)
//				: undirected(_r_1_2_4)
//		:o Weight(_r_5)
//	</feature_tree>
//	<constraints>
//	c1:~_r_1_2_3 or _r_5
//	</constraints>
//	</feature_model>
//
// Tree lines are indented with tabs; depth is counted relative to the root
// line. `:r`, `:m`, `:o`, `:g` and `:` introduce the root, mandatory,
// optional, group and grouped nodes. The parenthesised id is optional: a
// feature without one is identified by its name, a group by its line number.
// A group maximum of `*` is unbounded.
//
// Constraint lines are `label: literal or literal ...`, where a literal is a
// node id optionally prefixed with `~`.
package sxfm

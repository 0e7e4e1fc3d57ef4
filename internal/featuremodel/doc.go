// Package featuremodel defines the format-agnostic, in-memory representation
// of a SPLOT feature model: a rooted tree of feature nodes plus a list of
// cross-tree constraints in conjunctive normal form.
//
// The `Model` is the single input of the `hlvl` translation engine. Concrete
// loaders (such as the SXFM loader in the `sxfm` package) build it through the
// Add* methods, which keep the tree well-formed: exactly one root, groups only
// contain grouped features, and constraints only reference known nodes.
//
// Parents are referenced by NodeID rather than by pointer. A node never owns
// its parent; the model owns every node and resolves the relation on lookup.
package featuremodel

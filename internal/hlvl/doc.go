// Package hlvl translates a feature model into an HLVL program.
//
// The translation is a single pre-order walk of the feature tree followed by
// one pass over the CNF constraints:
//
//   - Root: `boolean R` plus `coreElements(R)`.
//   - Solitaire: `boolean F` plus `decomposition(P,[F])<1>` when mandatory or
//     `<0>` when optional.
//   - Group: no element of its own; `boolean C` for each member, then
//     `group(P,[C1, C2])[1,1]`, or `[0,*]` when the group is unbounded. P is the
//     group's parent: groups are transparent containers.
//   - Grouped: nothing; its group already declared it.
//   - Clause: `expression(~N1 OR ~N2 OR P1)`, negative literals first.
//
// Every name goes through Sanitize. Relations are numbered r0, r1, ... in
// emission order when the program is rendered. The fixed header, section
// labels and operations block come from the templates package.
//
// Translation is a pure function of its input: no I/O, no goroutines, and
// the output order is part of the contract.
package hlvl

// Package templates holds the fixed text surrounding an HLVL program: the
// header line, the section labels, and the trailing operations block.
//
// Templates are written in HCL. Each attribute is a template string that may
// interpolate a single variable, `model`, the final model name:
//
//	model_suffix    = "_generated"
//	header          = "model  ${model}\n"
//	elements_label  = "elements: \n"
//	relations_label = "relations:\n"
//	operations      = "operations:\nvalidModel,numberOfConfigurations\n"
//
// The built-in set is embedded from default.hcl. A user file only needs to
// set the attributes it changes; the rest fall back to the built-in values.
package templates

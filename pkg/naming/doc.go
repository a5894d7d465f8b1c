// Package naming expands the user-configurable patterns that name every
// generated artifact.
//
// A name pattern mixes literal text with the placeholders {project},
// {interface}, {register} and {field}, and holds exactly one disambiguation
// marker {}:
//
//	c_{interface}_{register}_addr{}
//
// Only letters, underscores and placeholders may precede the marker; digits
// are allowed after it. Placeholders are limited to the scope of the key, so
// an interface-level key cannot use {register}.
//
// Expansion substitutes the already sanitized names of the enclosing
// project, interface, register and field and hands the result, marker still
// in place, to ident.Registry.Generate, which sanitizes it and appends
// "_2", "_3", ... at the marker until the name is unique.
//
// Description templates are free text with the same placeholders plus
// {description}; they name nothing and are neither sanitized nor registered.
//
// Settings files list one pattern per key. Keys missing from a file are
// filled with their defaults when it is loaded, so settings written by an
// older version keep working after new keys are added.
package naming

// Package model holds the source description of a register project: the
// interfaces, registers and bit fields a user edits, and the JSON/YAML
// exchange format they are stored in.
//
// Documents can be checked against an embedded CUE contract with Validator
// before decoding, and against semantic rules with Check afterwards. Clean
// normalizes a project by dropping attributes its structure makes
// meaningless; the generator always works on a cleaned copy.
package model

package ident

// ReservedWords are the reserved words of VHDL-2019 (which includes every
// earlier revision) together with the PSL keywords VHDL-2008 reserves.
var ReservedWords = []string{
	// VHDL-87/93
	"abs", "access", "after", "alias", "all", "and", "architecture", "array",
	"assert", "attribute", "begin", "block", "body", "buffer", "bus", "case",
	"component", "configuration", "constant", "disconnect", "downto", "else",
	"elsif", "end", "entity", "exit", "file", "for", "function", "generate",
	"generic", "group", "guarded", "if", "impure", "in", "inertial", "inout",
	"is", "label", "library", "linkage", "literal", "loop", "map", "mod",
	"nand", "new", "next", "nor", "not", "null", "of", "on", "open", "or",
	"others", "out", "package", "port", "postponed", "procedure", "process",
	"pure", "range", "record", "register", "reject", "rem", "report",
	"return", "rol", "ror", "select", "severity", "shared", "signal", "sla",
	"sll", "sra", "srl", "subtype", "then", "to", "transport", "type",
	"unaffected", "units", "until", "use", "variable", "wait", "when",
	"while", "with", "xnor", "xor",

	// VHDL-2002
	"protected",

	// VHDL-2008
	"context", "force", "parameter", "release",

	// VHDL-2019
	"private", "view",

	// PSL
	"assume", "assume_guarantee", "cover", "default", "fairness", "property",
	"restrict", "restrict_guarantee", "sequence", "strong", "vmode", "vprop",
	"vunit",
}

// Package ident mints VHDL identifiers.
//
// Sanitize maps arbitrary text to a legal basic identifier. A Registry
// records every identifier handed out during one generation run and, through
// Generate, appends "_2", "_3", ... at a pattern's marker until the
// sanitized candidate is free. NewRegistry starts with all VHDL and PSL
// reserved words taken, so generated names never shadow a keyword.
//
//	r := ident.NewRegistry()
//	r.Generate("abcd{}")   // "abcd"
//	r.Generate("abcd{}")   // "abcd_2"
//	r.Generate("_abcd_{}") // "abcd_3"
//	r.Generate("in{}")     // "in_2"
package ident

// Package generate turns a source project into the fully resolved model the
// VHDL and documentation templates render.
//
// Build cleans the project, resolves addresses and bus widths per interface,
// and names every artifact through the naming scheme. All names come from a
// single ident.Registry seeded with the VHDL reserved words, so two artifacts
// never share an identifier, not even across interfaces. A build is
// deterministic: the same project and settings always give the same names.
package generate

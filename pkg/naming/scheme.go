package naming

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/ident"
)

// Scheme is a compiled, validated Settings.
type Scheme struct {
	names        map[Key]*Pattern
	descriptions map[Key]*Description
}

// Pattern returns the compiled name pattern for key.
func (s *Scheme) Pattern(key Key) *Pattern {
	p, ok := s.names[key]
	if !ok {
		panic(fmt.Sprintf("naming: no pattern for key %q", key))
	}
	return p
}

// Allocate expands the pattern of key against ctx and claims the result in
// r, suffixing it at the marker until it is unique.
func (s *Scheme) Allocate(r *ident.Registry, key Key, ctx Context) string {
	return r.Generate(s.Pattern(key).Expand(ctx))
}

// Describe renders the description template of key.
func (s *Scheme) Describe(key Key, ctx Context) string {
	d, ok := s.descriptions[key]
	if !ok {
		panic(fmt.Sprintf("naming: no description template for key %q", key))
	}
	return d.Expand(ctx)
}

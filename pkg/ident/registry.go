package ident

import (
	"strconv"
	"strings"
)

// Marker is the disambiguation point in a pattern handed to Generate. It is
// replaced by "" on the first attempt and by "_2", "_3", ... afterwards.
const Marker = "{}"

// Registry is the set of identifiers already handed out during one
// generation run. Comparison is case-insensitive, as in VHDL.
//
// A Registry is not safe for concurrent use; every build owns its own.
type Registry struct {
	taken  map[string]struct{}
	tokens []string
}

// NewRegistry returns a registry that already contains every VHDL reserved
// word.
func NewRegistry() *Registry {
	r := NewScope()
	for _, w := range ReservedWords {
		r.taken[w] = struct{}{}
	}
	return r
}

// NewScope returns an empty registry. It is used to keep base names unique
// within one level of the source model.
func NewScope() *Registry {
	return &Registry{taken: make(map[string]struct{})}
}

// TryAdd claims token and reports whether it was still free.
func (r *Registry) TryAdd(token string) bool {
	key := strings.ToLower(token)
	if _, ok := r.taken[key]; ok {
		return false
	}
	r.taken[key] = struct{}{}
	r.tokens = append(r.tokens, token)
	return true
}

// Contains reports whether token (in any case) is taken.
func (r *Registry) Contains(token string) bool {
	_, ok := r.taken[strings.ToLower(token)]
	return ok
}

// Tokens returns the tokens claimed so far in claim order, reserved words
// excluded.
func (r *Registry) Tokens() []string {
	return append([]string(nil), r.tokens...)
}

// Generate sanitizes pattern with the marker removed and claims the result,
// retrying with numeric suffixes at the marker until it finds a free token.
// Every attempt is sanitized in full. pattern must contain Marker.
func (r *Registry) Generate(pattern string) string {
	if !strings.Contains(pattern, Marker) {
		panic("ident: pattern " + strconv.Quote(pattern) + " has no " + Marker + " marker")
	}
	for n := 1; ; n++ {
		suffix := ""
		if n > 1 {
			suffix = "_" + strconv.Itoa(n)
		}
		candidate := Sanitize(strings.Replace(pattern, Marker, suffix, 1))
		if r.TryAdd(candidate) {
			return candidate
		}
	}
}

// Unique sanitizes name and makes it unique in r by appending a suffix.
func (r *Registry) Unique(name string) string {
	return r.Generate(name + Marker)
}

package naming

import (
	"strings"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/ident"
	"github.com/pkg/errors"
)

// ErrPattern is returned for malformed name or description patterns.
var ErrPattern = errors.New("invalid naming pattern")

// Context holds the names a pattern is expanded against. The names are
// expected to be sanitized and unique at their level already.
type Context struct {
	Project     string
	Interface   string
	Register    string
	Field       string
	Description string
}

func (c Context) value(placeholder string) string {
	switch placeholder {
	case "project":
		return c.Project
	case "interface":
		return c.Interface
	case "register":
		return c.Register
	case "field":
		return c.Field
	case "description":
		return c.Description
	default:
		return ""
	}
}

// placeholders allowed at each scope, innermost last
var scopePlaceholders = []string{"project", "interface", "register", "field"}

func allowed(placeholder string, scope Scope, description bool) bool {
	if description && placeholder == "description" {
		return true
	}
	for i, p := range scopePlaceholders {
		if p == placeholder {
			return Scope(i) <= scope
		}
	}
	return false
}

type segment struct {
	placeholder string
	text        string
}

// Pattern is a validated name pattern.
type Pattern struct {
	raw   string
	scope Scope
	head  []segment
	tail  []segment
}

// ParsePattern validates s as a name pattern for the given scope.
func ParsePattern(s string, scope Scope) (*Pattern, error) {
	ast, err := nameParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrPattern, "%q: %v", s, err)
	}
	p := &Pattern{raw: s, scope: scope}
	for _, h := range ast.Head {
		p.head = append(p.head, segment{placeholder: trimBraces(h.Placeholder), text: h.Text})
	}
	for _, t := range ast.Tail {
		p.tail = append(p.tail, segment{placeholder: trimBraces(t.Placeholder), text: t.Text})
	}
	for _, seg := range append(append([]segment(nil), p.head...), p.tail...) {
		if seg.placeholder != "" && !allowed(seg.placeholder, scope, false) {
			return nil, errors.Wrapf(ErrPattern, "%q: placeholder {%s} is not available at %s level", s, seg.placeholder, scope)
		}
	}
	return p, nil
}

func trimBraces(s string) string {
	return strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
}

func (p *Pattern) String() string { return p.raw }

// Expand substitutes ctx into the pattern and keeps the marker in place, ready
// for ident.Registry.Generate.
func (p *Pattern) Expand(ctx Context) string {
	var b strings.Builder
	writeSegments(&b, p.head, ctx)
	b.WriteString(ident.Marker)
	writeSegments(&b, p.tail, ctx)
	return b.String()
}

func writeSegments(b *strings.Builder, segs []segment, ctx Context) {
	for _, s := range segs {
		if s.placeholder != "" {
			b.WriteString(ctx.value(s.placeholder))
			continue
		}
		b.WriteString(s.text)
	}
}

// Description is a validated free-text template.
type Description struct {
	raw      string
	segments []segment
}

// ParseDescription validates s as a description template for the given
// scope. Besides the scope placeholders it accepts {description}.
func ParseDescription(s string, scope Scope) (*Description, error) {
	ast, err := descriptionParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrPattern, "%q: %v", s, err)
	}
	d := &Description{raw: s}
	for _, seg := range ast.Segments {
		name := trimBraces(seg.Placeholder)
		if name != "" && !allowed(name, scope, true) {
			return nil, errors.Wrapf(ErrPattern, "%q: placeholder {%s} is not available at %s level", s, name, scope)
		}
		d.segments = append(d.segments, segment{placeholder: name, text: seg.Text})
	}
	return d, nil
}

func (d *Description) String() string { return d.raw }

// Expand renders the description. Trailing separators left behind by empty
// placeholders are trimmed.
func (d *Description) Expand(ctx Context) string {
	var b strings.Builder
	writeSegments(&b, d.segments, ctx)
	return strings.TrimRight(strings.TrimSpace(b.String()), " :,;-")
}

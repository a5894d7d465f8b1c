package model

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/ident"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
)

// Issue is a semantic problem found by Check. Path locates the offending
// element as interfaces/<name>/registers/<name>/fields/<name>.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return i.Path + ": " + i.Message
}

// Check reports problems the schema cannot express. It never modifies p.
// Address overlaps need resolved placement and are reported by
// layout.Overlaps instead.
func Check(p *Project) []Issue {
	var issues []Issue
	add := func(path, format string, args ...interface{}) {
		issues = append(issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	ifaceNames := map[string]string{}
	for _, iface := range p.Interfaces {
		ipath := "interfaces/" + iface.Name
		checkDuplicate(ifaceNames, iface.Name, ipath, add)

		regNames := map[string]string{}
		for _, r := range iface.Registers {
			rpath := ipath + "/registers/" + r.Name
			checkDuplicate(regNames, r.Name, rpath, add)
			checkRegister(iface, r, rpath, add)
		}
	}
	return issues
}

type addFunc func(path, format string, args ...interface{})

func checkDuplicate(seen map[string]string, name, path string, add addFunc) {
	key := strings.ToLower(ident.Sanitize(name))
	if first, ok := seen[key]; ok {
		add(path, "name %q collides with %s after sanitizing to %q", name, first, ident.Sanitize(name))
		return
	}
	seen[key] = path
}

func checkRegister(iface *Interface, r *Register, path string, add addFunc) {
	if len(r.Fields) == 0 {
		width := 0
		switch {
		case r.Width != nil:
			width = *r.Width
		case iface.DataWidth != nil:
			width = *iface.DataWidth
		}
		if r.SignalType != nil && *r.SignalType == StdLogic && width > 1 {
			add(path, "signal type StdLogic cannot carry %d bits", width)
		}
		if r.ResetValue != nil && width > 0 && width < 64 && bits.Len64(r.ResetValue.N) > width {
			add(path, "reset value %s does not fit in %d bits", r.ResetValue, width)
		}
		if iface.DataWidth != nil && r.Width != nil && *r.Width > *iface.DataWidth {
			add(path, "width %d exceeds the %d bit data bus", *r.Width, *iface.DataWidth)
		}
		return
	}

	var stray []string
	if r.Width != nil {
		stray = append(stray, "width")
	}
	if r.Access != nil {
		stray = append(stray, "access")
	}
	if r.SignalType != nil {
		stray = append(stray, "signalType")
	}
	if r.ResetValue != nil {
		stray = append(stray, "resetValue")
	}
	if r.Location != nil {
		stray = append(stray, "location")
	}
	if len(stray) > 0 {
		add(path, "register has fields, ignoring %s", strings.Join(stray, ", "))
	}

	fieldNames := map[string]string{}
	for i, f := range r.Fields {
		fpath := path + "/fields/" + f.Name
		checkDuplicate(fieldNames, f.Name, fpath, add)

		msb, lsb := literal.Bounds(f.Position.Get())
		if msb < lsb {
			add(fpath, "position %s has msb below lsb", f.Position)
			continue
		}
		width := msb - lsb + 1
		if iface.DataWidth != nil && msb >= uint64(*iface.DataWidth) {
			add(fpath, "bit %d is beyond the %d bit data bus", msb, *iface.DataWidth)
		}
		if f.SignalType == StdLogic && width > 1 {
			add(fpath, "signal type StdLogic cannot carry %d bits", width)
		}
		if width < 64 && uint64(bits.Len64(f.ResetValue.N)) > width {
			add(fpath, "reset value %s does not fit in %d bits", f.ResetValue, width)
		}

		for _, other := range r.Fields[:i] {
			omsb, olsb := literal.Bounds(other.Position.Get())
			if omsb < olsb {
				continue
			}
			if lsb <= omsb && olsb <= msb {
				add(fpath, "bits %s overlap field %q (%s)", f.Position, other.Name, other.Position)
			}
		}
	}
}

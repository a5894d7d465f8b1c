package protocol

import (
	"fmt"
	"strings"
)

// Protocol is the bus protocol an interface speaks.
type Protocol string

const (
	SBI       Protocol = "SBI"
	APB3      Protocol = "APB3"
	AvalonMM  Protocol = "AvalonMm"
	AXI4Light Protocol = "AXI4Light"
)

// Protocols lists every supported protocol in catalog order.
var Protocols = []Protocol{SBI, APB3, AvalonMM, AXI4Light}

// Parse matches s against the protocol tags. Tags are case-sensitive, as in
// the source schema.
func Parse(s string) (Protocol, error) {
	if p := Protocol(s); p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("protocol: unknown protocol %q (want one of %v)", s, Protocols)
}

func (p Protocol) String() string { return string(p) }

// Valid reports whether p is one of the supported tags.
func (p Protocol) Valid() bool {
	_, ok := catalog[p]
	return ok
}

func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Direction is the port mode seen from the register interface.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Port is one physical signal of a bus protocol.
type Port struct {
	// Function is the signal's role, unique within a protocol (e.g. "paddr").
	Function  string
	Direction Direction
	// Type is a VHDL type expression. It may contain {addr_msb}, {data_msb}
	// and {strb_msb}.
	Type        string
	Description string
	// NameKey is the naming-template key that names this port.
	NameKey string
}

// DefaultPattern is the naming pattern used for p when the settings do not
// override its key.
func (p Port) DefaultPattern() string {
	return "{interface}_" + p.Function + "{}"
}

// ExpandType substitutes the bus widths into the port's type expression.
func (p Port) ExpandType(addrWidth, dataWidth int) string {
	strb := (dataWidth + 7) / 8
	r := strings.NewReplacer(
		"{addr_msb}", fmt.Sprint(addrWidth-1),
		"{data_msb}", fmt.Sprint(dataWidth-1),
		"{strb_msb}", fmt.Sprint(strb-1),
	)
	return r.Replace(p.Type)
}

// Lookup returns the port table of p.
func Lookup(p Protocol) ([]Port, bool) {
	ports, ok := catalog[p]
	if !ok {
		return nil, false
	}
	return append([]Port(nil), ports...), true
}

// All returns every catalog entry of every protocol in catalog order.
func All() []Port {
	var all []Port
	for _, p := range Protocols {
		all = append(all, catalog[p]...)
	}
	return all
}

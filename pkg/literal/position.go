package literal

// Position is the bit placement of a field inside its register: Bit or Range.
type Position interface {
	isPosition()
	String() string
}

// Bit is a single-bit field.
type Bit struct {
	N Value
}

// Range spans Msb down to Lsb inclusive.
type Range struct {
	Msb Value
	Lsb Value
}

func (Bit) isPosition()   {}
func (Range) isPosition() {}

func (p Bit) String() string { return p.N.String() }

func (p Range) String() string { return p.Msb.String() + ":" + p.Lsb.String() }

// Bounds returns the most and least significant bit of p.
func Bounds(p Position) (msb, lsb uint64) {
	switch p := p.(type) {
	case Bit:
		return p.N.N, p.N.N
	case Range:
		return p.Msb.N, p.Lsb.N
	default:
		panic("literal: unknown position type")
	}
}

// PositionSpec carries a Position through JSON and YAML as a single string.
type PositionSpec struct {
	Position Position
}

// Get returns the wrapped position, bit 0 when unset.
func (s PositionSpec) Get() Position {
	if s.Position == nil {
		return Bit{}
	}
	return s.Position
}

func (s PositionSpec) String() string {
	return s.Get().String()
}

func (s PositionSpec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *PositionSpec) UnmarshalText(text []byte) error {
	p, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	s.Position = p
	return nil
}

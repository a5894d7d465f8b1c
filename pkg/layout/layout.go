package layout

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/samber/lo"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/model"
)

// MaxWidth is the widest bus and register supported.
const MaxWidth = 64

var (
	// ErrUnresolvableWidth means a bus width is neither given nor derivable.
	ErrUnresolvableWidth = errors.New("layout: cannot resolve bus width")
	// ErrRegisterTooWide means a register does not fit the data bus.
	ErrRegisterTooWide = errors.New("layout: register wider than the data bus")
	// ErrEmptyStride means a strided register repeats zero times or by zero bytes.
	ErrEmptyStride = errors.New("layout: empty stride")
	// ErrAddressOverflow means the registers do not fit the address bus.
	ErrAddressOverflow = errors.New("layout: address does not fit the address bus")
)

// Placement is the resolved position of one register.
type Placement struct {
	// Register is the index into the interface's register list.
	Register int
	Name     string

	// Base is the byte address of the first instance.
	Base uint64
	// Count is 1 for plain registers.
	Count uint64
	// Increment is the byte distance between instances; the word size for
	// plain registers.
	Increment uint64
	// Width is the register width in bits.
	Width int
	// Bytes is the byte width of one instance, the bus word size.
	Bytes uint64

	Strided   bool
	Automatic bool
}

// End is the first byte address after the register's stride span.
func (p Placement) End() uint64 {
	return p.Base + p.Count*p.Increment
}

// Extent is the first byte address after the last byte of the last instance.
// It differs from End only when the increment is smaller than an instance.
func (p Placement) Extent() uint64 {
	return p.Base + (p.Count-1)*p.Increment + max(p.Increment, p.Bytes)
}

// extent is Extent with overflow detection. A register ending exactly at
// 2^64 overflows too, since its end is not representable.
func extent(p Placement) (uint64, bool) {
	hi, steps := bits.Mul64(p.Count-1, p.Increment)
	last, c1 := bits.Add64(p.Base, steps, 0)
	end, c2 := bits.Add64(last, max(p.Increment, p.Bytes), 0)
	return end, hi == 0 && c1 == 0 && c2 == 0
}

// Interface is the resolved layout of one interface.
type Interface struct {
	AddressWidth int
	DataWidth    int
	// WordBytes is the byte width of one bus word and of every register.
	WordBytes int
	Registers []Placement
}

// RegisterWidth returns the bit width a register declares: its explicit
// width, or one past the highest field bit. ok is false for a register with
// neither.
func RegisterWidth(r *model.Register) (width int, ok bool) {
	if len(r.Fields) > 0 {
		msb := lo.Max(lo.Map(r.Fields, func(f *model.Field, _ int) uint64 {
			m, _ := literal.Bounds(f.Position.Get())
			return m
		}))
		if msb >= MaxWidth {
			return MaxWidth + 1, true
		}
		return int(msb) + 1, true
	}
	if r.Width != nil {
		return *r.Width, true
	}
	return 0, false
}

// Resolve places every register of iface and settles its bus widths.
func Resolve(iface *model.Interface) (*Interface, error) {
	known := lo.FilterMap(iface.Registers, func(r *model.Register, _ int) (int, bool) {
		return RegisterWidth(r)
	})

	l := &Interface{}
	switch {
	case iface.DataWidth != nil:
		l.DataWidth = *iface.DataWidth
	case len(known) > 0:
		l.DataWidth = lo.Max(known)
	default:
		return nil, fmt.Errorf("%w: no data width given and no register declares one", ErrUnresolvableWidth)
	}
	if l.DataWidth < 1 || l.DataWidth > MaxWidth {
		return nil, fmt.Errorf("%w: data width %d is outside 1..%d", ErrUnresolvableWidth, l.DataWidth, MaxWidth)
	}
	l.WordBytes = (l.DataWidth + 7) / 8
	word := uint64(l.WordBytes)

	var cursor, maxEnd uint64
	for i, r := range iface.Registers {
		p := Placement{Register: i, Name: r.Name, Count: 1, Increment: word, Bytes: word}

		width, ok := RegisterWidth(r)
		if !ok {
			width = l.DataWidth
		}
		if width > l.DataWidth {
			return nil, fmt.Errorf("%w: register %q needs %d bits, the bus has %d", ErrRegisterTooWide, r.Name, width, l.DataWidth)
		}
		p.Width = width

		switch a := r.Address.Get().(type) {
		case literal.Auto:
			base, ok := alignUp(cursor, word)
			if !ok {
				return nil, fmt.Errorf("%w: no room left for register %q", ErrAddressOverflow, r.Name)
			}
			p.Base = base
			p.Automatic = true
		case literal.Fixed:
			p.Base = a.Base.N
		case literal.Strided:
			p.Base = a.Base.N
			p.Strided = true
			p.Count = a.Count.N
			if a.Increment != nil {
				p.Increment = a.Increment.N
			}
			if p.Count == 0 {
				return nil, fmt.Errorf("%w: register %q repeats 0 times", ErrEmptyStride, r.Name)
			}
			if p.Increment == 0 {
				return nil, fmt.Errorf("%w: register %q has a zero increment", ErrEmptyStride, r.Name)
			}
		default:
			panic(fmt.Sprintf("layout: unknown address type %T", a))
		}

		end, ok := extent(p)
		if !ok {
			return nil, fmt.Errorf("%w: register %q at 0x%x runs past the 64-bit address space", ErrAddressOverflow, r.Name, p.Base)
		}
		cursor = end
		maxEnd = max(maxEnd, end)
		l.Registers = append(l.Registers, p)
	}

	need := 0
	if maxEnd > 0 {
		need = max(bits.Len64(maxEnd-1), 1)
	}
	switch {
	case iface.AddressWidth != nil:
		l.AddressWidth = *iface.AddressWidth
		if l.AddressWidth < 1 || l.AddressWidth > MaxWidth {
			return nil, fmt.Errorf("%w: address width %d is outside 1..%d", ErrUnresolvableWidth, l.AddressWidth, MaxWidth)
		}
		if need > l.AddressWidth {
			return nil, fmt.Errorf("%w: last byte 0x%x needs %d bits, the bus has %d", ErrAddressOverflow, maxEnd-1, need, l.AddressWidth)
		}
	case need > 0:
		l.AddressWidth = need
	default:
		return nil, fmt.Errorf("%w: no address width given and no registers to derive one from", ErrUnresolvableWidth)
	}
	return l, nil
}

func alignUp(n, align uint64) (uint64, bool) {
	rem := n % align
	if rem == 0 {
		return n, true
	}
	up, carry := bits.Add64(n, align-rem, 0)
	return up, carry == 0
}

// Overlap is a pair of registers whose address ranges intersect. First and
// Second are the same placement when a strided register's instances overlap
// each other.
type Overlap struct {
	First, Second Placement
}

// Self reports whether the overlap is between instances of one register.
func (o Overlap) Self() bool {
	return o.First.Register == o.Second.Register
}

func (o Overlap) String() string {
	if o.Self() {
		return fmt.Sprintf("register %q repeats every 0x%x bytes but each instance is %d bytes wide",
			o.First.Name, o.First.Increment, o.First.Bytes)
	}
	return fmt.Sprintf("register %q (0x%x..0x%x) overlaps %q (0x%x..0x%x)",
		o.Second.Name, o.Second.Base, o.Second.Extent(),
		o.First.Name, o.First.Base, o.First.Extent())
}

// Overlaps lists every register in l whose instances overlap each other and
// every pair of registers whose byte ranges intersect, in declaration order
// of the later register.
func Overlaps(l *Interface) []Overlap {
	var out []Overlap
	for i, b := range l.Registers {
		if b.Count > 1 && b.Increment < b.Bytes {
			out = append(out, Overlap{First: b, Second: b})
		}
		for _, a := range l.Registers[:i] {
			if b.Base < a.Extent() && a.Base < b.Extent() {
				out = append(out, Overlap{First: a, Second: b})
			}
		}
	}
	return out
}

package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/model"
)

func intp(v int) *int { return &v }

func reg(name, address string, width int) *model.Register {
	r := &model.Register{Name: name, Address: literal.AddressSpec{Address: literal.Auto{}}}
	if address != "" {
		a, err := literal.ParseAddress(address)
		if err != nil {
			panic(err)
		}
		r.Address.Address = a
	}
	if width > 0 {
		r.Width = intp(width)
	}
	return r
}

func withFields(r *model.Register, positions ...string) *model.Register {
	for _, pos := range positions {
		p, err := literal.ParsePosition(pos)
		if err != nil {
			panic(err)
		}
		r.Fields = append(r.Fields, &model.Field{Name: "f" + pos, Position: literal.PositionSpec{Position: p}})
	}
	return r
}

type want struct {
	name      string
	base, end uint64
	width     int
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		iface      *model.Interface
		addrWidth  int
		dataWidth  int
		wordBytes  int
		placements []want
	}{
		{
			name: "explicit and automatic",
			iface: &model.Interface{
				DataWidth: intp(32),
				Registers: []*model.Register{
					reg("ctrl", "0x0", 0),
					reg("status", "auto", 8),
					reg("fifo", "0x40:stride:4", 32),
					reg("irq", "auto", 0),
				},
			},
			addrWidth: 7,
			dataWidth: 32,
			wordBytes: 4,
			placements: []want{
				{"ctrl", 0x00, 0x04, 32},
				{"status", 0x04, 0x08, 8},
				{"fifo", 0x40, 0x50, 32},
				{"irq", 0x50, 0x54, 32},
			},
		},
		{
			name: "data width from widest register",
			iface: &model.Interface{
				Registers: []*model.Register{
					reg("a", "", 8),
					withFields(reg("b", "", 0), "5:2", "0"),
					reg("c", "", 0),
				},
			},
			addrWidth: 2,
			dataWidth: 8,
			wordBytes: 1,
			placements: []want{
				{"a", 0, 1, 8},
				{"b", 1, 2, 6},
				{"c", 2, 3, 8},
			},
		},
		{
			name: "automatic placement aligns to the word",
			iface: &model.Interface{
				DataWidth: intp(16),
				Registers: []*model.Register{
					reg("odd", "0x3", 0),
					reg("next", "auto", 0),
				},
			},
			addrWidth: 3,
			dataWidth: 16,
			wordBytes: 2,
			placements: []want{
				{"odd", 3, 5, 16},
				{"next", 6, 8, 16},
			},
		},
		{
			name: "cursor follows a backwards explicit address",
			iface: &model.Interface{
				DataWidth: intp(8),
				Registers: []*model.Register{
					reg("high", "0x10", 0),
					reg("low", "0x2", 0),
					reg("after", "auto", 0),
				},
			},
			addrWidth: 5,
			dataWidth: 8,
			wordBytes: 1,
			placements: []want{
				{"high", 0x10, 0x11, 8},
				{"low", 0x2, 0x3, 8},
				{"after", 0x3, 0x4, 8},
			},
		},
		{
			name: "explicit stride increment and explicit address width",
			iface: &model.Interface{
				AddressWidth: intp(12),
				DataWidth:    intp(32),
				Registers: []*model.Register{
					reg("lut", "0x100:stride:8:0x10", 0),
					reg("tail", "auto", 0),
				},
			},
			addrWidth: 12,
			dataWidth: 32,
			wordBytes: 4,
			placements: []want{
				{"lut", 0x100, 0x180, 32},
				{"tail", 0x180, 0x184, 32},
			},
		},
		{
			name: "single register needs one address bit",
			iface: &model.Interface{
				DataWidth: intp(8),
				Registers: []*model.Register{reg("only", "auto", 0)},
			},
			addrWidth: 1,
			dataWidth: 8,
			wordBytes: 1,
			placements: []want{
				{"only", 0, 1, 8},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Resolve(tt.iface)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if l.AddressWidth != tt.addrWidth || l.DataWidth != tt.dataWidth || l.WordBytes != tt.wordBytes {
				t.Errorf("widths = addr %d data %d word %d, want %d %d %d",
					l.AddressWidth, l.DataWidth, l.WordBytes, tt.addrWidth, tt.dataWidth, tt.wordBytes)
			}
			if len(l.Registers) != len(tt.placements) {
				t.Fatalf("got %d placements, want %d", len(l.Registers), len(tt.placements))
			}
			for i, w := range tt.placements {
				p := l.Registers[i]
				if p.Name != w.name || p.Base != w.base || p.End() != w.end || p.Width != w.width {
					t.Errorf("placement %d = %s 0x%x..0x%x width %d, want %s 0x%x..0x%x width %d",
						i, p.Name, p.Base, p.End(), p.Width, w.name, w.base, w.end, w.width)
				}
				if p.Register != i {
					t.Errorf("placement %d points at register %d", i, p.Register)
				}
			}
		})
	}
}

func TestResolveFlags(t *testing.T) {
	l, err := Resolve(&model.Interface{
		DataWidth: intp(32),
		Registers: []*model.Register{reg("a", "auto", 0), reg("b", "0x8:stride:2", 0), reg("c", "0x20", 0)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !l.Registers[0].Automatic || l.Registers[0].Strided {
		t.Errorf("a flags = %+v", l.Registers[0])
	}
	if l.Registers[1].Automatic || !l.Registers[1].Strided || l.Registers[1].Count != 2 || l.Registers[1].Increment != 4 {
		t.Errorf("b flags = %+v", l.Registers[1])
	}
	if l.Registers[2].Automatic || l.Registers[2].Strided {
		t.Errorf("c flags = %+v", l.Registers[2])
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		iface *model.Interface
		want  error
	}{
		{
			name:  "no widths anywhere",
			iface: &model.Interface{Registers: []*model.Register{reg("a", "auto", 0)}},
			want:  ErrUnresolvableWidth,
		},
		{
			name:  "no registers and no address width",
			iface: &model.Interface{DataWidth: intp(32)},
			want:  ErrUnresolvableWidth,
		},
		{
			name: "register wider than bus",
			iface: &model.Interface{
				DataWidth: intp(8),
				Registers: []*model.Register{reg("a", "auto", 16)},
			},
			want: ErrRegisterTooWide,
		},
		{
			name: "field beyond bus",
			iface: &model.Interface{
				DataWidth: intp(8),
				Registers: []*model.Register{withFields(reg("a", "auto", 0), "8")},
			},
			want: ErrRegisterTooWide,
		},
		{
			name: "field beyond 64 bits",
			iface: &model.Interface{
				Registers: []*model.Register{withFields(reg("a", "auto", 0), "70")},
			},
			want: ErrUnresolvableWidth,
		},
		{
			name: "zero count",
			iface: &model.Interface{
				DataWidth: intp(8),
				Registers: []*model.Register{reg("a", "0x0:stride:0", 0)},
			},
			want: ErrEmptyStride,
		},
		{
			name: "zero increment",
			iface: &model.Interface{
				DataWidth: intp(8),
				Registers: []*model.Register{reg("a", "0x0:stride:4:0", 0)},
			},
			want: ErrEmptyStride,
		},
		{
			name: "address width too narrow",
			iface: &model.Interface{
				AddressWidth: intp(4),
				DataWidth:    intp(8),
				Registers:    []*model.Register{reg("a", "0x10", 0)},
			},
			want: ErrAddressOverflow,
		},
		{
			name: "register ending at the top of the address space",
			iface: &model.Interface{
				DataWidth: intp(32),
				Registers: []*model.Register{reg("top", "0xfffffffffffffffc", 0), reg("next", "auto", 0)},
			},
			want: ErrAddressOverflow,
		},
		{
			name: "stride span past 64 bits",
			iface: &model.Interface{
				DataWidth: intp(32),
				Registers: []*model.Register{reg("huge", "0x10:stride:0x4000000000000000:4", 0)},
			},
			want: ErrAddressOverflow,
		},
		{
			name: "no room for an automatic register",
			iface: &model.Interface{
				DataWidth: intp(32),
				Registers: []*model.Register{reg("high", "0xfffffffffffffff9", 0), reg("next", "auto", 0)},
			},
			want: ErrAddressOverflow,
		},
		{
			name:  "zero address width",
			iface: &model.Interface{AddressWidth: intp(0), DataWidth: intp(8)},
			want:  ErrUnresolvableWidth,
		},
		{
			name: "negative address width",
			iface: &model.Interface{
				AddressWidth: intp(-3),
				DataWidth:    intp(8),
				Registers:    []*model.Register{reg("a", "auto", 0)},
			},
			want: ErrUnresolvableWidth,
		},
		{
			name:  "address width above 64",
			iface: &model.Interface{AddressWidth: intp(65), DataWidth: intp(8)},
			want:  ErrUnresolvableWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.iface)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveEmptyWithExplicitWidths(t *testing.T) {
	l, err := Resolve(&model.Interface{AddressWidth: intp(4), DataWidth: intp(8)})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if l.AddressWidth != 4 || len(l.Registers) != 0 {
		t.Errorf("got %+v", l)
	}
}

func TestOverlaps(t *testing.T) {
	l, err := Resolve(&model.Interface{
		DataWidth: intp(32),
		Registers: []*model.Register{
			reg("table", "0x0:stride:4", 0),
			reg("clash", "0x8", 0),
			reg("free", "0x20", 0),
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := Overlaps(l)
	if len(got) != 1 {
		t.Fatalf("got %d overlaps %v, want 1", len(got), got)
	}
	if got[0].First.Name != "table" || got[0].Second.Name != "clash" {
		t.Errorf("overlap = %v", got[0])
	}
	if !strings.Contains(got[0].String(), `register "clash" (0x8..0xc) overlaps "table" (0x0..0x10)`) {
		t.Errorf("String() = %q", got[0])
	}
}

func TestResolveHighestAddress(t *testing.T) {
	l, err := Resolve(&model.Interface{
		DataWidth: intp(32),
		Registers: []*model.Register{reg("last", "0xfffffffffffffff8", 0)},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if l.AddressWidth != 64 || l.Registers[0].Extent() != 0xfffffffffffffffc {
		t.Errorf("got address width %d, extent 0x%x", l.AddressWidth, l.Registers[0].Extent())
	}
}

func TestOverlapsNarrowStride(t *testing.T) {
	l, err := Resolve(&model.Interface{
		DataWidth: intp(32),
		Registers: []*model.Register{
			reg("bytes", "0x0:stride:4:1", 0),
			reg("next", "0x4", 0),
			reg("after", "auto", 0),
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if p := l.Registers[0]; p.End() != 4 || p.Extent() != 7 {
		t.Errorf("bytes end 0x%x extent 0x%x, want 0x4 0x7", p.End(), p.Extent())
	}
	if l.Registers[2].Base != 8 {
		t.Errorf("after placed at 0x%x, want 0x8", l.Registers[2].Base)
	}

	got := Overlaps(l)
	if len(got) != 2 {
		t.Fatalf("got %d overlaps %v, want 2", len(got), got)
	}
	if !got[0].Self() || got[0].First.Name != "bytes" {
		t.Errorf("first overlap = %v", got[0])
	}
	if !strings.Contains(got[0].String(), `register "bytes" repeats every 0x1 bytes but each instance is 4 bytes wide`) {
		t.Errorf("String() = %q", got[0])
	}
	if got[1].Self() || got[1].First.Name != "bytes" || got[1].Second.Name != "next" {
		t.Errorf("second overlap = %v", got[1])
	}
	if !strings.Contains(got[1].String(), `register "next" (0x4..0x8) overlaps "bytes" (0x0..0x7)`) {
		t.Errorf("String() = %q", got[1])
	}
}

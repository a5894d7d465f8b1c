package literal

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestParseAddressStrided(t *testing.T) {
	a, err := ParseAddress("0x40:stride:10:0x4")
	if err != nil {
		t.Fatalf("ParseAddress failed: %v", err)
	}

	s, ok := a.(Strided)
	if !ok {
		t.Fatalf("got %T, want Strided", a)
	}
	if s.Base != Hex(0x40) {
		t.Errorf("Base = %v, want 0x40", s.Base)
	}
	if s.Count != Dec(10) {
		t.Errorf("Count = %v (%s), want decimal 10", s.Count, s.Count.Radix)
	}
	if s.Increment == nil || *s.Increment != Hex(4) {
		t.Errorf("Increment = %v, want 0x4", s.Increment)
	}
}

func TestParseAddressForms(t *testing.T) {
	tests := []struct {
		in   string
		want Address
	}{
		{"auto", Auto{}},
		{"0x40", Fixed{Base: Hex(0x40)}},
		{"12", Fixed{Base: Dec(12)}},
		{"0x40:stride:4", Strided{Base: Hex(0x40), Count: Dec(4)}},
		{"0b100:stride:0x2:8", Strided{Base: Bin(4), Count: Hex(2), Increment: valuePtr(Dec(8))}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAddress(tt.in)
			if err != nil {
				t.Fatalf("ParseAddress(%q) failed: %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseAddress(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseAddressRejects(t *testing.T) {
	inputs := []string{
		"",
		"0x40:bug:10:0x4",
		"0x40:stride",
		"0x40:stride:",
		"0x40:10",
		"0x40:stride:10:0x4:1",
		"auto:stride:4",
		"Auto",
		"0x40 :stride:4",
		"stride:4",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseAddress(in); err == nil {
				t.Errorf("ParseAddress(%q) succeeded, want error", in)
			}
		})
	}
}

func TestParseAddressBadNumber(t *testing.T) {
	_, err := ParseAddress("0xzz:stride:4")
	if !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("error = %v, want ErrInvalidNumber", err)
	}

	_, err = ParseAddress("0x40:bug:4")
	if !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("error = %v, want ErrInvalidAddress", err)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	addrs := []Address{
		Auto{},
		Fixed{Base: Dec(0)},
		Fixed{Base: Bin(5)},
		Strided{Base: Hex(0x100), Count: Dec(8)},
		Strided{Base: Hex(0x100), Count: Bin(3), Increment: valuePtr(Hex(0x10))},
	}

	for _, a := range addrs {
		got, err := ParseAddress(a.String())
		if err != nil {
			t.Fatalf("ParseAddress(%q) failed: %v", a.String(), err)
		}
		if !reflect.DeepEqual(got, a) {
			t.Errorf("round trip of %q gave %#v", a.String(), got)
		}
	}
}

func TestAddressSpecJSON(t *testing.T) {
	var doc struct {
		Address AddressSpec `json:"address"`
		Missing AddressSpec `json:"missing"`
	}
	if err := json.Unmarshal([]byte(`{"address":"0x40:stride:2"}`), &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := doc.Address.Get().(Strided); !ok {
		t.Errorf("address = %T, want Strided", doc.Address.Get())
	}
	if _, ok := doc.Missing.Get().(Auto); !ok {
		t.Errorf("zero AddressSpec = %T, want Auto", doc.Missing.Get())
	}

	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"address":"0x40:stride:2","missing":"auto"}`
	if string(out) != want {
		t.Errorf("Marshal = %s, want %s", out, want)
	}

	if err := json.Unmarshal([]byte(`{"address":"0x40:oops"}`), &doc); err == nil {
		t.Error("Unmarshal accepted a malformed address")
	}
}

func valuePtr(v Value) *Value { return &v }

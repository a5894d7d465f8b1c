package protocol

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	counts := map[Protocol]int{SBI: 9, APB3: 10, AvalonMM: 10, AXI4Light: 21}
	for proto, want := range counts {
		ports, ok := Lookup(proto)
		if !ok {
			t.Fatalf("Lookup(%s) not found", proto)
		}
		if len(ports) != want {
			t.Errorf("%s has %d ports, want %d", proto, len(ports), want)
		}
	}

	if _, ok := Lookup("Wishbone"); ok {
		t.Error("Lookup accepted an unknown protocol")
	}
}

func TestCatalogConsistency(t *testing.T) {
	keys := make(map[string]bool)
	for _, proto := range Protocols {
		ports, _ := Lookup(proto)
		functions := make(map[string]bool)
		for _, p := range ports {
			if functions[p.Function] {
				t.Errorf("%s: duplicate function %q", proto, p.Function)
			}
			functions[p.Function] = true

			if keys[p.NameKey] {
				t.Errorf("%s: duplicate name key %q", proto, p.NameKey)
			}
			keys[p.NameKey] = true

			if p.Direction != In && p.Direction != Out {
				t.Errorf("%s.%s: bad direction %q", proto, p.Function, p.Direction)
			}
			if p.Description == "" {
				t.Errorf("%s.%s: missing description", proto, p.Function)
			}
		}
	}
	if len(keys) != len(All()) {
		t.Errorf("All() returned %d ports, want %d", len(All()), len(keys))
	}
}

func TestExpandType(t *testing.T) {
	ports, _ := Lookup(AXI4Light)
	want := map[string]string{
		"aclk":   "std_logic",
		"awaddr": "std_logic_vector(7 downto 0)",
		"wdata":  "std_logic_vector(31 downto 0)",
		"wstrb":  "std_logic_vector(3 downto 0)",
		"bresp":  "std_logic_vector(1 downto 0)",
	}
	for _, p := range ports {
		exp, ok := want[p.Function]
		if !ok {
			continue
		}
		if got := p.ExpandType(8, 32); got != exp {
			t.Errorf("%s: ExpandType = %q, want %q", p.Function, got, exp)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	ports, _ := Lookup(SBI)
	ports[0].Function = "changed"
	again, _ := Lookup(SBI)
	if again[0].Function != "clk" {
		t.Error("Lookup exposed the catalog table")
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"SBI", "APB3", "AvalonMm", "AXI4Light"} {
		p, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", s, err)
		}
		if p.String() != s {
			t.Errorf("Parse(%q) = %q", s, p)
		}
	}
	for _, s := range []string{"AXI4Lite", "apb3", "AVALONMM", "sbi", ""} {
		_, err := Parse(s)
		if err == nil || !strings.Contains(err.Error(), "unknown protocol") {
			t.Errorf("Parse(%q) error = %v", s, err)
		}
	}
}

func TestUnmarshalTextIsExact(t *testing.T) {
	var p Protocol
	if err := p.UnmarshalText([]byte("AvalonMm")); err != nil || p != AvalonMM {
		t.Errorf("UnmarshalText(AvalonMm) = %q, %v", p, err)
	}
	if err := p.UnmarshalText([]byte("avalonmm")); err == nil {
		t.Error("UnmarshalText(avalonmm) succeeded")
	}
}

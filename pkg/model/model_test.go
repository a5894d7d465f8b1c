package model

import (
	"reflect"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/protocol"
)

const sampleJSON = `{
  "name": "demo",
  "interfaces": [
    {
      "name": "spi",
      "protocol": "APB3",
      "dataWidth": 32,
      "description": "SPI master",
      "registers": [
        {
          "name": "ctrl",
          "address": "0x0",
          "fields": [
            {"name": "en", "position": "0", "access": "ReadWrite", "signalType": "StdLogic", "resetValue": "0b1"},
            {"name": "div", "position": "15:8", "access": "ReadWrite", "signalType": "Unsigned", "resetValue": "0x10", "location": "Interface"}
          ]
        },
        {
          "name": "status",
          "address": "auto",
          "width": 8,
          "access": "ReadOnly",
          "signalType": "StdLogicVector",
          "resetValue": "0",
          "coreSignalProperties": {"useReadEnable": false}
        },
        {
          "name": "fifo",
          "address": "0x40:stride:4:0x4",
          "width": 32,
          "access": "WriteOnly",
          "signalType": "StdLogicVector",
          "resetValue": "0"
        }
      ]
    }
  ]
}`

const sampleYAML = `name: demo
interfaces:
  - name: spi
    protocol: APB3
    dataWidth: 32
    registers:
      - name: ctrl
        address: 0x0
        fields:
          - name: en
            position: 0
            access: ReadWrite
            signalType: StdLogic
            resetValue: 0b1
      - name: fifo
        address: 0x40:stride:4
        width: 32
        access: WriteOnly
        signalType: StdLogicVector
        resetValue: 0
`

func TestDecodeJSON(t *testing.T) {
	p, err := Decode([]byte(sampleJSON), JSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Name != "demo" || len(p.Interfaces) != 1 {
		t.Fatalf("unexpected project %+v", p)
	}
	iface := p.Interfaces[0]
	if iface.Protocol != protocol.APB3 {
		t.Errorf("protocol = %q, want APB3", iface.Protocol)
	}
	if iface.DataWidth == nil || *iface.DataWidth != 32 {
		t.Errorf("dataWidth = %v, want 32", iface.DataWidth)
	}
	if iface.AddressWidth != nil {
		t.Errorf("addressWidth = %d, want unset", *iface.AddressWidth)
	}

	ctrl := iface.Registers[0]
	if got := ctrl.Address.Get(); got != (literal.Fixed{Base: literal.Hex(0)}) {
		t.Errorf("ctrl address = %#v", got)
	}
	div := ctrl.Fields[1]
	if got := div.Position.Get(); got != (literal.Range{Msb: literal.Dec(15), Lsb: literal.Dec(8)}) {
		t.Errorf("div position = %#v", got)
	}
	if div.ResetValue != literal.Hex(0x10) {
		t.Errorf("div reset = %v", div.ResetValue)
	}
	if EffectiveLocation(div.Location) != LocationInterface {
		t.Errorf("div location = %v", div.Location)
	}

	status := iface.Registers[1]
	if _, ok := status.Address.Get().(literal.Auto); !ok {
		t.Errorf("status address = %#v, want auto", status.Address.Get())
	}
	if status.CoreSignals.ReadEnable() {
		t.Error("status read enable should be disabled")
	}
	if !status.CoreSignals.WriteEnable() {
		t.Error("status write enable should default to enabled")
	}

	fifo, ok := iface.Registers[2].Address.Get().(literal.Strided)
	if !ok {
		t.Fatalf("fifo address = %#v, want strided", iface.Registers[2].Address.Get())
	}
	if fifo.Count.N != 4 || fifo.Increment == nil || fifo.Increment.N != 4 {
		t.Errorf("fifo stride = %v", fifo)
	}
}

func TestDecodeYAML(t *testing.T) {
	p, err := Decode([]byte(sampleYAML), YAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	iface := p.Interfaces[0]
	if iface.Protocol != protocol.APB3 {
		t.Errorf("protocol = %q, want APB3", iface.Protocol)
	}
	if got := iface.Registers[0].Fields[0].ResetValue; got != literal.Bin(1) {
		t.Errorf("en reset = %v, want 0b1", got)
	}
	fifo := iface.Registers[1].Address.Get().(literal.Strided)
	if fifo.Base != literal.Hex(0x40) || fifo.Increment != nil {
		t.Errorf("fifo address = %v", fifo)
	}
}

func TestDecodeRejectsBadLiterals(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"address", `{"name":"p","interfaces":[{"name":"i","protocol":"SBI","registers":[{"name":"r","address":"0x40:bug:4"}]}]}`},
		{"position", `{"name":"p","interfaces":[{"name":"i","protocol":"SBI","registers":[{"name":"r","address":"0","fields":[{"name":"f","position":"a:b","access":"ReadOnly","signalType":"StdLogic","resetValue":"0"}]}]}]}`},
		{"protocol", `{"name":"p","interfaces":[{"name":"i","protocol":"Wishbone","registers":[]}]}`},
		{"protocol case", `{"name":"p","interfaces":[{"name":"i","protocol":"apb3","registers":[]}]}`},
		{"access", `{"name":"p","interfaces":[{"name":"i","protocol":"SBI","registers":[{"name":"r","address":"0","access":"Sometimes"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc), JSON); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p, err := Decode([]byte(sampleJSON), JSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, format := range []Format{JSON, YAML} {
		data, err := Encode(p, format)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		back, err := Decode(data, format)
		if err != nil {
			t.Fatalf("Decode(Encode): %v\n%s", err, data)
		}
		if !reflect.DeepEqual(p, back) {
			t.Errorf("format %d: round trip changed the project\n%s", format, data)
		}
	}
}

func TestEncodeOmitsUnset(t *testing.T) {
	p, _ := Decode([]byte(sampleJSON), JSON)
	data, err := Encode(p, JSON)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "addressWidth") {
		t.Errorf("unset addressWidth was written:\n%s", data)
	}
	if !strings.Contains(string(data), `"address": "0x40:stride:4:0x4"`) {
		t.Errorf("strided address not preserved:\n%s", data)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.json": JSON,
		"a.yaml": YAML,
		"a.YML":  YAML,
		"a":      JSON,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %d, want %d", path, got, want)
		}
	}
}

package model

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/protocol"
)

// Project is the root of a register description.
type Project struct {
	Name       string       `json:"name" yaml:"name"`
	Interfaces []*Interface `json:"interfaces" yaml:"interfaces"`
}

// Interface is one memory-mapped bus endpoint.
type Interface struct {
	Name         string            `json:"name" yaml:"name"`
	Protocol     protocol.Protocol `json:"protocol" yaml:"protocol"`
	AddressWidth *int              `json:"addressWidth,omitempty" yaml:"addressWidth,omitempty"`
	DataWidth    *int              `json:"dataWidth,omitempty" yaml:"dataWidth,omitempty"`
	Description  string            `json:"description,omitempty" yaml:"description,omitempty"`
	Registers    []*Register       `json:"registers" yaml:"registers"`
}

// Register is one addressable register. Width, Access, SignalType,
// ResetValue and Location describe a register without fields and must be
// absent when Fields is not empty.
type Register struct {
	Name        string                `json:"name" yaml:"name"`
	Address     literal.AddressSpec   `json:"address" yaml:"address"`
	Width       *int                  `json:"width,omitempty" yaml:"width,omitempty"`
	Access      *Access               `json:"access,omitempty" yaml:"access,omitempty"`
	SignalType  *SignalType           `json:"signalType,omitempty" yaml:"signalType,omitempty"`
	ResetValue  *literal.Value        `json:"resetValue,omitempty" yaml:"resetValue,omitempty"`
	Location    *Location             `json:"location,omitempty" yaml:"location,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	CoreSignals *CoreSignalProperties `json:"coreSignalProperties,omitempty" yaml:"coreSignalProperties,omitempty"`
	Fields      []*Field              `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field is a bit range of a register.
type Field struct {
	Name        string                `json:"name" yaml:"name"`
	Position    literal.PositionSpec  `json:"position" yaml:"position"`
	Access      Access                `json:"access" yaml:"access"`
	SignalType  SignalType            `json:"signalType" yaml:"signalType"`
	ResetValue  literal.Value         `json:"resetValue" yaml:"resetValue"`
	Location    *Location             `json:"location,omitempty" yaml:"location,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	CoreSignals *CoreSignalProperties `json:"coreSignalProperties,omitempty" yaml:"coreSignalProperties,omitempty"`
}

// CoreSignalProperties selects the optional strobes towards the core. A nil
// entry means enabled.
type CoreSignalProperties struct {
	UseReadEnable  *bool `json:"useReadEnable,omitempty" yaml:"useReadEnable,omitempty"`
	UseWriteEnable *bool `json:"useWriteEnable,omitempty" yaml:"useWriteEnable,omitempty"`
}

// ReadEnable reports whether a read strobe is wanted.
func (c *CoreSignalProperties) ReadEnable() bool {
	return c == nil || c.UseReadEnable == nil || *c.UseReadEnable
}

// WriteEnable reports whether a write strobe is wanted.
func (c *CoreSignalProperties) WriteEnable() bool {
	return c == nil || c.UseWriteEnable == nil || *c.UseWriteEnable
}

// Access is the bus-side access mode.
type Access string

const (
	ReadOnly  Access = "ReadOnly"
	WriteOnly Access = "WriteOnly"
	ReadWrite Access = "ReadWrite"
)

func (a Access) Readable() bool { return a == ReadOnly || a == ReadWrite }
func (a Access) Writable() bool { return a == WriteOnly || a == ReadWrite }

func (a *Access) UnmarshalText(text []byte) error {
	switch v := Access(text); v {
	case ReadOnly, WriteOnly, ReadWrite:
		*a = v
		return nil
	default:
		return fmt.Errorf("model: unknown access %q", text)
	}
}

// SignalType is the VHDL type of the data signal.
type SignalType string

const (
	StdLogic       SignalType = "StdLogic"
	StdLogicVector SignalType = "StdLogicVector"
	Unsigned       SignalType = "Unsigned"
	Signed         SignalType = "Signed"
)

// VHDL renders the type for a signal of the given width.
func (s SignalType) VHDL(width int) string {
	switch s {
	case StdLogic:
		return "std_logic"
	case Unsigned:
		return fmt.Sprintf("unsigned(%d downto 0)", width-1)
	case Signed:
		return fmt.Sprintf("signed(%d downto 0)", width-1)
	default:
		return fmt.Sprintf("std_logic_vector(%d downto 0)", width-1)
	}
}

func (s *SignalType) UnmarshalText(text []byte) error {
	switch v := SignalType(text); v {
	case StdLogic, StdLogicVector, Unsigned, Signed:
		*s = v
		return nil
	default:
		return fmt.Errorf("model: unknown signal type %q", text)
	}
}

// Location is where a register's storage lives.
type Location string

const (
	// LocationCore keeps the storage in the user's core; the interface
	// forwards reads and writes and raises strobes.
	LocationCore Location = "Core"
	// LocationInterface keeps the storage in the generated interface.
	LocationInterface Location = "Interface"
)

func (l *Location) UnmarshalText(text []byte) error {
	switch v := Location(text); v {
	case LocationCore, LocationInterface:
		*l = v
		return nil
	default:
		return fmt.Errorf("model: unknown location %q", text)
	}
}

// EffectiveLocation resolves an optional location to Core when absent.
func EffectiveLocation(l *Location) Location {
	if l == nil {
		return LocationCore
	}
	return *l
}

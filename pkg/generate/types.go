package generate

import (
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/model"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/protocol"
)

// Model is the input of the code templates.
type Model struct {
	Project     string       `json:"project" yaml:"project"`
	Package     string       `json:"package" yaml:"package"`
	Description string       `json:"description" yaml:"description"`
	Interfaces  []*Interface `json:"interfaces" yaml:"interfaces"`
}

// Interface is one resolved bus endpoint.
type Interface struct {
	Name        string            `json:"name" yaml:"name"`
	Entity      string            `json:"entity" yaml:"entity"`
	Description string            `json:"description" yaml:"description"`
	Protocol    protocol.Protocol `json:"protocol" yaml:"protocol"`

	AddressWidth         int    `json:"addressWidth" yaml:"addressWidth"`
	DataWidth            int    `json:"dataWidth" yaml:"dataWidth"`
	WordBytes            int    `json:"wordBytes" yaml:"wordBytes"`
	AddressWidthConstant string `json:"addressWidthConstant" yaml:"addressWidthConstant"`
	DataWidthConstant    string `json:"dataWidthConstant" yaml:"dataWidthConstant"`

	FromCoreType string `json:"fromCoreType" yaml:"fromCoreType"`
	ToCoreType   string `json:"toCoreType" yaml:"toCoreType"`
	FromCorePort string `json:"fromCorePort" yaml:"fromCorePort"`
	ToCorePort   string `json:"toCorePort" yaml:"toCorePort"`

	Ports []Port `json:"ports" yaml:"ports"`
	// PortNames maps a port function to its generated name.
	PortNames map[string]string `json:"portNames" yaml:"portNames"`

	Registers []*Register `json:"registers" yaml:"registers"`

	// FromCore and ToCore are the record elements of every register, in
	// register order.
	FromCore []StructField `json:"fromCore" yaml:"fromCore"`
	ToCore   []StructField `json:"toCore" yaml:"toCore"`

	HasFromCore    bool `json:"hasFromCore" yaml:"hasFromCore"`
	HasToCore      bool `json:"hasToCore" yaml:"hasToCore"`
	HasArrays      bool `json:"hasArrays" yaml:"hasArrays"`
	HasReadEnable  bool `json:"hasReadEnable" yaml:"hasReadEnable"`
	HasWriteEnable bool `json:"hasWriteEnable" yaml:"hasWriteEnable"`
}

// Port is a bus protocol signal with its generated name and concrete type.
type Port struct {
	Function    string             `json:"function" yaml:"function"`
	Name        string             `json:"name" yaml:"name"`
	Direction   protocol.Direction `json:"direction" yaml:"direction"`
	Type        string             `json:"type" yaml:"type"`
	Description string             `json:"description" yaml:"description"`
}

// Register is one resolved register. A register without fields is its own
// storage item and carries Access, SignalType, Location and Type; a register
// with fields leaves them empty.
type Register struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Address   uint64 `json:"address" yaml:"address"`
	Automatic bool   `json:"automatic" yaml:"automatic"`
	Width     int    `json:"width" yaml:"width"`
	Reset     uint64 `json:"reset" yaml:"reset"`
	// ResetBits is Reset as a binary string of Width digits, msb first.
	ResetBits string `json:"resetBits" yaml:"resetBits"`

	AddressConstant string `json:"addressConstant" yaml:"addressConstant"`
	WidthConstant   string `json:"widthConstant" yaml:"widthConstant"`
	ResetConstant   string `json:"resetConstant" yaml:"resetConstant"`

	Strided        bool   `json:"strided" yaml:"strided"`
	Count          uint64 `json:"count,omitempty" yaml:"count,omitempty"`
	Stride         uint64 `json:"stride,omitempty" yaml:"stride,omitempty"`
	CountConstant  string `json:"countConstant,omitempty" yaml:"countConstant,omitempty"`
	StrideConstant string `json:"strideConstant,omitempty" yaml:"strideConstant,omitempty"`
	// ArrayType names the array of register words a strided register is
	// stored in; ArrayElement is its element type.
	ArrayType    string `json:"arrayType,omitempty" yaml:"arrayType,omitempty"`
	ArrayElement string `json:"arrayElement,omitempty" yaml:"arrayElement,omitempty"`

	Access     model.Access     `json:"access,omitempty" yaml:"access,omitempty"`
	SignalType model.SignalType `json:"signalType,omitempty" yaml:"signalType,omitempty"`
	Location   model.Location   `json:"location,omitempty" yaml:"location,omitempty"`
	Type       string           `json:"type,omitempty" yaml:"type,omitempty"`

	Fields []*Field `json:"fields,omitempty" yaml:"fields,omitempty"`

	FromCore []StructField `json:"fromCore" yaml:"fromCore"`
	ToCore   []StructField `json:"toCore" yaml:"toCore"`
}

// Field is one resolved bit field.
type Field struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Msb       int    `json:"msb" yaml:"msb"`
	Lsb       int    `json:"lsb" yaml:"lsb"`
	Width     int    `json:"width" yaml:"width"`
	SingleBit bool   `json:"singleBit" yaml:"singleBit"`
	Reset     uint64 `json:"reset" yaml:"reset"`

	Access     model.Access     `json:"access" yaml:"access"`
	SignalType model.SignalType `json:"signalType" yaml:"signalType"`
	Location   model.Location   `json:"location" yaml:"location"`
	Type       string           `json:"type" yaml:"type"`

	LsbConstant   string `json:"lsbConstant" yaml:"lsbConstant"`
	WidthConstant string `json:"widthConstant" yaml:"widthConstant"`
}

// Signal is the role of a record element.
type Signal string

const (
	Data        Signal = "data"
	ReadEnable  Signal = "read_enable"
	WriteEnable Signal = "write_enable"
)

// StructField is one element of the from-core or to-core record.
type StructField struct {
	Name   string `json:"name" yaml:"name"`
	Signal Signal `json:"signal" yaml:"signal"`
	// Type is the VHDL type of one instance.
	Type string `json:"type" yaml:"type"`
	// Count is the instance count of a strided register, 0 otherwise.
	Count uint64 `json:"count,omitempty" yaml:"count,omitempty"`
	// Register and Field name the storage item the element belongs to.
	Register string `json:"register" yaml:"register"`
	Field    string `json:"field,omitempty" yaml:"field,omitempty"`
}

package naming

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/protocol"
)

// Version is the revision of the key set. Settings written by an older
// version are completed with the defaults of the keys added since.
const Version = 1

// Key identifies one kind of generated name or description.
type Key string

// Scope is the innermost source-model level a pattern is expanded in. It
// decides which placeholders the pattern may use.
type Scope int

const (
	ScopeProject Scope = iota
	ScopeInterface
	ScopeRegister
	ScopeField
)

func (s Scope) String() string {
	switch s {
	case ScopeProject:
		return "project"
	case ScopeInterface:
		return "interface"
	case ScopeRegister:
		return "register"
	case ScopeField:
		return "field"
	default:
		return "unknown"
	}
}

// Name keys.
const (
	Package = Key("package")

	Entity               = Key("entity")
	AddressWidthConstant = Key("address_width_constant")
	DataWidthConstant    = Key("data_width_constant")
	FromCoreType         = Key("from_core_type")
	ToCoreType           = Key("to_core_type")
	FromCorePort         = Key("from_core_port")
	ToCorePort           = Key("to_core_port")

	RegisterAddressConstant = Key("register_address_constant")
	RegisterWidthConstant   = Key("register_width_constant")
	RegisterResetConstant   = Key("register_reset_constant")
	RegisterCountConstant   = Key("register_count_constant")
	RegisterStrideConstant  = Key("register_stride_constant")
	RegisterArrayType       = Key("register_array_type")
	RegisterReadData        = Key("register_rdata")
	RegisterWriteData       = Key("register_wdata")
	RegisterReadEnable      = Key("register_re")
	RegisterWriteEnable     = Key("register_we")

	FieldLsbConstant   = Key("field_lsb_constant")
	FieldWidthConstant = Key("field_width_constant")
	FieldReadData      = Key("field_rdata")
	FieldWriteData     = Key("field_wdata")
	FieldReadEnable    = Key("field_re")
	FieldWriteEnable   = Key("field_we")
)

// Description keys.
const (
	PackageDescription  = Key("package")
	EntityDescription   = Key("entity")
	RegisterDescription = Key("register")
	FieldDescription    = Key("field")
)

// Definition describes one configurable key.
type Definition struct {
	Key     Key
	Scope   Scope
	Default string
	Help    string
}

var nameDefinitions = []Definition{
	{Package, ScopeProject, "{project}_pkg{}", "VHDL package holding the constants and types"},

	{Entity, ScopeInterface, "{interface}{}", "Entity implementing the interface"},
	{AddressWidthConstant, ScopeInterface, "c_{interface}_addr_width{}", "Address bus width constant"},
	{DataWidthConstant, ScopeInterface, "c_{interface}_data_width{}", "Data bus width constant"},
	{FromCoreType, ScopeInterface, "t_{interface}_from_core{}", "Record type of signals driven by the core"},
	{ToCoreType, ScopeInterface, "t_{interface}_to_core{}", "Record type of signals driven towards the core"},
	{FromCorePort, ScopeInterface, "{interface}_from_core{}", "Entity port carrying the from-core record"},
	{ToCorePort, ScopeInterface, "{interface}_to_core{}", "Entity port carrying the to-core record"},

	{RegisterAddressConstant, ScopeRegister, "c_{interface}_{register}_addr{}", "Register address constant"},
	{RegisterWidthConstant, ScopeRegister, "c_{interface}_{register}_width{}", "Register width constant"},
	{RegisterResetConstant, ScopeRegister, "c_{interface}_{register}_reset{}", "Register reset value constant"},
	{RegisterCountConstant, ScopeRegister, "c_{interface}_{register}_count{}", "Instance count of a strided register"},
	{RegisterStrideConstant, ScopeRegister, "c_{interface}_{register}_stride{}", "Address increment of a strided register"},
	{RegisterArrayType, ScopeRegister, "t_{interface}_{register}_array{}", "Array type of a strided register"},
	{RegisterReadData, ScopeRegister, "{register}_rdata{}", "Record element: data the core returns for reads"},
	{RegisterWriteData, ScopeRegister, "{register}_wdata{}", "Record element: data written by the bus"},
	{RegisterReadEnable, ScopeRegister, "{register}_re{}", "Record element: read strobe"},
	{RegisterWriteEnable, ScopeRegister, "{register}_we{}", "Record element: write strobe"},

	{FieldLsbConstant, ScopeField, "c_{interface}_{register}_{field}_lsb{}", "Field least significant bit constant"},
	{FieldWidthConstant, ScopeField, "c_{interface}_{register}_{field}_width{}", "Field width constant"},
	{FieldReadData, ScopeField, "{register}_{field}_rdata{}", "Record element: field data the core returns for reads"},
	{FieldWriteData, ScopeField, "{register}_{field}_wdata{}", "Record element: field data written by the bus"},
	{FieldReadEnable, ScopeField, "{register}_{field}_re{}", "Record element: field read strobe"},
	{FieldWriteEnable, ScopeField, "{register}_{field}_we{}", "Record element: field write strobe"},
}

var descriptionDefinitions = []Definition{
	{PackageDescription, ScopeProject, "Register definitions of {project}", "Package header comment"},
	{EntityDescription, ScopeInterface, "{interface} register interface. {description}", "Entity header comment"},
	{RegisterDescription, ScopeRegister, "{register}: {description}", "Register comment"},
	{FieldDescription, ScopeField, "{register}.{field}: {description}", "Field comment"},
}

// NameDefinitions returns every name key, protocol port keys included,
// sorted by scope and key.
func NameDefinitions() []Definition {
	defs := append([]Definition(nil), nameDefinitions...)
	for _, p := range protocol.All() {
		defs = append(defs, Definition{
			Key:     Key(p.NameKey),
			Scope:   ScopeInterface,
			Default: p.DefaultPattern(),
			Help:    p.Description,
		})
	}
	sortDefinitions(defs)
	return defs
}

// DescriptionDefinitions returns every description key.
func DescriptionDefinitions() []Definition {
	defs := append([]Definition(nil), descriptionDefinitions...)
	sortDefinitions(defs)
	return defs
}

func sortDefinitions(defs []Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Scope != defs[j].Scope {
			return defs[i].Scope < defs[j].Scope
		}
		return defs[i].Key < defs[j].Key
	})
}

func lookup(defs []Definition, key Key) (Definition, bool) {
	for _, d := range defs {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

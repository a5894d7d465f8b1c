package generate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/OpenTraceLab/OpenTraceRegs/pkg/ident"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/layout"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/literal"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/model"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/naming"
	"github.com/OpenTraceLab/OpenTraceRegs/pkg/protocol"
)

const enableType = "std_logic"

// Build resolves p into a generation model, naming artifacts with settings
// (the defaults when nil). p is not modified. The first error aborts the
// build; it is a *BuildError locating the offending element.
func Build(p *model.Project, settings *naming.Settings) (*Model, error) {
	if settings == nil {
		settings = naming.DefaultSettings()
	}
	scheme, err := settings.Compile()
	if err != nil {
		return nil, buildError("naming", err)
	}

	b := &builder{scheme: scheme, names: ident.NewRegistry()}
	return b.project(model.Clean(p))
}

// builder carries the state of one run. names is shared by every artifact
// of the run.
type builder struct {
	scheme *naming.Scheme
	names  *ident.Registry
}

func (b *builder) allocate(key naming.Key, ctx naming.Context) string {
	return b.scheme.Allocate(b.names, key, ctx)
}

func (b *builder) project(p *model.Project) (*Model, error) {
	ctx := naming.Context{Project: ident.Sanitize(p.Name)}
	m := &Model{
		Project:     ctx.Project,
		Package:     b.allocate(naming.Package, ctx),
		Description: b.scheme.Describe(naming.PackageDescription, ctx),
	}

	scope := ident.NewScope()
	for _, src := range p.Interfaces {
		ictx := ctx
		ictx.Interface = scope.Unique(src.Name)
		iface, err := b.iface(src, ictx)
		if err != nil {
			return nil, err
		}
		m.Interfaces = append(m.Interfaces, iface)
	}
	return m, nil
}

func (b *builder) iface(src *model.Interface, ctx naming.Context) (*Interface, error) {
	page := "interfaces/" + src.Name

	ports, ok := protocol.Lookup(src.Protocol)
	if !ok {
		return nil, buildError(page, fmt.Errorf("%w %q", ErrUnknownProtocol, src.Protocol))
	}
	l, err := layout.Resolve(src)
	if err != nil {
		return nil, buildError(page, err)
	}

	ctx.Description = src.Description
	iface := &Interface{
		Name:         ctx.Interface,
		Entity:       b.allocate(naming.Entity, ctx),
		Description:  b.scheme.Describe(naming.EntityDescription, ctx),
		Protocol:     src.Protocol,
		AddressWidth: l.AddressWidth,
		DataWidth:    l.DataWidth,
		WordBytes:    l.WordBytes,

		AddressWidthConstant: b.allocate(naming.AddressWidthConstant, ctx),
		DataWidthConstant:    b.allocate(naming.DataWidthConstant, ctx),
		FromCoreType:         b.allocate(naming.FromCoreType, ctx),
		ToCoreType:           b.allocate(naming.ToCoreType, ctx),
		FromCorePort:         b.allocate(naming.FromCorePort, ctx),
		ToCorePort:           b.allocate(naming.ToCorePort, ctx),
	}

	iface.Ports = lo.Map(ports, func(p protocol.Port, _ int) Port {
		return Port{
			Function:    p.Function,
			Name:        b.allocate(naming.Key(p.NameKey), ctx),
			Direction:   p.Direction,
			Type:        p.ExpandType(l.AddressWidth, l.DataWidth),
			Description: p.Description,
		}
	})
	iface.PortNames = lo.Associate(iface.Ports, func(p Port) (string, string) {
		return p.Function, p.Name
	})

	scope := ident.NewScope()
	for _, pl := range l.Registers {
		rsrc := src.Registers[pl.Register]
		rctx := ctx
		rctx.Register = scope.Unique(rsrc.Name)
		rctx.Description = rsrc.Description

		r, err := b.register(rsrc, pl, rctx, page+"/registers/"+rsrc.Name)
		if err != nil {
			return nil, err
		}
		iface.Registers = append(iface.Registers, r)
	}

	iface.FromCore = lo.FlatMap(iface.Registers, func(r *Register, _ int) []StructField { return r.FromCore })
	iface.ToCore = lo.FlatMap(iface.Registers, func(r *Register, _ int) []StructField { return r.ToCore })
	iface.HasFromCore = len(iface.FromCore) > 0
	iface.HasToCore = len(iface.ToCore) > 0
	iface.HasArrays = lo.SomeBy(iface.Registers, func(r *Register) bool { return r.Strided })
	iface.HasReadEnable = lo.SomeBy(iface.ToCore, func(f StructField) bool { return f.Signal == ReadEnable })
	iface.HasWriteEnable = lo.SomeBy(iface.ToCore, func(f StructField) bool { return f.Signal == WriteEnable })
	return iface, nil
}

func (b *builder) register(src *model.Register, pl layout.Placement, ctx naming.Context, page string) (*Register, error) {
	r := &Register{
		Name:        ctx.Register,
		Description: b.scheme.Describe(naming.RegisterDescription, ctx),
		Address:     pl.Base,
		Automatic:   pl.Automatic,
		Width:       pl.Width,
		Strided:     pl.Strided,

		AddressConstant: b.allocate(naming.RegisterAddressConstant, ctx),
		WidthConstant:   b.allocate(naming.RegisterWidthConstant, ctx),
		ResetConstant:   b.allocate(naming.RegisterResetConstant, ctx),
	}

	var count uint64
	if pl.Strided {
		count = pl.Count
		r.Count = pl.Count
		r.Stride = pl.Increment
		r.CountConstant = b.allocate(naming.RegisterCountConstant, ctx)
		r.StrideConstant = b.allocate(naming.RegisterStrideConstant, ctx)
		r.ArrayType = b.allocate(naming.RegisterArrayType, ctx)
		r.ArrayElement = model.StdLogicVector.VHDL(pl.Width)
	}

	if len(src.Fields) == 0 {
		r.Access = deref(src.Access, model.ReadWrite)
		r.SignalType = deref(src.SignalType, model.StdLogicVector)
		r.Location = model.EffectiveLocation(src.Location)
		r.Type = r.SignalType.VHDL(r.Width)
		if src.ResetValue != nil {
			r.Reset = src.ResetValue.N & mask(r.Width)
		}
		r.FromCore, r.ToCore = b.structFields(storage{
			register: r.Name,
			access:   r.Access,
			location: r.Location,
			core:     src.CoreSignals,
			typ:      r.Type,
			count:    count,
		}, registerKeys, ctx)
	}

	scope := ident.NewScope()
	for _, fsrc := range src.Fields {
		msb, lsb := literal.Bounds(fsrc.Position.Get())
		if msb < lsb {
			return nil, buildError(page+"/fields/"+fsrc.Name,
				fmt.Errorf("%w: position %s", ErrFieldPosition, fsrc.Position))
		}

		fctx := ctx
		fctx.Field = scope.Unique(fsrc.Name)
		fctx.Description = fsrc.Description
		width := int(msb-lsb) + 1

		f := &Field{
			Name:        fctx.Field,
			Description: b.scheme.Describe(naming.FieldDescription, fctx),
			Msb:         int(msb),
			Lsb:         int(lsb),
			Width:       width,
			SingleBit:   width == 1,
			Reset:       fsrc.ResetValue.N & mask(width),
			Access:      fsrc.Access,
			SignalType:  fsrc.SignalType,
			Location:    model.EffectiveLocation(fsrc.Location),
			Type:        fsrc.SignalType.VHDL(width),

			LsbConstant:   b.allocate(naming.FieldLsbConstant, fctx),
			WidthConstant: b.allocate(naming.FieldWidthConstant, fctx),
		}
		r.Reset |= f.Reset << lsb

		from, to := b.structFields(storage{
			register: r.Name,
			field:    f.Name,
			access:   f.Access,
			location: f.Location,
			core:     fsrc.CoreSignals,
			typ:      f.Type,
			count:    count,
		}, fieldKeys, fctx)
		r.FromCore = append(r.FromCore, from...)
		r.ToCore = append(r.ToCore, to...)
		r.Fields = append(r.Fields, f)
	}

	r.ResetBits = resetBits(r.Reset, r.Width)
	return r, nil
}

// storage is one item holding data: a register without fields, or a field.
type storage struct {
	register string
	field    string
	access   model.Access
	location model.Location
	core     *model.CoreSignalProperties
	typ      string
	count    uint64
}

type itemKeys struct {
	rdata, wdata, re, we naming.Key
}

var (
	registerKeys = itemKeys{
		rdata: naming.RegisterReadData,
		wdata: naming.RegisterWriteData,
		re:    naming.RegisterReadEnable,
		we:    naming.RegisterWriteEnable,
	}
	fieldKeys = itemKeys{
		rdata: naming.FieldReadData,
		wdata: naming.FieldWriteData,
		re:    naming.FieldReadEnable,
		we:    naming.FieldWriteEnable,
	}
)

// structFields derives the record elements of s:
//
//	to-core data         writable
//	from-core data       readable, stored in the core or read-only
//	to-core read enable  readable, stored in the core, read enable wanted
//	to-core write enable writable, stored in the core, write enable wanted
func (b *builder) structFields(s storage, keys itemKeys, ctx naming.Context) (from, to []StructField) {
	inCore := s.location == model.LocationCore
	elem := func(key naming.Key, sig Signal, typ string) StructField {
		return StructField{
			Name:     b.allocate(key, ctx),
			Signal:   sig,
			Type:     typ,
			Count:    s.count,
			Register: s.register,
			Field:    s.field,
		}
	}

	if s.access.Writable() {
		to = append(to, elem(keys.wdata, Data, s.typ))
	}
	if s.access.Readable() && (inCore || s.access == model.ReadOnly) {
		from = append(from, elem(keys.rdata, Data, s.typ))
	}
	if s.access.Readable() && inCore && s.core.ReadEnable() {
		to = append(to, elem(keys.re, ReadEnable, enableType))
	}
	if s.access.Writable() && inCore && s.core.WriteEnable() {
		to = append(to, elem(keys.we, WriteEnable, enableType))
	}
	return from, to
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

func resetBits(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}

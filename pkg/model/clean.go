package model

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	c := &Project{Name: p.Name}
	for _, iface := range p.Interfaces {
		c.Interfaces = append(c.Interfaces, iface.Clone())
	}
	return c
}

// Clone returns a deep copy of i.
func (i *Interface) Clone() *Interface {
	c := *i
	c.AddressWidth = clonePtr(i.AddressWidth)
	c.DataWidth = clonePtr(i.DataWidth)
	c.Registers = nil
	for _, r := range i.Registers {
		c.Registers = append(c.Registers, r.Clone())
	}
	return &c
}

// Clone returns a deep copy of r.
func (r *Register) Clone() *Register {
	c := *r
	c.Width = clonePtr(r.Width)
	c.Access = clonePtr(r.Access)
	c.SignalType = clonePtr(r.SignalType)
	c.ResetValue = clonePtr(r.ResetValue)
	c.Location = clonePtr(r.Location)
	c.CoreSignals = r.CoreSignals.clone()
	c.Fields = nil
	for _, f := range r.Fields {
		c.Fields = append(c.Fields, f.Clone())
	}
	return &c
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	c := *f
	c.Location = clonePtr(f.Location)
	c.CoreSignals = f.CoreSignals.clone()
	return &c
}

func (c *CoreSignalProperties) clone() *CoreSignalProperties {
	if c == nil {
		return nil
	}
	return &CoreSignalProperties{
		UseReadEnable:  clonePtr(c.UseReadEnable),
		UseWriteEnable: clonePtr(c.UseWriteEnable),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Clean returns a copy of p with every attribute that the combination of
// field presence and storage location makes meaningless set to nil:
//
//   - a register with fields loses its width, access, signal type, reset
//     value, location and core signal properties;
//   - core signal properties are dropped wherever the storage lives in the
//     interface.
//
// p is not modified and Clean(Clean(p)) equals Clean(p).
func Clean(p *Project) *Project {
	c := p.Clone()
	for _, iface := range c.Interfaces {
		for _, r := range iface.Registers {
			cleanRegister(r)
		}
	}
	return c
}

func cleanRegister(r *Register) {
	if len(r.Fields) > 0 {
		r.Width = nil
		r.Access = nil
		r.SignalType = nil
		r.ResetValue = nil
		r.Location = nil
		r.CoreSignals = nil
		for _, f := range r.Fields {
			if EffectiveLocation(f.Location) == LocationInterface {
				f.CoreSignals = nil
			}
		}
		return
	}
	if EffectiveLocation(r.Location) == LocationInterface {
		r.CoreSignals = nil
	}
}

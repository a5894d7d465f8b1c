package literal

// Address is where a register lives. It is one of Auto, Fixed or Strided.
type Address interface {
	isAddress()
	String() string
}

// Auto leaves placement to the layout resolver.
type Auto struct{}

// Fixed places a register at an explicit byte address.
type Fixed struct {
	Base Value
}

// Strided repeats a register Count times starting at Base. A nil Increment
// means the register's own byte width.
type Strided struct {
	Base      Value
	Count     Value
	Increment *Value
}

func (Auto) isAddress()    {}
func (Fixed) isAddress()   {}
func (Strided) isAddress() {}

func (Auto) String() string { return "auto" }

func (a Fixed) String() string { return a.Base.String() }

func (a Strided) String() string {
	s := a.Base.String() + ":stride:" + a.Count.String()
	if a.Increment != nil {
		s += ":" + a.Increment.String()
	}
	return s
}

// AddressSpec carries an Address through JSON and YAML as a single string.
// The zero value is Auto.
type AddressSpec struct {
	Address Address
}

// Get returns the wrapped address, Auto when unset.
func (s AddressSpec) Get() Address {
	if s.Address == nil {
		return Auto{}
	}
	return s.Address
}

func (s AddressSpec) String() string {
	return s.Get().String()
}

func (s AddressSpec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *AddressSpec) UnmarshalText(text []byte) error {
	a, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	s.Address = a
	return nil
}

package literal

// addressExpr is the grammar of an address string.
// Example: 0x40:stride:10:0x4
type addressExpr struct {
	Auto  bool       `parser:"  @\"auto\""`
	Fixed *fixedExpr `parser:"| @@"`
}

// fixedExpr is a base address with an optional stride clause.
type fixedExpr struct {
	Base   string      `parser:"@Number"`
	Stride *strideExpr `parser:"( Colon \"stride\" Colon @@ )?"`
}

// strideExpr is the repeat count and optional increment of a strided register.
type strideExpr struct {
	Count     string  `parser:"@Number"`
	Increment *string `parser:"( Colon @Number )?"`
}

// positionExpr is the grammar of a field position.
// Example: 7:4
type positionExpr struct {
	Msb string  `parser:"@Number"`
	Lsb *string `parser:"( Colon @Number )?"`
}

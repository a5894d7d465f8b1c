package literal

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ExprLexer tokenizes address and field-position expressions.
// There is no whitespace rule: "0x40 : stride" is not a valid expression.
var ExprLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Literals keep their full spelling (prefix included) so that Parse sees
	// exactly what the user wrote.
	{Name: "Number", Pattern: `[0-9][0-9A-Za-z_]*`},

	// Keywords ("auto", "stride") are matched literally by the grammar.
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},

	{Name: "Colon", Pattern: `:`},
})

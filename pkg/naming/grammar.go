package naming

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// NameLexer tokenizes name patterns such as "c_{interface}_{register}_addr{}".
var NameLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Marker", Pattern: `\{\}`},
	{Name: "Placeholder", Pattern: `\{[a-z_]+\}`},
	{Name: "Letters", Pattern: `[A-Za-z_]+`},
	{Name: "Digits", Pattern: `[0-9]+`},
})

// DescriptionLexer tokenizes free-text description templates. Braces are
// only allowed around placeholder names.
var DescriptionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Placeholder", Pattern: `\{[a-z_]+\}`},
	{Name: "Text", Pattern: `[^{}]+`},
})

// namePattern: placeholders and letters, exactly one marker, then
// placeholders, letters and digits.
type namePattern struct {
	Head   []*headSegment `parser:"@@*"`
	Marker string         `parser:"@Marker"`
	Tail   []*tailSegment `parser:"@@*"`
}

type headSegment struct {
	Placeholder string `parser:"  @Placeholder"`
	Text        string `parser:"| @Letters"`
}

type tailSegment struct {
	Placeholder string `parser:"  @Placeholder"`
	Text        string `parser:"| @( Letters | Digits )"`
}

type descriptionTemplate struct {
	Segments []*descriptionSegment `parser:"@@*"`
}

type descriptionSegment struct {
	Placeholder string `parser:"  @Placeholder"`
	Text        string `parser:"| @Text"`
}

var (
	nameParser        = participle.MustBuild[namePattern](participle.Lexer(NameLexer))
	descriptionParser = participle.MustBuild[descriptionTemplate](participle.Lexer(DescriptionLexer))
)

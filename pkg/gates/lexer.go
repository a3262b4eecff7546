package gates

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CatalogLexer defines the lexical structure of catalog definition files.
var CatalogLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive)
	{Name: "KwGate", Pattern: `(?i)\bgate\b`},
	{Name: "KwInputs", Pattern: `(?i)\binputs\b`},
	{Name: "KwOutputs", Pattern: `(?i)\boutputs\b`},

	{Name: "Integer", Pattern: `[0-9]+`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

	{Name: "Semicolon", Pattern: `;`},
})

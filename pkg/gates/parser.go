package gates

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser reads catalog definition files
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new catalog definition parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(CatalogLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses catalog definitions from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses catalog definitions from a string
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses catalog definitions from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// LoadFile returns the built-in catalog extended with the gates declared in
// filename. An empty filename yields the built-in catalog.
func LoadFile(filename string) (*Catalog, error) {
	cat := Default()
	if filename == "" {
		return cat, nil
	}

	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	extra, err := file.Catalog()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if err := cat.Merge(extra); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cat, nil
}

package gates

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// File represents a parsed catalog definition file
type File struct {
	Gates []*GateDecl `parser:"@@*"`
}

// GateDecl declares one logic gate type.
// Example: gate XOR inputs 2 outputs 1;
type GateDecl struct {
	Pos lexer.Position

	Name    string `parser:"KwGate @Ident"`
	Inputs  int    `parser:"KwInputs @Integer"`
	Outputs int    `parser:"KwOutputs @Integer Semicolon"`
}

// Type converts the declaration to a catalog type.
func (d *GateDecl) Type() Type {
	return Type{ID: d.Name, Inputs: d.Inputs, Outputs: d.Outputs}
}

// Catalog validates the declarations and returns them as a catalog.
func (f *File) Catalog() (*Catalog, error) {
	c := &Catalog{}
	for _, d := range f.Gates {
		if d.Name == TypeInput || d.Name == TypeOutput {
			return nil, fmt.Errorf("%s: %q is a reserved terminal type", d.Pos, d.Name)
		}
		if d.Inputs == 0 && d.Outputs == 0 {
			return nil, fmt.Errorf("%s: gate %s has no ports", d.Pos, d.Name)
		}
		if err := c.Register(d.Type()); err != nil {
			return nil, fmt.Errorf("%s: %w", d.Pos, err)
		}
	}
	return c, nil
}

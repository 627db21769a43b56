package sig

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseType parses the textual form of a TypeExpr, the inverse of
// TypeExpr.String for every expressible type:
//
//	int
//	Sequence[int]
//	Mapping[str, float]
//	tuple[int, str]
//	{a: int, b: str}
//	Unpack[tuple[int, int, int]]
//
// Used by the CLI case loader and by test fixtures. Any bare identifier
// parses as a primitive type.
func ParseType(input string) (TypeExpr, error) {
	p := &typeParser{input: input}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected trailing input at offset %d in %q", p.pos, input)
	}
	return t, nil
}

// MustParseType is ParseType that panics on error, for statically-known
// type literals.
func MustParseType(input string) TypeExpr {
	t, err := ParseType(input)
	if err != nil {
		panic(fmt.Sprintf("sig: invalid type literal: %v", err))
	}
	return t
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) parse() (TypeExpr, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of type expression %q", p.input)
	}

	if p.input[p.pos] == '{' {
		return p.parseRecord()
	}

	ident := p.readIdent()
	if ident == "" {
		return nil, fmt.Errorf("expected type name at offset %d in %q", p.pos, p.input)
	}

	switch ident {
	case "Sequence":
		elem, err := p.bracketed1()
		if err != nil {
			return nil, err
		}
		return SequenceOf{Elem: elem}, nil

	case "Mapping":
		if err := p.expect('['); err != nil {
			return nil, err
		}
		p.skipSpace()
		key := p.readIdent()
		if key != "str" {
			return nil, fmt.Errorf("mapping keys must be str, got %q in %q", key, p.input)
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
		value, err := p.parse()
		if err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return MappingOf{Value: value}, nil

	case "tuple":
		if err := p.expect('['); err != nil {
			return nil, err
		}
		var elems []TypeExpr
		for {
			elem, err := p.parse()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			p.skipSpace()
			if p.pos < len(p.input) && p.input[p.pos] == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return TupleOf{Elems: elems}, nil

	case "Unpack":
		inner, err := p.bracketed1()
		if err != nil {
			return nil, err
		}
		return Unpack{Inner: inner}, nil

	default:
		return Prim{Name: ident}, nil
	}
}

func (p *typeParser) parseRecord() (TypeExpr, error) {
	p.pos++ // consume '{'
	var fields []Field
	for {
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == '}' {
			p.pos++
			break
		}
		name := p.readIdent()
		if name == "" {
			return nil, fmt.Errorf("expected field name at offset %d in %q", p.pos, p.input)
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		t, err := p.parse()
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: name, Type: t})
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == ',' {
			p.pos++
		}
	}
	return RecordOf{Fields: fields}, nil
}

// bracketed1 parses "[" type "]".
func (p *typeParser) bracketed1() (TypeExpr, error) {
	if err := p.expect('['); err != nil {
		return nil, err
	}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return fmt.Errorf("expected %q at offset %d in %q", string(c), p.pos, p.input)
	}
	p.pos++
	return nil
}

func (p *typeParser) readIdent() string {
	start := p.pos
	for p.pos < len(p.input) {
		r := rune(p.input[p.pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeParser) skipSpace() {
	p.pos = len(p.input) - len(strings.TrimLeft(p.input[p.pos:], " \t"))
}

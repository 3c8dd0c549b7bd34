package abi

import "strconv"

// ParseSchema parses a single ABI type string into a Type tree. It is pure
// and idempotent: parsing the same string twice yields structurally equal
// Types (see Type.Equal).
func ParseSchema(s string) (Type, error) {
	p := &parser{lex: newLexer(s)}
	if err := p.advance(); err != nil {
		return Type{}, &EncodeError{Kind: InvalidTypeString, Detail: err.Error()}
	}
	t, err := p.parseType(0)
	if err != nil {
		return Type{}, err
	}
	if p.tok.kind != tokEOF {
		return Type{}, &EncodeError{Kind: InvalidTypeString, Detail: "trailing input after complete type: " + s}
	}
	return t, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func invalidTypeString(detail string) error {
	return &EncodeError{Kind: InvalidTypeString, Detail: detail}
}

func unknownType(name string) error {
	return &EncodeError{Kind: UnknownType, Detail: "unknown type " + strconv.Quote(name)}
}

func (p *parser) parseType(depth int) (Type, error) {
	if depth > maxNestingDepth {
		return Type{}, invalidTypeString("type nesting exceeds maximum depth")
	}
	base, err := p.parseNonArray(depth)
	if err != nil {
		return Type{}, err
	}
	arrayDepth := depth
	for p.tok.kind == tokLBracket {
		arrayDepth++
		if arrayDepth > maxNestingDepth {
			return Type{}, invalidTypeString("type nesting exceeds maximum depth")
		}
		if err := p.advance(); err != nil {
			return Type{}, invalidTypeString(err.Error())
		}
		switch p.tok.kind {
		case tokRBracket:
			if err := p.advance(); err != nil {
				return Type{}, invalidTypeString(err.Error())
			}
			base = NewDynamicArrayType(base)
		case tokNum:
			n, convErr := strconv.Atoi(p.tok.text)
			if convErr != nil {
				return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: "array length out of range: " + p.tok.text}
			}
			if err := p.advance(); err != nil {
				return Type{}, invalidTypeString(err.Error())
			}
			if p.tok.kind != tokRBracket {
				return Type{}, invalidTypeString("expected ']' after array length")
			}
			if err := p.advance(); err != nil {
				return Type{}, invalidTypeString(err.Error())
			}
			base, err = NewArrayType(base, n)
			if err != nil {
				return Type{}, err
			}
		default:
			return Type{}, invalidTypeString("expected array length or ']'")
		}
	}
	return base, nil
}

func (p *parser) parseNonArray(depth int) (Type, error) {
	switch p.tok.kind {
	case tokLParen:
		return p.parseTuple(depth)
	case tokWord:
		return p.parseElementary()
	default:
		return Type{}, invalidTypeString("expected a type")
	}
}

func (p *parser) parseTuple(depth int) (Type, error) {
	if err := p.advance(); err != nil { // consume '('
		return Type{}, invalidTypeString(err.Error())
	}
	var components []Type
	if p.tok.kind != tokRParen {
		for {
			c, err := p.parseType(depth + 1)
			if err != nil {
				return Type{}, err
			}
			components = append(components, c)
			if p.tok.kind == tokComma {
				if err := p.advance(); err != nil {
					return Type{}, invalidTypeString(err.Error())
				}
				continue
			}
			break
		}
	}
	if p.tok.kind != tokRParen {
		return Type{}, invalidTypeString("unbalanced '(' in tuple type")
	}
	if err := p.advance(); err != nil { // consume ')'
		return Type{}, invalidTypeString(err.Error())
	}
	return NewTupleType(components), nil
}

func (p *parser) parseElementary() (Type, error) {
	word := p.tok.text
	if err := p.advance(); err != nil {
		return Type{}, invalidTypeString(err.Error())
	}
	switch word {
	case "address":
		return NewAddressType(), nil
	case "bool":
		return NewBoolType(), nil
	case "string":
		return NewStringType(), nil
	case "bytes":
		if p.tok.kind == tokNum {
			m, convErr := strconv.Atoi(p.tok.text)
			if convErr != nil {
				return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: "bytes width out of range: " + p.tok.text}
			}
			if err := p.advance(); err != nil {
				return Type{}, invalidTypeString(err.Error())
			}
			return NewBytesType(m)
		}
		return NewDynamicBytesType(), nil
	case "uint", "int":
		if p.tok.kind != tokNum {
			return Type{}, invalidTypeString("bare \"" + word + "\" is not allowed, an explicit bit width is required")
		}
		bits, convErr := strconv.Atoi(p.tok.text)
		if convErr != nil {
			return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: "integer bit width out of range: " + p.tok.text}
		}
		if err := p.advance(); err != nil {
			return Type{}, invalidTypeString(err.Error())
		}
		return NewIntegerType(word == "int", bits)
	case "fixed", "ufixed":
		if p.tok.kind != tokNum {
			return Type{}, invalidTypeString("bare \"" + word + "\" is not allowed, explicit bits and precision are required")
		}
		bits, convErr := strconv.Atoi(p.tok.text)
		if convErr != nil {
			return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: "fixed bit width out of range: " + p.tok.text}
		}
		if err := p.advance(); err != nil {
			return Type{}, invalidTypeString(err.Error())
		}
		if p.tok.kind != tokWord || p.tok.text != "x" {
			return Type{}, invalidTypeString("expected 'x' separator in fixed type")
		}
		if err := p.advance(); err != nil {
			return Type{}, invalidTypeString(err.Error())
		}
		if p.tok.kind != tokNum {
			return Type{}, invalidTypeString("expected precision digits in fixed type")
		}
		precision, convErr := strconv.Atoi(p.tok.text)
		if convErr != nil {
			return Type{}, &EncodeError{Kind: ParameterOutOfRange, Detail: "fixed precision out of range: " + p.tok.text}
		}
		if err := p.advance(); err != nil {
			return Type{}, invalidTypeString(err.Error())
		}
		return NewFixedType(word == "fixed", bits, precision)
	default:
		return Type{}, unknownType(word)
	}
}

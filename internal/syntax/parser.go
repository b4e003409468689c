package syntax

import (
	"errors"
	"fmt"

	"github.com/formalverse/sequin/internal/logic"
)

// maxNestingDepth bounds recursion on pathologically nested inputs.
const maxNestingDepth = 1024

// Parser consumes tokens produced by the lexer and builds a Formula.
type Parser struct {
	tokens  []Token
	current int
	depth   int
}

// NewParser creates a new Parser over the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseFormula tokenizes and parses input in one step.
func ParseFormula(input string) (logic.Formula, error) {
	return NewParser(NewLexer(input).Tokenize()).Parse()
}

// Parse builds a Formula from the whole token list. A failure aborts the
// parse with an error; no partial formula is returned.
func (p *Parser) Parse() (logic.Formula, error) {
	if len(p.tokens) == 0 {
		return nil, errors.New("empty input")
	}
	f, err := p.parseFormula(true)
	if err != nil {
		return nil, err
	}
	if p.current != len(p.tokens) {
		return nil, fmt.Errorf("unexpected %s after end of formula at token %d", p.tokens[p.current].Type, p.current)
	}
	return f, nil
}

// parseFormula parses one formula. A bare symbol consumes trailing terms
// only at top level; in a sub-formula position the surrounding
// parenthesization decides where the atom ends.
func (p *Parser) parseFormula(topLevel bool) (logic.Formula, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case TokenSymbol:
		p.current++
		if !topLevel {
			return logic.Pred{Name: tok.Value}, nil
		}
		var args []logic.Term
		for p.current < len(p.tokens) {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return logic.Pred{Name: tok.Value, Args: args}, nil

	case TokenLParen:
		return p.parseCompound()

	default:
		return nil, fmt.Errorf("expected a formula, found %s at token %d", tok.Type, p.current)
	}
}

// parseCompound parses a parenthesized formula: a quantifier, an
// equality, a connective, or a predicate application.
func (p *Parser) parseCompound() (logic.Formula, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.current++ // consume '('

	head, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch head.Type {
	case TokenForall, TokenExists:
		p.current++
		name, err := p.expect(TokenSymbol)
		if err != nil {
			return nil, fmt.Errorf("quantifier needs a variable: %w", err)
		}
		body, err := p.parseFormula(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		v := logic.Var{Name: name.Value}
		if head.Type == TokenForall {
			return logic.Forall{V: v, Body: body}, nil
		}
		return logic.Exists{V: v, Body: body}, nil

	case TokenEqual:
		p.current++
		left, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return logic.Eq{Left: left, Right: right}, nil

	case TokenNot:
		p.current++
		body, err := p.parseFormula(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return logic.Not{Body: body}, nil

	case TokenAnd, TokenOr, TokenImplies:
		p.current++
		left, err := p.parseFormula(false)
		if err != nil {
			return nil, err
		}
		right, err := p.parseFormula(false)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		switch head.Type {
		case TokenAnd:
			return logic.And{Left: left, Right: right}, nil
		case TokenOr:
			return logic.Or{Left: left, Right: right}, nil
		default:
			return logic.Implies{Left: left, Right: right}, nil
		}

	case TokenSymbol:
		p.current++
		var args []logic.Term
		for {
			tok, err := p.peek()
			if err != nil {
				return nil, err
			}
			if tok.Type == TokenRParen {
				p.current++
				return logic.Pred{Name: head.Value, Args: args}, nil
			}
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}

	default:
		return nil, fmt.Errorf("unexpected %s after '(' at token %d", head.Type, p.current)
	}
}

// parseTerm parses one term: a bare symbol is a variable, a
// parenthesized symbol with arguments is a function application.
func (p *Parser) parseTerm() (logic.Term, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case TokenSymbol:
		p.current++
		return logic.Var{Name: tok.Value}, nil

	case TokenLParen:
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		p.current++
		name, err := p.expect(TokenSymbol)
		if err != nil {
			return nil, fmt.Errorf("function application needs a name: %w", err)
		}
		var args []logic.Term
		for {
			tok, err := p.peek()
			if err != nil {
				return nil, err
			}
			if tok.Type == TokenRParen {
				p.current++
				return logic.Fn{Name: name.Value, Args: args}, nil
			}
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}

	default:
		return nil, fmt.Errorf("expected a term, found %s at token %d", tok.Type, p.current)
	}
}

func (p *Parser) peek() (Token, error) {
	if p.current >= len(p.tokens) {
		return Token{}, errors.New("unexpected end of input")
	}
	return p.tokens[p.current], nil
}

func (p *Parser) expect(tokenType TokenType) (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	if tok.Type != tokenType {
		return Token{}, fmt.Errorf("expected %s, found %s at token %d", tokenType, tok.Type, p.current)
	}
	p.current++
	return tok, nil
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return fmt.Errorf("nesting exceeds %d levels", maxNestingDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

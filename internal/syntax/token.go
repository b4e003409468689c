package syntax

// TokenType defines the token kinds produced by the lexer.
type TokenType int

const (
	TokenLParen  TokenType = iota // '('
	TokenRParen                   // ')'
	TokenNot                      // '~'
	TokenAnd                      // '^'
	TokenOr                       // 'v'
	TokenImplies                  // '>'
	TokenEqual                    // '='
	TokenForall                   // 'V'
	TokenExists                   // 'E'
	TokenSymbol                   // predicate, function, or variable name
)

func (t TokenType) String() string {
	switch t {
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenNot:
		return "'~'"
	case TokenAnd:
		return "'^'"
	case TokenOr:
		return "'v'"
	case TokenImplies:
		return "'>'"
	case TokenEqual:
		return "'='"
	case TokenForall:
		return "'V'"
	case TokenExists:
		return "'E'"
	case TokenSymbol:
		return "symbol"
	default:
		return "?"
	}
}

// Token represents a single lexical token. Value is set for TokenSymbol
// and empty otherwise.
type Token struct {
	Type  TokenType
	Value string
}

// Sym is a convenience constructor for symbol tokens.
func Sym(name string) Token {
	return Token{Type: TokenSymbol, Value: name}
}

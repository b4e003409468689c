package syntax

// Lexer scans prefix-notation formula text and produces tokens.
//
// The scan is a plain loop over the input rather than per-character
// recursion, so long inputs cannot exhaust the stack.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a new Lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input and returns the token list.
// Spaces separate tokens and produce none themselves.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch c {
		case '(':
			l.addToken(TokenLParen)
			l.position++
		case ')':
			l.addToken(TokenRParen)
			l.position++
		case '~':
			l.addToken(TokenNot)
			l.position++
		case '^':
			l.addToken(TokenAnd)
			l.position++
		case 'v':
			l.addToken(TokenOr)
			l.position++
		case '>':
			l.addToken(TokenImplies)
			l.position++
		case '=':
			l.addToken(TokenEqual)
			l.position++
		case 'V':
			l.addToken(TokenForall)
			l.position++
		case 'E':
			l.addToken(TokenExists)
			l.position++
		case ' ':
			l.position++
		default:
			l.lexSymbol()
		}
	}
	return l.tokens
}

// lexSymbol scans a maximal run of symbol characters. The first
// character has already been checked against the special tokens; the run
// continues through every character except '(', ')', '=', 'V', 'E', and
// space.
func (l *Lexer) lexSymbol() {
	start := l.position
	l.position++
	for l.position < len(l.input) && !isSymbolTerminator(l.input[l.position]) {
		l.position++
	}
	l.tokens = append(l.tokens, Token{Type: TokenSymbol, Value: l.input[start:l.position]})
}

func (l *Lexer) addToken(tokenType TokenType) {
	l.tokens = append(l.tokens, Token{Type: tokenType})
}

func isSymbolTerminator(c byte) bool {
	switch c {
	case '(', ')', '=', 'V', 'E', ' ':
		return true
	default:
		return false
	}
}

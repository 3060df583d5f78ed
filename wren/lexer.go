package wren

import "iter"

// punctuator is the maximal-munch decision list for one starting character:
// kind is the result when nothing further matches, and each link in then
// extends the token by one character and rebinds the kind. Matching stops at
// the first link whose character is not next in the source.
type punctuator struct {
	kind TokenKind
	then []munch
}

type munch struct {
	c    byte
	kind TokenKind
}

var punctuators = map[byte]punctuator{
	'(':  {kind: TokenLeftParen},
	')':  {kind: TokenRightParen},
	'[':  {kind: TokenLeftBracket},
	']':  {kind: TokenRightBracket},
	'{':  {kind: TokenLeftBrace},
	'}':  {kind: TokenRightBrace},
	':':  {kind: TokenColon},
	',':  {kind: TokenComma},
	'*':  {kind: TokenStar},
	'/':  {kind: TokenSlash},
	'%':  {kind: TokenPercent},
	'+':  {kind: TokenPlus},
	'-':  {kind: TokenMinus},
	'~':  {kind: TokenTilde},
	'^':  {kind: TokenCaret},
	'?':  {kind: TokenQuestion},
	'\n': {kind: TokenLine},
	'|':  {kind: TokenPipe, then: []munch{{'|', TokenPipePipe}}},
	'&':  {kind: TokenAmp, then: []munch{{'&', TokenAmpAmp}}},
	'!':  {kind: TokenBang, then: []munch{{'=', TokenBangEqual}}},
	'=':  {kind: TokenEqual, then: []munch{{'=', TokenEqualEqual}}},
	'.':  {kind: TokenDot, then: []munch{{'.', TokenDotDot}, {'.', TokenDotDotDot}}},
}

var keywords = map[string]TokenKind{
	"break":     TokenBreak,
	"class":     TokenClass,
	"construct": TokenConstruct,
	"else":      TokenElse,
	"false":     TokenFalse,
	"for":       TokenFor,
	"foreign":   TokenForeign,
	"if":        TokenIf,
	"import":    TokenImport,
	"in":        TokenIn,
	"is":        TokenIs,
	"null":      TokenNull,
	"return":    TokenReturn,
	"static":    TokenStatic,
	"super":     TokenSuper,
	"this":      TokenThis,
	"true":      TokenTrue,
	"var":       TokenVar,
	"while":     TokenWhile,
}

// Lexer is a single-pass scanner over one source file. Its only state is the
// cursor; construct one per file and call ReadToken until TokenEOF.
type Lexer struct {
	file    *SourceFile
	start   int
	current int
}

func NewLexer(file *SourceFile) *Lexer {
	return &Lexer{
		file: file,
	}
}

// ReadToken returns the next token. Tokens come back in source order and
// cover the source without gaps or overlaps, except for whitespace and line
// comments, which are skipped silently. Once TokenEOF has been returned,
// every further call returns another TokenEOF at the same position.
func (l *Lexer) ReadToken() Token {
	if l.isAtEnd() {
		l.start = l.current
		return l.makeToken(TokenEOF)
	}

	l.skipWhitespace()

	l.start = l.current
	if l.isAtEnd() {
		return l.makeToken(TokenEOF)
	}

	c := l.file.Content[l.current]
	l.advance()

	if p, ok := punctuators[c]; ok {
		kind := p.kind
		for _, m := range p.then {
			if !l.match(m.c) {
				break
			}
			kind = m.kind
		}
		return l.makeToken(kind)
	}

	// "<" and ">" stay out of the table: "<<" and "<=" are alternative
	// extensions, not a progressive munch, and likewise for ">".
	if c == '<' {
		if l.match('<') {
			return l.makeToken(TokenLessLess)
		}
		if l.match('=') {
			return l.makeToken(TokenLessEqual)
		}
		return l.makeToken(TokenLess)
	}
	if c == '>' {
		if l.match('>') {
			return l.makeToken(TokenGreaterGreater)
		}
		if l.match('=') {
			return l.makeToken(TokenGreaterEqual)
		}
		return l.makeToken(TokenGreater)
	}

	// The underscore check must come before isAlpha, which accepts it.
	if c == '_' {
		return l.readField()
	}
	if c == '"' {
		return l.readString()
	}
	if isDigit(c) {
		return l.readNumber()
	}
	if isAlpha(c) {
		return l.readName()
	}

	return l.makeToken(TokenError)
}

// Tokens returns an iterator over the remaining tokens, ending after the
// first TokenEOF has been yielded.
func (l *Lexer) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token := l.ReadToken()
			if !yield(token) {
				return
			}
			if token.Kind == TokenEOF {
				return
			}
		}
	}
}

// skipWhitespace consumes spaces, tabs, carriage returns and // line
// comments. Line feeds are left alone: they are tokens.
func (l *Lexer) skipWhitespace() {
	for {
		c, ok := l.peek(0)
		if !ok {
			return
		}
		switch c {
		case ' ', '\t', '\r':
			l.advance()
		case '/':
			if next, _ := l.peek(1); next != '/' {
				return
			}
			for {
				c, ok := l.peek(0)
				if !ok || c == '\n' {
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readField() Token {
	kind := TokenField
	if l.match('_') {
		kind = TokenStaticField
	}

	for l.matchFunc(isAlphaNumeric) {
	}

	return l.makeToken(kind)
}

// readString consumes up to and including the closing quote. There are no
// escapes: a backslash is string content like any other character. An
// unterminated string runs to the end of the input without complaint.
func (l *Lexer) readString() Token {
	for !l.isAtEnd() && !l.match('"') {
		l.advance()
	}
	return l.makeToken(TokenString)
}

func (l *Lexer) readNumber() Token {
	for l.matchFunc(isDigit) {
	}
	return l.makeToken(TokenNumber)
}

func (l *Lexer) readName() Token {
	for l.matchFunc(isAlphaNumeric) {
	}

	kind := TokenName
	if k, ok := keywords[l.file.Content[l.start:l.current]]; ok {
		kind = k
	}
	return l.makeToken(kind)
}

// advance moves the cursor past the current character.
func (l *Lexer) advance() {
	l.current++
}

// peek returns the character ahead positions past the cursor without
// consuming it; ok is false at or beyond the end of the input.
func (l *Lexer) peek(ahead int) (byte, bool) {
	if l.current+ahead >= len(l.file.Content) {
		return 0, false
	}
	return l.file.Content[l.current+ahead], true
}

// match consumes the current character if it equals c and reports whether it
// did.
func (l *Lexer) match(c byte) bool {
	cur, ok := l.peek(0)
	if !ok || cur != c {
		return false
	}
	l.advance()
	return true
}

// matchFunc consumes the current character if pred accepts it and reports
// whether it did.
func (l *Lexer) matchFunc(pred func(byte) bool) bool {
	cur, ok := l.peek(0)
	if !ok || !pred(cur) {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.file.Content)
}

func (l *Lexer) makeToken(kind TokenKind) Token {
	return Token{
		Source: l.file,
		Kind:   kind,
		Start:  l.start,
		Length: l.current - l.start,
	}
}

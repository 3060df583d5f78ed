package wren

import "fmt"

// TokenKind identifies the lexical category of a token. The set is closed; a
// parser consuming the stream switches exhaustively over it.
type TokenKind uint8

const (
	// TokenEOF is first so the zero Token reads as end of input.
	TokenEOF TokenKind = iota
	TokenError

	TokenLeftParen
	TokenRightParen
	TokenLeftBracket
	TokenRightBracket
	TokenLeftBrace
	TokenRightBrace
	TokenColon
	TokenComma
	TokenStar
	TokenSlash
	TokenPercent
	TokenPlus
	TokenMinus
	TokenTilde
	TokenCaret
	TokenQuestion
	TokenPipe
	TokenPipePipe
	TokenAmp
	TokenAmpAmp
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenDot
	TokenDotDot
	TokenDotDotDot
	TokenLess
	TokenLessLess
	TokenLessEqual
	TokenGreater
	TokenGreaterGreater
	TokenGreaterEqual

	// TokenLine is a line feed. It is never whitespace: it separates
	// statements.
	TokenLine

	TokenField
	TokenStaticField
	TokenName
	TokenString
	TokenNumber

	TokenBreak
	TokenClass
	TokenConstruct
	TokenElse
	TokenFalse
	TokenFor
	TokenForeign
	TokenIf
	TokenImport
	TokenIn
	TokenIs
	TokenNull
	TokenReturn
	TokenStatic
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile
)

var kindNames = [...]string{
	TokenEOF:   "EOF",
	TokenError: "Error",

	TokenLeftParen:      "LeftParen",
	TokenRightParen:     "RightParen",
	TokenLeftBracket:    "LeftBracket",
	TokenRightBracket:   "RightBracket",
	TokenLeftBrace:      "LeftBrace",
	TokenRightBrace:     "RightBrace",
	TokenColon:          "Colon",
	TokenComma:          "Comma",
	TokenStar:           "Star",
	TokenSlash:          "Slash",
	TokenPercent:        "Percent",
	TokenPlus:           "Plus",
	TokenMinus:          "Minus",
	TokenTilde:          "Tilde",
	TokenCaret:          "Caret",
	TokenQuestion:       "Question",
	TokenPipe:           "Pipe",
	TokenPipePipe:       "PipePipe",
	TokenAmp:            "Amp",
	TokenAmpAmp:         "AmpAmp",
	TokenBang:           "Bang",
	TokenBangEqual:      "BangEqual",
	TokenEqual:          "Equal",
	TokenEqualEqual:     "EqualEqual",
	TokenDot:            "Dot",
	TokenDotDot:         "DotDot",
	TokenDotDotDot:      "DotDotDot",
	TokenLess:           "Less",
	TokenLessLess:       "LessLess",
	TokenLessEqual:      "LessEqual",
	TokenGreater:        "Greater",
	TokenGreaterGreater: "GreaterGreater",
	TokenGreaterEqual:   "GreaterEqual",

	TokenLine: "Line",

	TokenField:       "Field",
	TokenStaticField: "StaticField",
	TokenName:        "Name",
	TokenString:      "String",
	TokenNumber:      "Number",

	TokenBreak:     "Break",
	TokenClass:     "Class",
	TokenConstruct: "Construct",
	TokenElse:      "Else",
	TokenFalse:     "False",
	TokenFor:       "For",
	TokenForeign:   "Foreign",
	TokenIf:        "If",
	TokenImport:    "Import",
	TokenIn:        "In",
	TokenIs:        "Is",
	TokenNull:      "Null",
	TokenReturn:    "Return",
	TokenStatic:    "Static",
	TokenSuper:     "Super",
	TokenThis:      "This",
	TokenTrue:      "True",
	TokenVar:       "Var",
	TokenWhile:     "While",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

// IsKeyword reports whether k is one of the reserved word kinds.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenBreak && k <= TokenWhile
}

// Token is a classified span of source text. It borrows
// [Start, Start+Length) from its SourceFile instead of owning a copy.
type Token struct {
	Source *SourceFile
	Kind   TokenKind
	Start  int
	Length int
}

// Text returns the token's spelling. The returned string shares the source
// buffer; it is never a copy.
func (t Token) Text() string {
	return t.Source.Content[t.Start : t.Start+t.Length]
}

// Line returns the 1-based line where the token begins.
func (t Token) Line() int {
	return t.Source.LineAt(t.Start)
}

// Column returns the 1-based column where the token begins.
func (t Token) Column() int {
	return t.Source.ColumnAt(t.Start)
}

// Equal reports whether two tokens have the same kind and the same text, no
// matter which file or offset each came from.
func (t Token) Equal(other Token) bool {
	return t.Kind == other.Kind && t.Text() == other.Text()
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "eof"
	}
	return t.Text()
}

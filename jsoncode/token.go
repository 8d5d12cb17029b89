package jsoncode

import (
	"io"
	"strconv"
)

// Kind is the syntactic category of a token.
type Kind int8

const (
	None Kind = iota // no token yet
	StartObject
	EndObject
	StartArray
	EndArray
	FieldName
	String
	Int
	Float
	Bool
	Null
)

var kindNames = [...]string{"None", "StartObject", "EndObject", "StartArray", "EndArray",
	"FieldName", "String", "Int", "Float", "Bool", "Null"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsStructEnd is true for EndObject and EndArray.
func (k Kind) IsStructEnd() bool {
	return k == EndObject || k == EndArray
}

// IsScalar is true for value tokens which are neither objects nor arrays.
func (k Kind) IsScalar() bool {
	return k >= String && k <= Null
}

// Token is a single element of structured data. Which of the value fields is
// valid depends on Kind: Str for FieldName and String, Int for Int, Float for
// Float and Bool for Bool.
type Token struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

// Delim returns a token for one of StartObject, EndObject, StartArray and
// EndArray.
func Delim(k Kind) Token { return Token{Kind: k} }

// Field returns a field name token.
func Field(name string) Token { return Token{Kind: FieldName, Str: name} }

// StringValue returns a string token.
func StringValue(s string) Token { return Token{Kind: String, Str: s} }

// IntValue returns an integer token.
func IntValue(n int64) Token { return Token{Kind: Int, Int: n} }

// FloatValue returns a floating point token.
func FloatValue(f float64) Token { return Token{Kind: Float, Float: f} }

// BoolValue returns a boolean token.
func BoolValue(b bool) Token { return Token{Kind: Bool, Bool: b} }

// NullValue returns a null token.
func NullValue() Token { return Token{Kind: Null} }

func (t Token) String() string {
	switch t.Kind {
	case FieldName, String:
		return t.Kind.String() + "(" + strconv.Quote(t.Str) + ")"
	case Int:
		return "Int(" + strconv.FormatInt(t.Int, 10) + ")"
	case Float:
		return "Float(" + formatFloat(t.Float) + ")"
	case Bool:
		return "Bool(" + strconv.FormatBool(t.Bool) + ")"
	}
	return t.Kind.String()
}

// TokenSource is a pull-interface for tokens. Next returns io.EOF after the last
// token. Any other error ends the stream as well.
type TokenSource interface {
	Next() (Token, error)
}

// SliceSource is a TokenSource for a fixed sequence of tokens.
type SliceSource struct {
	tokens []Token
	pos    int
}

// Tokens creates a token source delivering tokens in order.
func Tokens(tokens ...Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next is part of interface TokenSource.
func (s *SliceSource) Next() (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, io.EOF
	}
	s.pos++
	return s.tokens[s.pos-1], nil
}

var _ TokenSource = &SliceSource{}

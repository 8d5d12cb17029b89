package jsoncode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// JSONSource reads tokens from JSON text. It tells field names from string
// values by keeping track of the enclosing structures.
type JSONSource struct {
	dec    *json.Decoder
	frames []frame
}

// frame is the state within an object or array.
type frame struct {
	object bool // an object rather than an array
	field  bool // inside an object, a field name has been read and its value is pending
}

// NewJSONSource creates a token source for JSON text read from r.
func NewJSONSource(r io.Reader) *JSONSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &JSONSource{dec: dec}
}

// Next is part of interface TokenSource.
func (s *JSONSource) Next() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return Token{}, err
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.valueDone()
			s.frames = append(s.frames, frame{object: true})
			return Delim(StartObject), nil
		case '[':
			s.valueDone()
			s.frames = append(s.frames, frame{})
			return Delim(StartArray), nil
		case '}':
			s.pop()
			return Delim(EndObject), nil
		case ']':
			s.pop()
			return Delim(EndArray), nil
		}
	case string:
		if top := s.top(); top != nil && top.object && !top.field {
			top.field = true
			return Field(v), nil
		}
		s.valueDone()
		return StringValue(v), nil
	case json.Number:
		s.valueDone()
		return numberToken(v), nil
	case bool:
		s.valueDone()
		return BoolValue(v), nil
	case nil:
		s.valueDone()
		return NullValue(), nil
	}
	return Token{}, fmt.Errorf("jsoncode: unexpected JSON token %v", tok)
}

func (s *JSONSource) top() *frame {
	if len(s.frames) == 0 {
		return nil
	}
	return &s.frames[len(s.frames)-1]
}

func (s *JSONSource) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// valueDone flips the enclosing object back to expecting a field name.
func (s *JSONSource) valueDone() {
	if top := s.top(); top != nil && top.object {
		top.field = false
	}
}

var _ TokenSource = &JSONSource{}

// numberToken classifies a JSON number. Numbers without fraction and exponent
// which fit into 64 bits are integers.
func numberToken(n json.Number) Token {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := n.Int64(); err == nil {
			return IntValue(i)
		}
	}
	f, _ := strconv.ParseFloat(lit, 64) // out-of-range literals yield ±Inf
	return FloatValue(f)
}

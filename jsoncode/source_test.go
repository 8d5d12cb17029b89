package jsoncode

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collect(t *testing.T, src TokenSource) ([]Token, error) {
	t.Helper()
	var tokens []Token
	for {
		tok, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return tokens, nil
			}
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func TestJSONSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	src := NewJSONSource(strings.NewReader(
		`{"a": "b", "n": [1, 2.5, 1e3, 99999999999999999999], "o": {"t": true, "z": null}, "s": "x"}`))
	tokens, err := collect(t, src)
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		Delim(StartObject),
		Field("a"), StringValue("b"),
		Field("n"), Delim(StartArray), IntValue(1), FloatValue(2.5), FloatValue(1000),
		FloatValue(99999999999999999999), Delim(EndArray),
		Field("o"), Delim(StartObject), Field("t"), BoolValue(true), Field("z"), NullValue(),
		Delim(EndObject),
		Field("s"), StringValue("x"),
		Delim(EndObject),
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSourceTruncated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	tokens, _ := collect(t, NewJSONSource(strings.NewReader(`["a", {"b": 1`)))
	want := []Token{Delim(StartArray), StringValue("a"), Delim(StartObject), Field("b"), IntValue(1)}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	if !EndArray.IsStructEnd() || StartArray.IsStructEnd() {
		t.Errorf("struct end misclassified")
	}
	for _, k := range []Kind{String, Int, Float, Bool, Null} {
		if !k.IsScalar() {
			t.Errorf("expected %s to be scalar", k)
		}
	}
	if FieldName.IsScalar() || None.IsScalar() {
		t.Errorf("expected field names not to be scalar")
	}
	if s := Field("x").String(); s != `FieldName("x")` {
		t.Errorf("unexpected token string %s", s)
	}
}

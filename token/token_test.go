package token

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPositionOf(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   Position
	}{
		{"start", "abc", 0, Position{0, 1, 1}},
		{"first line", "abc", 2, Position{2, 1, 3}},
		{"after newline", "ab\ncd", 3, Position{3, 2, 1}},
		{"second line", "ab\ncd", 4, Position{4, 2, 2}},
		{"end of input", "ab\ncd", 5, Position{5, 2, 3}},
		{"multibyte column", "żółw x", 7, Position{7, 1, 5}},
		{"clamped", "ab", 10, Position{2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionOf(tt.input, tt.offset)
			if got != tt.want {
				t.Errorf("PositionOf(%q, %d) = %+v, want %+v", tt.input, tt.offset, got, tt.want)
			}
		})
	}
}

func TestUnrecognized(t *testing.T) {
	f := Unrecognized("  @fnx ", 2)
	want := Failure{Error: UnrecognizedMessage, Index: 2, Line: 1, Column: 3}
	if *f != want {
		t.Errorf("Unrecognized = %+v, want %+v", *f, want)
	}
}

func TestCapture(t *testing.T) {
	input := "xxSth"
	// Submatch indexes relative to input[2:], group 2 did not participate.
	loc := []int{0, 3, 0, 1, -1, -1}

	if got := Capture(input, 2, loc, 1); got != "S" {
		t.Errorf("Capture group 1 = %q, want %q", got, "S")
	}
	if got := Capture(input, 2, loc, 2); got != "" {
		t.Errorf("Capture group 2 = %q, want empty", got)
	}
	if got := Capture(input, 2, loc, 5); got != "" {
		t.Errorf("Capture out of range = %q, want empty", got)
	}
}

func TestNewAppliesProcessor(t *testing.T) {
	upper := func(captures map[string]string, raw string) map[string]string {
		return map[string]string{"upper": strings.ToUpper(raw)}
	}

	tok := New("LT", Value("sth"), "a sth", 2, 5, upper)
	if tok.Raw != "sth" || tok.Start != 2 || tok.End != 5 {
		t.Fatalf("unexpected token span: %+v", tok)
	}
	if tok.Data["upper"] != "STH" {
		t.Errorf("processed data = %v, want upper=STH", tok.Data)
	}

	plain := New("LT", Value("sth"), "a sth", 2, 5, nil)
	if plain.Data[ValueKey] != "sth" {
		t.Errorf("data = %v, want value=sth", plain.Data)
	}
}

func TestDebug(t *testing.T) {
	tok := Token{Type: "WS", Data: Value(" "), Start: 3, End: 4, Raw: " "}
	d := tok.Debug()
	if d.Type != "WS" || d.Code != " " || d.Position.Start != 3 || d.Position.End != 4 {
		t.Errorf("Debug() = %+v", d)
	}
}

func TestResultJSON(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"empty success", Result{}, `{"tokens":[]}`},
		{"empty token list", Result{Tokens: []Token{}}, `{"tokens":[]}`},
		{
			"success",
			Result{Tokens: []Token{New("WS", Value(" "), " ", 0, 1, nil)}},
			`{"tokens":[{"type":"WS","data":{"value":" "},"start":0,"end":1}]}`,
		},
		{
			"failure",
			Result{Failure: Unrecognized("ab\n?", 3)},
			`{"failure":{"error":"Unrecognized token","index":3,"line":2,"column":1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

package scan

import (
	"strings"
	"testing"
)

func TestBalanced(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		want  string
		ok    bool
	}{
		{
			name:  "simple object",
			text:  `{"a": 1}`,
			start: 0,
			want:  `{"a": 1}`,
			ok:    true,
		},
		{
			name:  "nested objects",
			text:  `{"a": {"b": {"c": 1}}} trailing`,
			start: 0,
			want:  `{"a": {"b": {"c": 1}}}`,
			ok:    true,
		},
		{
			name:  "closing brace inside string is not structural",
			text:  `{a: "}", b: {}}`,
			start: 0,
			want:  `{a: "}", b: {}}`,
			ok:    true,
		},
		{
			name:  "closing brace inside line comment is not structural",
			text:  "{ // comment with } inside\n x: 1 }",
			start: 0,
			want:  "{ // comment with } inside\n x: 1 }",
			ok:    true,
		},
		{
			name:  "closing brace inside block comment is not structural",
			text:  "{ /* } */ x: 1 }",
			start: 0,
			want:  "{ /* } */ x: 1 }",
			ok:    true,
		},
		{
			name:  "single quoted string hides braces",
			text:  `{a: '}}', b: 2}`,
			start: 0,
			want:  `{a: '}}', b: 2}`,
			ok:    true,
		},
		{
			name:  "backtick string hides braces",
			text:  "{a: `}${x}`}",
			start: 0,
			want:  "{a: `}${x}`}",
			ok:    true,
		},
		{
			name:  "escaped quote does not end the string",
			text:  `{a: "say \"}\" loud"}`,
			start: 0,
			want:  `{a: "say \"}\" loud"}`,
			ok:    true,
		},
		{
			name:  "truncated input",
			text:  `{"a": {"b": 1}`,
			start: 0,
			ok:    false,
		},
		{
			name:  "no opening brace at all",
			text:  `just prose }`,
			start: 0,
			ok:    false,
		},
		{
			name:  "stray closer before the first opener is ignored",
			text:  `} {"a": 1}`,
			start: 0,
			want:  `} {"a": 1}`,
			ok:    true,
		},
		{
			name:  "start past the end",
			text:  `{}`,
			start: 10,
			ok:    false,
		},
		{
			name:  "start mid-text",
			text:  `prefix {"x": [1, 2]} suffix`,
			start: 7,
			want:  `{"x": [1, 2]}`,
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Balanced(tt.text, tt.start)
			if ok != tt.ok {
				t.Fatalf("Balanced() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Text != tt.want {
				t.Errorf("Balanced() = %q, want %q", got.Text, tt.want)
			}
			if got.Text != tt.text[got.Start:got.End] {
				t.Errorf("Block offsets [%d,%d) do not slice back to Text", got.Start, got.End)
			}
			if got.Start != tt.start {
				t.Errorf("Block.Start = %d, want %d", got.Start, tt.start)
			}
		})
	}
}

func TestBalancedPair_Arrays(t *testing.T) {
	text := `data: [1, "]", [2, 3]] rest`
	start := strings.IndexByte(text, '[')

	got, ok := BalancedPair(text, start, '[', ']')
	if !ok {
		t.Fatal("BalancedPair() ok = false, want true")
	}
	if want := `[1, "]", [2, 3]]`; got.Text != want {
		t.Errorf("BalancedPair() = %q, want %q", got.Text, want)
	}
}

func TestBalanced_LinearAdvance(t *testing.T) {
	// A pathological mix of escapes and comment markers must still
	// terminate with a scan of the whole input.
	text := strings.Repeat(`\"`, 1000) + "{}"
	if _, ok := Balanced(text, 0); ok {
		t.Error("Balanced() ok = true, want false: the leading escape swallows the opener")
	}
}

func TestNextStructural(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		targets []byte
		want    int
		ok      bool
	}{
		{
			name:    "brace inside comment is skipped",
			text:    "// not this {\nreal {",
			targets: []byte{'{'},
			want:    19,
			ok:      true,
		},
		{
			name:    "brace inside string is skipped",
			text:    `"{" {`,
			targets: []byte{'{'},
			want:    4,
			ok:      true,
		},
		{
			name:    "first of several targets wins",
			text:    `x = [1] and {2}`,
			targets: []byte{'{', '['},
			want:    4,
			ok:      true,
		},
		{
			name:    "no structural occurrence",
			text:    `"{" // {`,
			targets: []byte{'{'},
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextStructural(tt.text, 0, tt.targets...)
			if ok != tt.ok {
				t.Fatalf("NextStructural() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("NextStructural() = %d, want %d", got, tt.want)
			}
		})
	}
}

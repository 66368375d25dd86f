package extract

import "testing"

func TestNormalizeEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "after statement terminator",
			input: `const a = 1;\nconst b = 2;`,
			want:  "const a = 1;\nconst b = 2;",
		},
		{
			name:  "after opening brace",
			input: `function f() {\nreturn 1;\n}`,
			want:  "function f() {\nreturn 1;\n}",
		},
		{
			name:  "before closing bracket",
			input: `[1, 2\n]`,
			want:  "[1, 2\n]",
		},
		{
			name:  "after comma",
			input: `{a: 1,\nb: 2}`,
			want:  "{a: 1,\nb: 2}",
		},
		{
			name:  "not adjacent to punctuation is untouched",
			input: `const s = "line one\nline two";`,
			want:  `const s = "line one\nline two";`,
		},
		{
			name:  "real newlines untouched",
			input: "a;\nb;",
			want:  "a;\nb;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeEscapes(tt.input); got != tt.want {
				t.Errorf("NormalizeEscapes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

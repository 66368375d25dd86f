package extract

import "testing"

func TestExtractField(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		key     string
		nextKey string
		want    string
		ok      bool
	}{
		{
			name:    "bounded by next key",
			text:    `garbage "pdfMakeCode": "async function exportPDF(){return 1;}", "excelJSCode": "x" more`,
			key:     "pdfMakeCode",
			nextKey: "excelJSCode",
			want:    "async function exportPDF(){return 1;}",
			ok:      true,
		},
		{
			name:    "next key marker split across lines",
			text:    "\"pdfMakeCode\": \"doc()\",\n  \"excelJSCode\": \"wb()\"",
			key:     "pdfMakeCode",
			nextKey: "excelJSCode",
			want:    "doc()",
			ok:      true,
		},
		{
			name:    "unquoted key variant",
			text:    `{pdfMakeCode: "doc()", excelJSCode: "wb()"}`,
			key:     "pdfMakeCode",
			nextKey: "excelJSCode",
			want:    "doc()",
			ok:      true,
		},
		{
			name:    "last field falls back to last quote",
			text:    `"excelJSCode": "worksheet.addRow()" }`,
			key:     "excelJSCode",
			nextKey: "",
			want:    "worksheet.addRow()",
			ok:      true,
		},
		{
			name:    "no trailing quote takes rest of text",
			text:    `"excelJSCode": "worksheet.addRow(`,
			key:     "excelJSCode",
			nextKey: "",
			want:    "worksheet.addRow(",
			ok:      true,
		},
		{
			name:    "missing next key falls back to last quote",
			text:    `"pdfMakeCode": "doc()" trailing prose`,
			key:     "pdfMakeCode",
			nextKey: "excelJSCode",
			want:    "doc()",
			ok:      true,
		},
		{
			name:    "escapes are unescaped",
			text:    `"pdfMakeCode": "const t = \"a\";\nnext()", "excelJSCode": ""`,
			key:     "pdfMakeCode",
			nextKey: "excelJSCode",
			want:    "const t = \"a\";\nnext()",
			ok:      true,
		},
		{
			name:    "marker absent",
			text:    `nothing of interest here`,
			key:     "pdfMakeCode",
			nextKey: "excelJSCode",
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractField(tt.text, tt.key, tt.nextKey)
			if ok != tt.ok {
				t.Fatalf("ExtractField() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractField() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnescapeField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain", want: "plain"},
		{name: "doubled backslash", input: `a\\b`, want: `a\b`},
		{name: "escaped quote", input: `say \"hi\"`, want: `say "hi"`},
		{name: "newline tab return", input: `a\nb\tc\rd`, want: "a\nb\tc\rd"},
		{name: "unknown escape kept", input: `a\qb`, want: `a\qb`},
		{name: "trailing lone backslash", input: `a\`, want: `a\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unescapeField(tt.input); got != tt.want {
				t.Errorf("unescapeField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
		ok   bool
	}{
		{
			name: "object value",
			text: `prose "summary": {"fileType": "pdf", "headers": {"title": "T"}} more`,
			key:  "summary",
			want: `{"fileType": "pdf", "headers": {"title": "T"}}`,
			ok:   true,
		},
		{
			name: "array value",
			text: `"extractedData": [ {"a": 1}, {"b": 2} ] }`,
			key:  "extractedData",
			want: `[ {"a": 1}, {"b": 2} ]`,
			ok:   true,
		},
		{
			name: "brace inside string value",
			text: `"summary": {"title": "a } b"}`,
			key:  "summary",
			want: `{"title": "a } b"}`,
			ok:   true,
		},
		{
			name: "marker absent",
			text: `no fields`,
			key:  "summary",
			ok:   false,
		},
		{
			name: "truncated block",
			text: `"summary": {"fileType": "pdf"`,
			key:  "summary",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBlock(tt.text, tt.key)
			if ok != tt.ok {
				t.Fatalf("ExtractBlock() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSchemaNext(t *testing.T) {
	schema := Schema{"summary", "pdfMakeCode", "excelJSCode", "extractedData"}

	tests := []struct {
		key  string
		want string
	}{
		{key: "summary", want: "pdfMakeCode"},
		{key: "excelJSCode", want: "extractedData"},
		{key: "extractedData", want: ""},
		{key: "unknown", want: ""},
	}
	for _, tt := range tests {
		if got := schema.Next(tt.key); got != tt.want {
			t.Errorf("Next(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyPatternsAreCached(t *testing.T) {
	if valueStartPattern("summary") != valueStartPattern("summary") {
		t.Error("valueStartPattern recompiled on second use")
	}
	if keyMarkerPattern("pdfMakeCode") != keyMarkerPattern("pdfMakeCode") {
		t.Error("keyMarkerPattern recompiled on second use")
	}
	if nextKeyPattern("excelJSCode") != nextKeyPattern("excelJSCode") {
		t.Error("nextKeyPattern recompiled on second use")
	}
}

package tokenizer

import "testing"

func TestEscapeHTMLText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"hello", "hello"},
		{"a & b", "a &amp; b"},
		{"a < b > c", "a &lt; b &gt; c"},
		{`"quoted"`, `"quoted"`},
	}
	for _, tt := range tests {
		if got := EscapeHTMLText(tt.in); got != tt.want {
			t.Errorf("EscapeHTMLText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeHTMLAttributeValue(t *testing.T) {
	tests := []struct{ in, want string }{
		{"hello", "hello"},
		{`a & b`, "a &amp; b"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"a < b", "a < b"},
	}
	for _, tt := range tests {
		if got := EscapeHTMLAttributeValue(tt.in); got != tt.want {
			t.Errorf("EscapeHTMLAttributeValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{NewStartTagToken("div"), "<div>"},
		{NewEndTagToken("div"), "</div>"},
		{NewCharacterToken("a & b"), "a &amp; b"},
		{NewCommentToken("note"), "<!--note-->"},
		{Token{Type: EOF}, "EOF"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenStringStartTagWithAttrs(t *testing.T) {
	tok := NewStartTagToken("a")
	tok.Attrs = []Attr{{Name: "href", Value: `"quoted"`}}
	want := `<a href="&quot;quoted&quot;">`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}

package tokenizer

import "strings"

// EscapeHTMLText escapes the characters that would otherwise be
// misinterpreted as markup inside text content: '&', '<', '>'.
func EscapeHTMLText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// EscapeHTMLAttributeValue escapes an attribute value for inclusion inside a
// double-quoted attribute: '&', '"'.
func EscapeHTMLAttributeValue(s string) string {
	if !strings.ContainsAny(s, "&\"") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '"':
			sb.WriteString("&quot;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// String renders a token for debugging. Character data and attribute values
// are escaped the way a serializer would; comment data is written unescaped,
// and a DOCTYPE is rendered with its name only.
func (t Token) String() string {
	switch t.Type {
	case StartTag:
		var sb strings.Builder
		sb.WriteByte('<')
		sb.WriteString(t.Name)
		for _, a := range t.Attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			sb.WriteString(`="`)
			sb.WriteString(EscapeHTMLAttributeValue(a.Value))
			sb.WriteByte('"')
		}
		if t.SelfClosing {
			sb.WriteString(" /")
		}
		sb.WriteByte('>')
		return sb.String()
	case EndTag:
		return "</" + t.Name + ">"
	case Character:
		return EscapeHTMLText(t.Data)
	case Comment:
		return "<!--" + t.Data + "-->"
	case DOCTYPE:
		return "<!DOCTYPE " + t.Name + ">"
	case EOF:
		return "EOF"
	default:
		return "Error(" + t.ErrorCode + ")"
	}
}

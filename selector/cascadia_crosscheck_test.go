package selector_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/nolanw/htmlreader-go/dom"
	"github.com/nolanw/htmlreader-go/selector"
)

// crossCheckFixture is parsed once by golang.org/x/net/html (for goquery and
// cascadia) and once built by hand as a dom.Document (for this package's own
// selector engine), so the same selector strings can be checked against both
// implementations on matching trees.
const crossCheckFixture = `<!DOCTYPE html>
<html><body>
<div id="main" class="container">
  <p class="intro">Hello</p>
  <ul class="list">
    <li class="item first">One</li>
    <li class="item">Two</li>
    <li class="item last">Three</li>
  </ul>
</div>
<div id="sidebar" class="container aside">
  <a href="#" class="link">Link</a>
</div>
</body></html>`

func buildCrossCheckDOM(t *testing.T) *dom.Element {
	t.Helper()

	doc := dom.NewDocument()
	htmlEl := dom.NewElement("html")
	doc.AppendChild(htmlEl)
	body := dom.NewElement("body")
	htmlEl.AppendChild(body)

	main := dom.NewElement("div")
	main.SetAttr("id", "main")
	main.SetAttr("class", "container")
	body.AppendChild(main)

	intro := dom.NewElement("p")
	intro.SetAttr("class", "intro")
	intro.AppendChild(dom.NewText("Hello"))
	main.AppendChild(intro)

	list := dom.NewElement("ul")
	list.SetAttr("class", "list")
	main.AppendChild(list)

	items := []struct{ class, text string }{
		{"item first", "One"},
		{"item", "Two"},
		{"item last", "Three"},
	}
	for _, it := range items {
		li := dom.NewElement("li")
		li.SetAttr("class", it.class)
		li.AppendChild(dom.NewText(it.text))
		list.AppendChild(li)
	}

	sidebar := dom.NewElement("div")
	sidebar.SetAttr("id", "sidebar")
	sidebar.SetAttr("class", "container aside")
	body.AppendChild(sidebar)

	link := dom.NewElement("a")
	link.SetAttr("href", "#")
	link.SetAttr("class", "link")
	link.AppendChild(dom.NewText("Link"))
	sidebar.AppendChild(link)

	return htmlEl
}

// TestSelectorMatchCountAgainstCascadia cross-checks this package's selector
// engine against cascadia (the selector engine goquery itself is built on)
// for the count of matches, on the equivalent fixture tree.
func TestSelectorMatchCountAgainstCascadia(t *testing.T) {
	netDoc, err := html.Parse(strings.NewReader(crossCheckFixture))
	require.NoError(t, err)

	ourRoot := buildCrossCheckDOM(t)

	tests := []string{
		"div",
		"div.container",
		"li.item",
		"#main",
		"#sidebar > a",
		"ul.list li",
		".container .item",
	}

	for _, sel := range tests {
		t.Run(sel, func(t *testing.T) {
			cascadiaSel, err := cascadia.Compile(sel)
			require.NoError(t, err)
			want := len(cascadiaSel.MatchAll(netDoc))

			got, err := selector.Match(ourRoot, sel)
			require.NoError(t, err)
			require.Len(t, got, want, "selector %q: htmlreader matched %d, cascadia matched %d", sel, len(got), want)
		})
	}
}

// TestSelectorMatchCountAgainstGoquery cross-checks against goquery's own
// Find, which wraps cascadia but goes through its own document model.
func TestSelectorMatchCountAgainstGoquery(t *testing.T) {
	gqDoc, err := goquery.NewDocumentFromReader(strings.NewReader(crossCheckFixture))
	require.NoError(t, err)

	ourRoot := buildCrossCheckDOM(t)

	tests := []string{"div", "li.item", "a.link"}
	for _, sel := range tests {
		t.Run(sel, func(t *testing.T) {
			want := gqDoc.Find(sel).Length()

			got, err := selector.Match(ourRoot, sel)
			require.NoError(t, err)
			require.Len(t, got, want)
		})
	}
}

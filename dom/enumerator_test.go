package dom

import (
	"reflect"
	"testing"
)

func buildEnumeratorFixture() *Element {
	root := NewElement("div")
	a := NewElement("a")
	b := NewElement("b")
	root.AppendChild(a)
	root.AppendChild(b)
	a.AppendChild(NewText("a-text"))
	b.AppendChild(NewText("b-text"))
	return root
}

func drain(e interface{ Next() (Node, bool) }) []Node {
	var out []Node
	for {
		n, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, n)
	}
	return out
}

func TestTreeEnumeratorPreorder(t *testing.T) {
	root := buildEnumeratorFixture()
	nodes := drain(NewTreeEnumerator(root))

	var tags []string
	for _, n := range nodes {
		if el, ok := n.(*Element); ok {
			tags = append(tags, el.TagName)
		}
	}
	want := []string{"div", "a", "b"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
}

func TestReverseTreeEnumeratorVisitsLastChildFirst(t *testing.T) {
	root := buildEnumeratorFixture()
	nodes := drain(NewReverseTreeEnumerator(root))

	var tags []string
	for _, n := range nodes {
		if el, ok := n.(*Element); ok {
			tags = append(tags, el.TagName)
		}
	}
	want := []string{"div", "b", "a"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
}

func TestTreeEnumeratorNilNode(t *testing.T) {
	if _, ok := NewTreeEnumerator(nil).Next(); ok {
		t.Fatalf("Next() on nil root should report exhausted immediately")
	}
	if _, ok := NewReverseTreeEnumerator(nil).Next(); ok {
		t.Fatalf("Next() on nil root should report exhausted immediately")
	}
}

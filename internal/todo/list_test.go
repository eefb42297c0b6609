package todo

import "testing"

func TestAddRejectsBlank(t *testing.T) {
	l := New()
	for _, text := range []string{"", "   ", "\t\n"} {
		if l.Add(text) {
			t.Fatalf("Add(%q) accepted", text)
		}
	}
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d", l.Len())
	}
}

func TestAddKeepsTextAsEntered(t *testing.T) {
	l := New()
	if !l.Add("  buy milk ") {
		t.Fatalf("Add rejected non-blank text")
	}
	items := l.Items()
	if len(items) != 1 || items[0].Text != "  buy milk " || items[0].Completed {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestToggleAndDelete(t *testing.T) {
	l := New()
	l.Add("one")
	l.Add("two")
	l.Add("three")

	if !l.Toggle(1) {
		t.Fatalf("Toggle(1) failed")
	}
	if l.Remaining() != 2 {
		t.Fatalf("expected 2 remaining, got %d", l.Remaining())
	}
	if !l.Delete(0) {
		t.Fatalf("Delete(0) failed")
	}
	items := l.Items()
	if len(items) != 2 || items[0].Text != "two" || !items[0].Completed || items[1].Text != "three" {
		t.Fatalf("unexpected items after delete: %+v", items)
	}
	l.Toggle(0)
	if l.Items()[0].Completed {
		t.Fatalf("second toggle should clear completion")
	}
}

func TestOutOfRangeIsNoop(t *testing.T) {
	l := New()
	l.Add("only")
	for _, i := range []int{-1, 1, 99} {
		if l.Toggle(i) || l.Delete(i) {
			t.Fatalf("index %d should be rejected", i)
		}
	}
	if l.Len() != 1 || l.Items()[0].Completed {
		t.Fatalf("list changed: %+v", l.Items())
	}
}

func TestItemsIsCopy(t *testing.T) {
	l := New()
	l.Add("a")
	items := l.Items()
	items[0].Text = "mutated"
	if l.Items()[0].Text != "a" {
		t.Fatalf("Items leaked internal storage")
	}
}

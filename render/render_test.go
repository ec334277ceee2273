package render

import "testing"

func TestRender_EmptyInput(t *testing.T) {
	if got := Render(""); got != "" {
		t.Fatalf("expected empty output for empty input, got %q", got)
	}
}

func TestRender_HTMLPassesThroughUnchanged(t *testing.T) {
	cases := []string{
		"<p>already rendered</p>",
		`<div class="x">content</div>`,
		"prose with a break<br/>inside",
		"<UL><LI>upper case tags</LI></UL>",
	}
	for _, input := range cases {
		if got := Render(input); got != input {
			t.Fatalf("expected HTML input to pass through unchanged, got %q for %q", got, input)
		}
	}
}

func TestRender_Idempotence(t *testing.T) {
	once := Render("**bold** and *italic*")
	twice := Render(once)
	if once != twice {
		t.Fatalf("expected rendered output to be stable, got %q then %q", once, twice)
	}
}

func TestRender_Bold(t *testing.T) {
	got := Render("**bold**")
	want := "<p><strong>bold</strong></p>"
	if got != want {
		t.Fatalf("Render bold mismatch: got %q, want %q", got, want)
	}
}

func TestRender_Italic(t *testing.T) {
	got := Render("*italic*")
	want := "<p><em>italic</em></p>"
	if got != want {
		t.Fatalf("Render italic mismatch: got %q, want %q", got, want)
	}
}

func TestRender_UnorderedList(t *testing.T) {
	got := Render("- a\n- b")
	want := "<ul><li>a</li><li>b</li></ul>"
	if got != want {
		t.Fatalf("Render unordered list mismatch: got %q, want %q", got, want)
	}
}

func TestRender_OrderedList(t *testing.T) {
	got := Render("1. a\n2. b")
	want := "<ol><li>a</li><li>b</li></ol>"
	if got != want {
		t.Fatalf("Render ordered list mismatch: got %q, want %q", got, want)
	}
}

func TestRender_OrderedListSurvivesBlankLines(t *testing.T) {
	got := Render("1. a\n\n2. b")
	want := "<ol><li>a</li><li>b</li></ol>"
	if got != want {
		t.Fatalf("expected blank line between items to be swallowed: got %q, want %q", got, want)
	}
}

func TestRender_InlineOrderedListCoalesces(t *testing.T) {
	got := Render("Summary. 2. Second. 3. Third.")
	want := "<p>Summary.</p><ol><li>Second.</li><li>Third.</li></ol>"
	if got != want {
		t.Fatalf("expected one ordered list, not fragmented paragraphs: got %q, want %q", got, want)
	}
}

func TestRender_Heading(t *testing.T) {
	got := Render("# Title")
	want := "<h1>Title</h1>"
	if got != want {
		t.Fatalf("Render heading mismatch: got %q, want %q", got, want)
	}
}

func TestRender_ListKindSwitchClosesList(t *testing.T) {
	got := Render("- a\n1. b")
	want := "<ul><li>a</li></ul><ol><li>b</li></ol>"
	if got != want {
		t.Fatalf("expected kind switch to close the unordered list first: got %q, want %q", got, want)
	}
}

func TestRenderer_SatisfiesContract(t *testing.T) {
	var r Renderer
	if got := r.Render("**x**"); got != "<p><strong>x</strong></p>" {
		t.Fatalf("Renderer.Render mismatch: got %q", got)
	}
}

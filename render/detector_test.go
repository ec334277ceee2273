package render

import "testing"

func TestIsHTML_StructuralTags(t *testing.T) {
	cases := []string{
		"<p>hello</p>",
		"line<br/>break",
		"<div class=\"wrap\">x</div>",
		"<SPAN>upper</SPAN>",
		"<h3>subhead</h3>",
		"text ending with </blockquote>",
		"<table><tr><td>1</td></tr></table>",
		"<a href=\"https://example.com\">link</a>",
	}
	for _, input := range cases {
		if !IsHTML(input) {
			t.Fatalf("expected %q to be classified as HTML", input)
		}
	}
}

func TestIsHTML_PlainAndMarkdownText(t *testing.T) {
	cases := []string{
		"",
		"plain prose with no markup",
		"**bold markdown**",
		"- list item",
		"1. ordered item",
		"math like 1<2 and x<y",
		"<notarealtag>",
		"a < b > c",
	}
	for _, input := range cases {
		if IsHTML(input) {
			t.Fatalf("expected %q to be classified as not HTML", input)
		}
	}
}

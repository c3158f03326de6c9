package paper

import (
	"strings"
	"testing"
)

func TestDocumentEmpty(t *testing.T) {
	var doc Document
	if !doc.Empty() {
		t.Error("zero document should be empty")
	}

	doc.Abstract = "   \n  "
	if !doc.Empty() {
		t.Error("whitespace-only document should be empty")
	}

	doc.Conclusion = "Done."
	if doc.Empty() {
		t.Error("document with a conclusion should not be empty")
	}
}

func TestDocumentFieldCoversAllNames(t *testing.T) {
	doc := Document{
		Abstract:     "a",
		Introduction: "b",
		Motivation:   "c",
		Contribution: "d",
		Methodology:  "e",
		Experiments:  "f",
		Limitations:  "g",
		FutureWork:   "h",
		Conclusion:   "i",
	}
	for _, name := range FieldNames {
		if doc.Field(name) == "" {
			t.Errorf("Field(%q) returned empty for populated document", name)
		}
		if _, ok := FieldTitles[name]; !ok {
			t.Errorf("no display title for field %q", name)
		}
	}
	if doc.Field("nonsense") != "" {
		t.Error("unknown field name should return empty string")
	}
}

func TestApplyDefaults(t *testing.T) {
	var m Metadata
	m.ApplyDefaults()
	if m.Title != "Unknown Title" {
		t.Errorf("title: got %q", m.Title)
	}
	if m.Authors != "Unknown Authors" {
		t.Errorf("authors: got %q", m.Authors)
	}
	if m.Presenter != "Your Name" || m.PresenterID != "Student ID" {
		t.Errorf("presenter defaults: got %q (%q)", m.Presenter, m.PresenterID)
	}

	m2 := Metadata{Title: "Set Title"}
	m2.ApplyDefaults()
	if m2.Title != "Set Title" {
		t.Errorf("non-blank title should survive, got %q", m2.Title)
	}
}

func TestGuessMetadata(t *testing.T) {
	text := strings.Join([]string{
		"arXiv preprint",
		"Attention Is All You Need",
		"Ashish Vaswani, Noam Shazeer",
		"Published at NeurIPS 2017",
		"https://arxiv.org/abs/1706.03762",
		"",
		"Abstract text follows here.",
	}, "\n")

	meta := GuessMetadata(text, "attention.pdf")
	if meta.Title != "arXiv preprint" && meta.Title != "Attention Is All You Need" {
		t.Errorf("unexpected title guess %q", meta.Title)
	}
	if meta.Year != "2017" {
		t.Errorf("year: got %q", meta.Year)
	}
	if meta.PaperURL != "https://arxiv.org/abs/1706.03762" {
		t.Errorf("paper url: got %q", meta.PaperURL)
	}
	if !strings.Contains(meta.Venue, "NeurIPS") {
		t.Errorf("venue: got %q", meta.Venue)
	}
}

func TestGuessMetadataFallsBackToFilename(t *testing.T) {
	meta := GuessMetadata("1234\nhttp://x.test\n", "paper.pdf")
	if meta.Title != "paper" {
		t.Errorf("expected filename fallback, got %q", meta.Title)
	}
}

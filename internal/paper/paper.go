package paper

import "strings"

// Document holds the structured summary of one analyzed paper.
// Every field is Markdown-subset text produced by the LLM; any field
// may be empty. Immutable after analysis.
type Document struct {
	Abstract     string `json:"abstract"`
	Introduction string `json:"introduction"`
	Motivation   string `json:"motivation"`
	Contribution string `json:"contribution"`
	Methodology  string `json:"methodology"`
	Experiments  string `json:"experiments"`
	Limitations  string `json:"limitations"`
	FutureWork   string `json:"future_work"`
	Conclusion   string `json:"conclusion"`
}

// FieldNames is the canonical field order, used by the report assembler
// and the history view.
var FieldNames = []string{
	"abstract",
	"introduction",
	"motivation",
	"contribution",
	"methodology",
	"experiments",
	"limitations",
	"future_work",
	"conclusion",
}

// FieldTitles maps field names to display headings.
var FieldTitles = map[string]string{
	"abstract":     "Abstract",
	"introduction": "Introduction",
	"motivation":   "Motivation",
	"contribution": "Contribution",
	"methodology":  "Methodology",
	"experiments":  "Experiments & Results",
	"limitations":  "Limitations & Challenges",
	"future_work":  "Future Work",
	"conclusion":   "Conclusion",
}

// Field returns the text of the named field, or "" for unknown names.
func (d Document) Field(name string) string {
	switch name {
	case "abstract":
		return d.Abstract
	case "introduction":
		return d.Introduction
	case "motivation":
		return d.Motivation
	case "contribution":
		return d.Contribution
	case "methodology":
		return d.Methodology
	case "experiments":
		return d.Experiments
	case "limitations":
		return d.Limitations
	case "future_work":
		return d.FutureWork
	case "conclusion":
		return d.Conclusion
	}
	return ""
}

// Empty reports whether every field is blank or whitespace-only.
func (d Document) Empty() bool {
	for _, name := range FieldNames {
		if strings.TrimSpace(d.Field(name)) != "" {
			return false
		}
	}
	return true
}

package paper

import (
	"regexp"
	"strings"
)

// Metadata describes the paper and presenter for the cover slide.
// All fields are free-form text; ApplyDefaults fills blanks.
type Metadata struct {
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Venue       string `json:"venue"`
	Year        string `json:"year"`
	PaperURL    string `json:"paper_url"`
	Presenter   string `json:"presenter"`
	PresenterID string `json:"presenter_id"`
}

// ApplyDefaults replaces blank fields with the documented placeholders.
func (m *Metadata) ApplyDefaults() {
	if strings.TrimSpace(m.Title) == "" {
		m.Title = "Unknown Title"
	}
	if strings.TrimSpace(m.Authors) == "" {
		m.Authors = "Unknown Authors"
	}
	if strings.TrimSpace(m.Venue) == "" {
		m.Venue = "Unknown Venue"
	}
	if strings.TrimSpace(m.Year) == "" {
		m.Year = "Unknown Year"
	}
	if strings.TrimSpace(m.Presenter) == "" {
		m.Presenter = "Your Name"
	}
	if strings.TrimSpace(m.PresenterID) == "" {
		m.PresenterID = "Student ID"
	}
}

var (
	yearRe     = regexp.MustCompile(`\b(201[5-9]|202[0-9])\b`)
	arxivRe    = regexp.MustCompile(`https?://arxiv\.org/abs/\d+\.\d+`)
	paperURLRe = regexp.MustCompile(`https?://\S+(?:\.pdf|/paper/)`)
)

// venueMarkers is scanned in order; the first marker found in the paper
// text decides the venue guess.
var venueMarkers = []string{
	"CVPR", "ICCV", "ECCV", "NeurIPS", "ICML", "ICLR", "AAAI",
	"IJCAI", "ACL", "EMNLP", "NAACL", "SIGGRAPH", "SIGMOD",
	"VLDB", "ICDE", "KDD", "RecSys", "CIKM",
	"IEEE Transactions on", "ACM Transactions on",
	"Journal of", "Proceedings of",
}

// GuessMetadata extracts best-effort paper metadata from the extracted
// text. Filename (without extension) is the title fallback.
func GuessMetadata(text, filename string) Metadata {
	meta := Metadata{
		Title: strings.TrimSuffix(filename, ".pdf"),
	}

	// First plausible line is taken as the title.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= 20 {
			break
		}
		s := strings.TrimSpace(line)
		if len(s) < 10 || len(s) > 200 {
			continue
		}
		if strings.HasPrefix(s, "http") || isDigits(s) {
			continue
		}
		if strings.ContainsFunc(s, isLetter) {
			meta.Title = s
			break
		}
	}

	head := text
	if len(head) > 5000 {
		head = head[:5000]
	}
	if m := yearRe.FindString(head); m != "" {
		meta.Year = m
	}
	if m := arxivRe.FindString(head); m != "" {
		meta.PaperURL = m
	} else if m := paperURLRe.FindString(head); m != "" {
		meta.PaperURL = m
	}

	lower := strings.ToLower(text)
	for _, marker := range venueMarkers {
		if idx := strings.Index(lower, strings.ToLower(marker)); idx >= 0 {
			venue := text[idx:]
			if cut := strings.IndexAny(venue, ".\n"); cut >= 0 {
				venue = venue[:cut]
			}
			if len(venue) > 100 {
				venue = venue[:100]
			}
			meta.Venue = strings.TrimSpace(venue)
			break
		}
	}

	return meta
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

package deck

import (
	"regexp"
	"strings"
)

var headingLineRe = regexp.MustCompile(`^#{2,3}\s*(.*)$`)

// resultsHeadings are the heading phrases that mark where experiment
// setup ends and quantitative results begin.
var resultsHeadings = map[string]bool{
	"results":              true,
	"quantitative results": true,
	"experimental results": true,
	"main results":         true,
}

// SplitMethodology divides the methodology field at its first ###
// subsection boundary. Text before the boundary is the overview; the
// boundary heading and everything after it are the technical details.
// Without a ### heading the whole field is overview.
func SplitMethodology(text string) (overview, details string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "###") {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i:], "\n")
		}
	}
	return text, ""
}

// SplitExperiments divides the experiments field at the first heading
// matching one of the known results phrases. Without a match the whole
// field is setup.
func SplitExperiments(text string) (setup, results string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := headingLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if resultsHeadings[strings.ToLower(strings.TrimSpace(m[1]))] {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i:], "\n")
		}
	}
	return text, ""
}

package cargotree

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/cargograph/pkg/graph"
)

// indentWidth is the rune width of one nesting level ("│   " or "    ").
const indentWidth = 4

var (
	treeLineRE    = regexp.MustCompile(`^((?:│   |    )*)(?:├──|└──)\s(.+)$`)
	sectionLineRE = regexp.MustCompile(`^((?:│   |    )*)(\[[^\]]+\])\s*$`)
	sanitizeRE    = regexp.MustCompile(`[^0-9A-Za-z_]`)
)

// LineKind classifies a raw line of tree output.
type LineKind int

const (
	// LineBlank is an empty or whitespace-only line.
	LineBlank LineKind = iota
	// LineContinuation is a stray vertical-bar line that carries no entry.
	LineContinuation
	// LineRoot is an unindented line naming a top-level package.
	LineRoot
	// LineEntry is an indented "├── " or "└── " line.
	LineEntry
	// LineSection is an indented bracketed marker such as "[dev-dependencies]".
	LineSection
)

// Line is the result of classifying one line of tree output.
type Line struct {
	Kind    LineKind
	Depth   int    // 0 for roots, indent units + 1 for entries and sections
	Payload string // trimmed text after the branch marker
}

// Skip reports whether the line carries no node.
func (l Line) Skip() bool { return l.Kind == LineBlank || l.Kind == LineContinuation }

// ClassifyLine determines the kind, depth and payload of a raw tree line.
// Trailing newline characters are ignored.
func ClassifyLine(raw string) Line {
	raw = strings.TrimRight(raw, "\r\n")
	if strings.TrimSpace(raw) == "" {
		return Line{Kind: LineBlank}
	}
	if m := treeLineRE.FindStringSubmatch(raw); m != nil {
		return Line{Kind: LineEntry, Depth: depthOf(m[1]), Payload: strings.TrimSpace(m[2])}
	}
	if m := sectionLineRE.FindStringSubmatch(raw); m != nil {
		return Line{Kind: LineSection, Depth: depthOf(m[1]), Payload: strings.TrimSpace(m[2])}
	}
	trimmed := strings.TrimLeft(raw, " \t")
	if strings.HasPrefix(trimmed, "│") || strings.HasPrefix(trimmed, "├") || strings.HasPrefix(trimmed, "└") {
		return Line{Kind: LineContinuation}
	}
	return Line{Kind: LineRoot, Depth: 0, Payload: strings.TrimSpace(raw)}
}

func depthOf(prefix string) int {
	return utf8.RuneCountInString(prefix)/indentWidth + 1
}

// ParseNode converts a line payload into a graph node.
//
// A payload starting with "[" becomes an annotation node labelled with the
// whole payload. Otherwise the first token is the package name and the
// second token, when it starts with "v", is its version; any further tokens
// such as "(*)" or "(proc-macro)" are dropped. It returns false for an empty
// payload.
func ParseNode(payload string) (graph.Node, bool) {
	if strings.HasPrefix(payload, "[") {
		return graph.Node{
			ID:    SanitizeID(payload),
			Label: payload,
			Kind:  graph.NodeKindAnnotation,
		}, true
	}
	tokens := strings.Fields(payload)
	if len(tokens) == 0 {
		return graph.Node{}, false
	}
	label := tokens[0]
	if len(tokens) > 1 && strings.HasPrefix(tokens[1], "v") {
		label += " " + tokens[1]
	}
	return graph.Node{ID: SanitizeID(label), Label: label, Kind: graph.NodeKindDependency}, true
}

// SanitizeID turns a label into an identifier token: every character other
// than ASCII letters, digits and underscore becomes "_", and a leading digit
// gets an "n_" prefix.
func SanitizeID(label string) string {
	id := sanitizeRE.ReplaceAllString(label, "_")
	if id != "" && id[0] >= '0' && id[0] <= '9' {
		id = "n_" + id
	}
	return id
}

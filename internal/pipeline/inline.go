package pipeline

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
)

// Precompiled inline patterns, built once and shared by every parse.
// Each pattern requires at least one inner character, so touching
// delimiters such as "****" or "``" never match.
var (
	linkPattern      = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldPattern      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	underlinePattern = regexp.MustCompile(`_([^_]+)_`)
	codePattern      = regexp.MustCompile("`([^`]+)`")
	strikePattern    = regexp.MustCompile(`~([^~]+)~`)
)

// finder returns the non-overlapping, leftmost-first matches of one style.
type finder func(segment string) []match

// emphasisFinders are evaluated independently over every non-link segment.
// Their order only breaks ties between candidates starting at the same byte.
var emphasisFinders = []finder{
	regexpFinder(Bold, boldPattern),
	findItalic,
	regexpFinder(Underline, underlinePattern),
	regexpFinder(Code, codePattern),
	regexpFinder(Strikethrough, strikePattern),
}

var findLinks = regexpFinder(Link, linkPattern)

// ParseInline parses one paragraph into styled spans.
//
// Links are extracted first and their text is kept verbatim. The text
// around links is scanned for the emphasis styles; overlapping candidates
// are resolved by start position (see resolveConflicts). Unmatched or
// unterminated delimiters stay in the output as plain text.
func ParseInline(text string) []Span {
	var spans []Span
	pos := 0
	for _, link := range findLinks(text) {
		spans = appendSegment(spans, text[pos:link.start])
		spans = append(spans, link.span())
		pos = link.end
	}
	return appendSegment(spans, text[pos:])
}

// appendSegment parses a link-free segment and appends its spans.
func appendSegment(spans []Span, segment string) []Span {
	if segment == "" {
		return spans
	}

	var candidates []match
	for _, find := range emphasisFinders {
		candidates = append(candidates, find(segment)...)
	}

	pos := 0
	for _, m := range resolveConflicts(candidates) {
		if m.start > pos {
			spans = append(spans, Span{Kind: Plain, Content: segment[pos:m.start]})
		}
		spans = append(spans, m.span())
		pos = m.end
	}
	if pos < len(segment) {
		spans = append(spans, Span{Kind: Plain, Content: segment[pos:]})
	}
	return spans
}

// resolveConflicts keeps the earliest-starting candidates and drops every
// candidate that overlaps one already kept. Dropped candidates are removed
// whole, never truncated. Ties keep finder order.
func resolveConflicts(candidates []match) []match {
	slices.SortStableFunc(candidates, func(a, b match) int {
		return cmp.Compare(a.start, b.start)
	})

	accepted := make([]match, 0, len(candidates))
	for _, c := range candidates {
		// Accepted matches are sorted and disjoint, so only the last one
		// can reach past c.start.
		if n := len(accepted); n > 0 && c.overlaps(accepted[n-1]) {
			continue
		}
		accepted = append(accepted, c)
	}
	return accepted
}

// regexpFinder adapts a pattern whose first group is the content and whose
// optional second group is a URL.
func regexpFinder(kind SpanKind, re *regexp.Regexp) finder {
	return func(segment string) []match {
		locs := re.FindAllStringSubmatchIndex(segment, -1)
		if len(locs) == 0 {
			return nil
		}
		matches := make([]match, 0, len(locs))
		for _, loc := range locs {
			m := match{
				start:   loc[0],
				end:     loc[1],
				kind:    kind,
				content: segment[loc[2]:loc[3]],
			}
			if len(loc) >= 6 && loc[4] >= 0 {
				m.url = segment[loc[4]:loc[5]]
			}
			matches = append(matches, m)
		}
		return matches
	}
}

// findItalic matches *text* where neither delimiter touches another '*'.
// RE2 has no lookaround, so the adjacency rule is checked by hand. The scan
// is linear: each failed opening advances by one byte, each match resumes
// after its closing delimiter.
func findItalic(segment string) []match {
	var matches []match
	for i := 0; i < len(segment); i++ {
		if segment[i] != '*' || (i > 0 && segment[i-1] == '*') {
			continue
		}
		rel := strings.IndexByte(segment[i+1:], '*')
		if rel < 1 {
			// No closing '*', or an empty "**" pair.
			continue
		}
		closing := i + 1 + rel
		if closing+1 < len(segment) && segment[closing+1] == '*' {
			continue
		}
		matches = append(matches, match{
			start:   i,
			end:     closing + 1,
			kind:    Italic,
			content: segment[i+1 : closing],
		})
		i = closing
	}
	return matches
}

package dedup

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trackPrefixPattern matches leading track numbers such as "03. " or "12 ".
var trackPrefixPattern = regexp.MustCompile(`^\d+\.?\s*`)

// lower folds case without locale-specific rules so that normalization is
// reproducible across environments.
var lower = cases.Lower(language.Und)

// ParsedTitle is the canonical form of a track filename. Artist and Title
// are lower-cased and trimmed; multi-artist fields are alphabetically sorted
// and comma-joined so "A & B" and "B, A" normalize identically. Version is
// empty unless the filename carried a recognized version annotation.
type ParsedTitle struct {
	Artist  string
	Title   string
	Version string
}

// Normalize parses a raw filename into its canonical triple. It is a total
// function: any string yields a result, degrading to a whole-string
// comparison when the filename has no "Artist - Title" structure.
func Normalize(filename string) ParsedTitle {
	name := filename
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	name = strings.NewReplacer("[", "", "]", "", "_", " ").Replace(name)
	name = strings.TrimSpace(name)
	name = trackPrefixPattern.ReplaceAllString(name, "")

	parts := strings.Split(name, " - ")
	if len(parts) < 2 {
		// No artist/title split; such files only ever match on the full
		// cleaned name.
		whole := lower.String(name)
		return ParsedTitle{Artist: whole, Title: whole}
	}

	artist := normalizeArtist(parts[0])
	title, version := extractVersion(strings.Join(parts[1:], " - "))
	return ParsedTitle{
		Artist:  artist,
		Title:   lower.String(title),
		Version: version,
	}
}

// normalizeArtist canonicalizes an artist field: lower-case, unify
// featuring markers, drop parenthetical suffixes from individual names,
// then sort and rejoin so ordering differences disappear.
func normalizeArtist(artist string) string {
	normalized := lower.String(artist)
	normalized = strings.ReplaceAll(normalized, "feat.", "featuring")
	normalized = strings.ReplaceAll(normalized, "ft.", "featuring")
	normalized = strings.ReplaceAll(normalized, " x ", " featuring ")

	names := strings.Split(normalized, ",")
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if idx := strings.Index(name, "("); idx >= 0 {
			name = name[:idx]
		}
		cleaned = append(cleaned, strings.TrimSpace(name))
	}
	sort.Strings(cleaned)
	return strings.Join(cleaned, ", ")
}

// extractVersion pulls a trailing parenthetical annotation out of the title
// when the classifier recognizes it as a version marker. Unrecognized
// parentheticals stay in the title so "Track (Blue)" never collapses onto
// "Track". Unbalanced parens leave the title untouched.
func extractVersion(text string) (title, version string) {
	start := strings.LastIndex(text, "(")
	end := strings.LastIndex(text, ")")
	if start < 0 || end < 0 || start >= end {
		return strings.TrimSpace(text), ""
	}
	annotation := strings.TrimSpace(text[start+1 : end])
	if !Classify(annotation).HasMarkers() {
		return strings.TrimSpace(text), ""
	}
	return strings.TrimSpace(text[:start]), lower.String(annotation)
}

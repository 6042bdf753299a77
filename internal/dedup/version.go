package dedup

import "strings"

// versionMarkers is the fixed vocabulary used to decide whether a
// parenthetical annotation denotes a meaningful release variant. Matching is
// case-insensitive substring containment; every matching keyword is
// collected, not just the first.
var versionMarkers = []string{
	// Remix and edit types.
	"remix", "mix", "rmx", "rework", "edit", "reconstruction",
	"bootleg", "mashup", "flip", "recut", "reprise",
	// Version types.
	"version", "radio", "club", "special", "extended",
	// Attribution markers.
	"dj", "vs", "presents",
	// Release state.
	"remaster", "master", "remastered",
	// Mix types.
	"dub", "instrumental", "acapella", "acoustic", "live",
	// Length and cut markers.
	"long", "short", "full", "cut", "original",
	// Regional markers.
	"us", "uk", "euro", "italian", "spanish", "dutch",
	// Multi-word combinations.
	"radio edit", "club mix", "dance mix", "extended mix",
}

// yearMarker is the synthetic marker assigned to bare release-year
// annotations like "2017": no keyword matches but the text carries at least
// four digits. Two such annotations are treated as the same version family.
const yearMarker = "year"

// Annotation is the classified form of a raw version string.
type Annotation struct {
	Raw     string
	Markers []string
}

// HasMarkers reports whether the annotation carries any recognized marker.
func (a Annotation) HasMarkers() bool {
	return len(a.Markers) > 0
}

// Classify collects the marker keywords contained in a raw annotation.
// An empty or unrecognized string yields an annotation with no markers.
func Classify(raw string) Annotation {
	if raw == "" {
		return Annotation{}
	}
	lowered := strings.ToLower(raw)
	var found []string
	for _, marker := range versionMarkers {
		if strings.Contains(lowered, marker) {
			found = append(found, marker)
		}
	}
	if len(found) == 0 && digitCount(lowered) >= 4 {
		found = []string{yearMarker}
	}
	return Annotation{Raw: raw, Markers: found}
}

// EquivalentVersions reports whether two version annotations denote the same
// release. Two absent annotations are equivalent. An absent annotation is
// never equivalent to a present one: one side carries a distinguishing tag
// the other lacks, and silently merging them would discard a legitimate
// alternate mix. Two present annotations are equivalent when textually
// identical or when their marker sets intersect.
func EquivalentVersions(a, b string) bool {
	if a == "" && b == "" {
		return true
	}
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	return shareMarkers(Classify(a).Markers, Classify(b).Markers)
}

func shareMarkers(a, b []string) bool {
	for _, m := range a {
		for _, n := range b {
			if m == n {
				return true
			}
		}
	}
	return false
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

package dedup

import (
	"fmt"

	"trackdedup/internal/media"
)

// Match records a confirmed duplicate pair with its quality verdict. The
// winner is always in HigherQuality regardless of argument order.
type Match struct {
	HigherQuality     media.File
	LowerQuality      media.File
	MatchReason       string
	QualityDifference string
}

// Results aggregates a full scan. The order of Matches reflects parallel
// collection and carries no meaning.
type Results struct {
	Matches           []Match
	TotalFilesScanned int
}

// MatchPair evaluates a single unordered pair. It is pure: deterministic for
// a given pair, no shared state, and symmetric in verdict (only the
// argument positions differ when called with swapped operands).
func MatchPair(a, b media.File) (Match, bool) {
	parsedA := Normalize(a.FileName)
	parsedB := Normalize(b.FileName)

	// Exact-match policy on the canonical fields; no fuzzy bridging.
	if parsedA.Artist != parsedB.Artist || parsedA.Title != parsedB.Title {
		return Match{}, false
	}
	if !EquivalentVersions(parsedA.Version, parsedB.Version) {
		return Match{}, false
	}

	aBetter, difference := Compare(a, b)
	higher, lowerFile := a, b
	if !aBetter {
		higher, lowerFile = b, a
	}

	return Match{
		HigherQuality:     higher,
		LowerQuality:      lowerFile,
		MatchReason:       matchReason(parsedA),
		QualityDifference: difference,
	}, true
}

func matchReason(parsed ParsedTitle) string {
	if parsed.Version != "" {
		return fmt.Sprintf("Exact title match: '%s - %s (%s)'", parsed.Artist, parsed.Title, parsed.Version)
	}
	return fmt.Sprintf("Exact title match: '%s - %s'", parsed.Artist, parsed.Title)
}

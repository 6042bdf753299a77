package dedup

import (
	"fmt"
	"strings"

	"trackdedup/internal/media"
)

// losslessExtension wins the bitrate comparison regardless of the numeric
// values: derived bitrates for lossless containers routinely undercut the
// real fidelity of the stream.
const losslessExtension = ".flac"

// Compare decides which of two descriptors already known to reference the
// same work is the better keeper, and explains why. The decision order is a
// total, deterministic tie-break: bitrate (with the lossless-container
// override), then byte size, then the first argument by convention.
func Compare(a, b media.File) (aBetter bool, explanation string) {
	if a.HasBitrate() && b.HasBitrate() && a.BitrateKbps != b.BitrateKbps {
		aLossless := isLossless(a.FileName)
		bLossless := isLossless(b.FileName)
		switch {
		case aLossless && !bLossless:
			aBetter = true
		case !aLossless && bLossless:
			aBetter = false
		default:
			aBetter = a.BitrateKbps > b.BitrateKbps
		}
		return aBetter, fmt.Sprintf("Bitrate difference: %d vs %d kbps", a.BitrateKbps, b.BitrateKbps)
	}

	if a.SizeBytes != b.SizeBytes {
		const mib = 1048576.0
		return a.SizeBytes > b.SizeBytes, fmt.Sprintf(
			"Size difference: %.2f MB vs %.2f MB",
			float64(a.SizeBytes)/mib, float64(b.SizeBytes)/mib)
	}

	return true, "Files are identical in size and bitrate"
}

func isLossless(fileName string) bool {
	return strings.HasSuffix(strings.ToLower(fileName), losslessExtension)
}

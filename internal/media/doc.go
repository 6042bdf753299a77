// Package media discovers audio files on disk and extracts the per-file
// metadata the duplicate engine consumes: size, duration, bitrate, and
// container tags. Extraction is best-effort; a file that cannot be probed
// beyond a basic stat still yields a descriptor with the unknown fields
// left at their zero values.
package media

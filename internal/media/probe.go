package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/mewkiz/flac"
)

// probeDuration determines the playing time of an audio file by decoding
// just enough of the container to read its stream parameters.
func probeDuration(path string) (float64, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3Duration(path)
	case ".wav":
		return wavDuration(path)
	case ".flac":
		return flacDuration(path)
	}
	return 0, fmt.Errorf("unsupported container: %s", filepath.Ext(path))
}

func mp3Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return 0, fmt.Errorf("decode mp3 %s: %w", filepath.Base(path), err)
	}
	sampleRate := decoder.SampleRate()
	if sampleRate <= 0 {
		return 0, fmt.Errorf("mp3 %s: invalid sample rate", filepath.Base(path))
	}
	// Length reports decoded PCM bytes: 16-bit stereo, 4 bytes per frame.
	return float64(decoder.Length()) / 4 / float64(sampleRate), nil
}

func wavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	duration, err := decoder.Duration()
	if err != nil {
		return 0, fmt.Errorf("decode wav %s: %w", filepath.Base(path), err)
	}
	return duration.Seconds(), nil
}

func flacDuration(path string) (float64, error) {
	stream, err := flac.Open(path)
	if err != nil {
		return 0, fmt.Errorf("decode flac %s: %w", filepath.Base(path), err)
	}
	defer stream.Close()

	info := stream.Info
	if info == nil || info.SampleRate == 0 {
		return 0, fmt.Errorf("flac %s: missing stream info", filepath.Base(path))
	}
	return float64(info.NSamples) / float64(info.SampleRate), nil
}

package services

import (
	"math"
	"sort"

	"ytaudio/internal/core/domain"
)

// Ideal bitrate windows per requested class. Resolvers rarely offer an exact
// match, so selection degrades: range match, one-sided match, highest
// available.
const (
	lowClassMin  = 96
	lowClassMax  = 160
	highClassMin = 160
	highClassMax = 256
)

// SelectAudioFormat picks the audio-only format closest to the requested
// bitrate class. The second return is false when no audio-only candidate
// with a known bitrate exists; callers then fall back to a quality-agnostic
// best-audio request. Selection itself never fails and never returns a
// format carrying video.
func SelectAudioFormat(bitrateKbps int, candidates []domain.Format) (domain.Format, bool) {
	audio := make([]domain.Format, 0, len(candidates))
	for _, f := range candidates {
		if f.HasAudio && !f.HasVideo && f.AudioBitrateKbps > 0 {
			audio = append(audio, f)
		}
	}
	if len(audio) == 0 {
		return domain.Format{}, false
	}

	// Stable: resolver order breaks ties between equal bitrates.
	sort.SliceStable(audio, func(i, j int) bool {
		return audio[i].AudioBitrateKbps > audio[j].AudioBitrateKbps
	})

	switch bitrateKbps {
	case 128:
		if f, ok := firstInRange(audio, lowClassMin, lowClassMax); ok {
			return f, true
		}
		if f, ok := firstInRange(audio, 0, 128); ok {
			return f, true
		}
	case 192:
		if f, ok := firstInRange(audio, highClassMin, highClassMax); ok {
			return f, true
		}
		if f, ok := firstInRange(audio, 192, math.MaxInt); ok {
			return f, true
		}
	}

	// Highest available audio-only quality.
	return audio[0], true
}

func firstInRange(sorted []domain.Format, min, max int) (domain.Format, bool) {
	for _, f := range sorted {
		if f.AudioBitrateKbps >= min && f.AudioBitrateKbps <= max {
			return f, true
		}
	}
	return domain.Format{}, false
}

// Package convert holds implementations of the audio conversion stage.
package convert

import (
	"context"
	"time"

	"ytaudio/internal/core/domain"
)

// Progress checkpoints reported by the pass-through stage, in order.
var checkpoints = []int{20, 50, 80, 100}

const defaultCheckpointDelay = 150 * time.Millisecond

// PassThrough is the shipped conversion stage: it does not touch the audio
// bytes. It reports synthetic progress for UI pacing and relabels the
// declared media type. Real re-encoding belongs to a transcode stage such as
// the ffmpeg encoder.
type PassThrough struct {
	// Delay between checkpoints; zero means the default pacing.
	Delay time.Duration
}

func (p *PassThrough) Apply(ctx context.Context, data []byte, req domain.QualityRequest, progress func(int)) ([]byte, string, error) {
	delay := p.Delay
	if delay == 0 {
		delay = defaultCheckpointDelay
	}
	for _, pct := range checkpoints {
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(delay):
		}
		if progress != nil {
			progress(pct)
		}
	}
	return data, "audio/mpeg", nil
}

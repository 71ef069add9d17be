package ports

import (
	"context"
	"io"

	"ytaudio/internal/core/domain"
)

// SourceResolver translates a video URL into metadata and raw audio streams.
type SourceResolver interface {
	// Supports reports whether rawURL is recognized by the platform.
	Supports(rawURL string) bool
	GetVideo(ctx context.Context, rawURL string) (*domain.Video, error)
	// GetStream opens the stream for one specific format of a previously
	// resolved video.
	GetStream(ctx context.Context, videoID string, itag int) (io.ReadCloser, int64, error)
	// GetBestAudioStream is the quality-agnostic fallback used when format
	// selection found no audio-only candidate or metadata resolution failed.
	GetBestAudioStream(ctx context.Context, rawURL string) (io.ReadCloser, int64, error)
}

type DownloaderService interface {
	GetMetadata(ctx context.Context, rawURL string) (*domain.Video, error)
	DownloadAudio(ctx context.Context, req domain.QualityRequest) (*domain.DownloadResult, error)
	Session(id string) (domain.DownloadSession, bool)
}

// ConversionStage post-processes downloaded audio bytes. progress, when non
// nil, receives monotonically increasing percentages up to 100. The returned
// string is the declared media type of the output bytes.
type ConversionStage interface {
	Apply(ctx context.Context, data []byte, req domain.QualityRequest, progress func(percent int)) ([]byte, string, error)
}

package youtube

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kkdai/youtube/v2"

	"ytaudio/internal/core/domain"
	"ytaudio/internal/core/ports"
)

type resolver struct {
	client youtube.Client

	mu sync.Mutex
	// Resolved videos by ID, so opening a stream after a metadata call does
	// not hit the platform twice.
	cache map[string]*youtube.Video
}

func NewResolver() ports.SourceResolver {
	return &resolver{cache: make(map[string]*youtube.Video)}
}

func (r *resolver) Supports(rawURL string) bool {
	_, err := youtube.ExtractVideoID(rawURL)
	return err == nil
}

func (r *resolver) GetVideo(ctx context.Context, rawURL string) (*domain.Video, error) {
	video, err := r.client.GetVideoContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("resolving video: %w", err)
	}
	r.remember(video)

	info := &domain.Video{
		ID:       video.ID,
		Title:    video.Title,
		Author:   video.Author,
		Duration: video.Duration,
		Views:    video.Views,
	}
	for _, t := range video.Thumbnails {
		info.Thumbnails = append(info.Thumbnails, t.URL)
	}
	for _, f := range video.Formats {
		info.Formats = append(info.Formats, mapFormat(f))
	}
	return info, nil
}

func (r *resolver) GetStream(ctx context.Context, videoID string, itag int) (io.ReadCloser, int64, error) {
	video, err := r.resolved(ctx, videoID)
	if err != nil {
		return nil, 0, err
	}
	matches := video.Formats.Itag(itag)
	if len(matches) == 0 {
		return nil, 0, fmt.Errorf("itag %d not offered for video %s", itag, videoID)
	}
	return r.client.GetStreamContext(ctx, video, &matches[0])
}

func (r *resolver) GetBestAudioStream(ctx context.Context, rawURL string) (io.ReadCloser, int64, error) {
	video, err := r.client.GetVideoContext(ctx, rawURL)
	if err != nil {
		return nil, 0, fmt.Errorf("resolving video: %w", err)
	}
	r.remember(video)

	formats := video.Formats.Type("audio")
	if len(formats) == 0 {
		formats = video.Formats.WithAudioChannels()
	}
	if len(formats) == 0 {
		return nil, 0, fmt.Errorf("no audio format available for video %s", video.ID)
	}
	best := formats[0]
	for _, f := range formats[1:] {
		if f.Bitrate > best.Bitrate {
			best = f
		}
	}
	return r.client.GetStreamContext(ctx, video, &best)
}

func (r *resolver) remember(video *youtube.Video) {
	r.mu.Lock()
	r.cache[video.ID] = video
	r.mu.Unlock()
}

func (r *resolver) resolved(ctx context.Context, videoID string) (*youtube.Video, error) {
	r.mu.Lock()
	video, ok := r.cache[videoID]
	r.mu.Unlock()
	if ok {
		return video, nil
	}
	video, err := r.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("resolving video %s: %w", videoID, err)
	}
	r.remember(video)
	return video, nil
}

func mapFormat(f youtube.Format) domain.Format {
	base := f.MimeType
	if i := strings.Index(base, ";"); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	container := ""
	if i := strings.Index(base, "/"); i >= 0 {
		container = base[i+1:]
	}
	kbps := f.AverageBitrate / 1000
	if kbps == 0 {
		kbps = f.Bitrate / 1000
	}
	return domain.Format{
		ItagNo:           f.ItagNo,
		MimeType:         f.MimeType,
		Container:        container,
		QualityLabel:     f.QualityLabel,
		HasAudio:         f.AudioChannels > 0 || strings.HasPrefix(base, "audio/"),
		HasVideo:         strings.HasPrefix(base, "video/"),
		AudioBitrateKbps: kbps,
	}
}

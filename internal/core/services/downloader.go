package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"ytaudio/internal/core/domain"
	"ytaudio/internal/core/ports"
	"ytaudio/pkg/filename"
)

// The declared type always reflects the source container. It only changes
// when a real conversion stage actually re-encoded the bytes.
const (
	sourceContentType = "audio/mp4"
	sourceExtension   = ".m4a"
	mp3Extension      = ".mp3"
)

type downloaderService struct {
	resolver ports.SourceResolver
	stage    ports.ConversionStage // nil: respond with the source bytes as-is
	sessions *sessionStore
}

func NewDownloaderService(resolver ports.SourceResolver, stage ports.ConversionStage) ports.DownloaderService {
	return &downloaderService{
		resolver: resolver,
		stage:    stage,
		sessions: newSessionStore(),
	}
}

func (s *downloaderService) GetMetadata(ctx context.Context, rawURL string) (*domain.Video, error) {
	if rawURL == "" {
		return nil, domain.ErrURLRequired
	}
	if !s.resolver.Supports(rawURL) {
		return nil, domain.ErrUnsupportedURL
	}
	return s.resolver.GetVideo(ctx, rawURL)
}

func (s *downloaderService) validate(req domain.QualityRequest) error {
	if req.URL == "" {
		return domain.ErrURLRequired
	}
	switch req.BitrateKbps {
	case 128, 192:
	default:
		return domain.ErrInvalidBitrate
	}
	switch req.SampleRateHz {
	case 16000, 22050, 44100:
	default:
		return domain.ErrInvalidSampleRate
	}
	if !s.resolver.Supports(req.URL) {
		return domain.ErrUnsupportedURL
	}
	return nil
}

// DownloadAudio runs one request end to end: validate, resolve, select a
// format, buffer the whole stream, optionally re-encode. The entire payload
// is held in memory before responding; there is no size cap.
func (s *downloaderService) DownloadAudio(ctx context.Context, req domain.QualityRequest) (*domain.DownloadResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	session := domain.NewDownloadSession(uuid.New().String())
	s.sessions.Put(session)
	s.sessions.Advance(session.ID, domain.StateFetching)

	title := domain.DefaultTitle
	var (
		stream io.ReadCloser
		err    error
	)

	video, verr := s.resolver.GetVideo(ctx, req.URL)
	if verr != nil {
		// Metadata failure is not fatal: keep the default title and ask the
		// resolver for its best audio stream directly.
		log.Printf("metadata lookup failed for %s: %v", req.URL, verr)
		stream, _, err = s.resolver.GetBestAudioStream(ctx, req.URL)
	} else {
		title = video.Title
		if chosen, ok := SelectAudioFormat(req.BitrateKbps, video.Formats); ok {
			stream, _, err = s.resolver.GetStream(ctx, video.ID, chosen.ItagNo)
		} else {
			stream, _, err = s.resolver.GetBestAudioStream(ctx, req.URL)
		}
	}
	if err != nil {
		s.sessions.Fail(session.ID, err)
		return nil, fmt.Errorf("opening audio stream: %w", err)
	}
	defer stream.Close()

	s.sessions.SetTitle(session.ID, title)

	data, err := io.ReadAll(stream)
	if err != nil {
		s.sessions.Fail(session.ID, err)
		return nil, fmt.Errorf("reading audio stream: %w", err)
	}

	contentType := sourceContentType
	ext := sourceExtension
	if s.stage != nil {
		s.sessions.Advance(session.ID, domain.StateConverting)
		out, stageType, serr := s.stage.Apply(ctx, data, req, nil)
		if serr != nil {
			s.sessions.Fail(session.ID, serr)
			return nil, fmt.Errorf("audio conversion: %w", serr)
		}
		data, contentType, ext = out, stageType, mp3Extension
	}

	s.sessions.Advance(session.ID, domain.StateCompleted)
	log.Printf("download %s completed: %q (%s)", session.ID, title, humanize.Bytes(uint64(len(data))))

	return &domain.DownloadResult{
		Data:         data,
		ContentType:  contentType,
		Filename:     filename.Sanitize(title, req.CompatMode) + ext,
		Title:        title,
		BitrateKbps:  req.BitrateKbps,
		SampleRateHz: req.SampleRateHz,
		CompatMode:   req.CompatMode,
		SessionID:    session.ID,
	}, nil
}

func (s *downloaderService) Session(id string) (domain.DownloadSession, bool) {
	return s.sessions.Get(id)
}

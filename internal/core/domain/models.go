package domain

import "time"

// DefaultTitle replaces the video title when metadata could not be resolved
// or sanitizing left nothing usable.
const DefaultTitle = "youtube_audio"

// Format is one encoding option offered by the resolver for a video.
type Format struct {
	ItagNo           int
	MimeType         string
	Container        string // "mp4", "webm", ...
	QualityLabel     string
	HasAudio         bool
	HasVideo         bool
	AudioBitrateKbps int // 0 means unknown
}

type Video struct {
	ID         string
	Title      string
	Author     string
	Duration   time.Duration
	Views      int
	Thumbnails []string
	Formats    []Format
}

// QualityRequest is the validated user intent for one audio download.
type QualityRequest struct {
	URL          string
	BitrateKbps  int  // 128 or 192
	SampleRateHz int  // 16000, 22050 or 44100
	CompatMode   bool // stricter filenames for legacy playback devices
}

// DownloadResult is the fully buffered response payload for one request.
// It is never cached; it only lives for the request/response exchange.
type DownloadResult struct {
	Data         []byte
	ContentType  string
	Filename     string
	Title        string
	BitrateKbps  int
	SampleRateHz int
	CompatMode   bool
	SessionID    string
}

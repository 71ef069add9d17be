package config

import "time"

type Config struct {
	ListenAddr      string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	// EnableTranscode switches the conversion stage from pass-through to a
	// real ffmpeg re-encode.
	EnableTranscode bool
	FFmpegBinary    string
}

func New() *Config {
	return &Config{
		ListenAddr:      ":8081",
		RequestTimeout:  3 * time.Minute,
		ShutdownTimeout: 10 * time.Second,
		FFmpegBinary:    "ffmpeg",
	}
}

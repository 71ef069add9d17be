package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ytaudio/internal/adapters/ffmpeg"
	"ytaudio/internal/adapters/handlers"
	"ytaudio/internal/adapters/youtube"
	"ytaudio/internal/config"
	"ytaudio/internal/core/ports"
	"ytaudio/internal/core/services"
)

func main() {
	cfg := config.New()
	flag.StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "listen address")
	flag.BoolVar(&cfg.EnableTranscode, "transcode", cfg.EnableTranscode, "re-encode audio with ffmpeg instead of passing the source stream through")
	flag.StringVar(&cfg.FFmpegBinary, "ffmpeg", cfg.FFmpegBinary, "ffmpeg binary used with -transcode")
	flag.Parse()

	// 1. Adapters (Driven)
	resolver := youtube.NewResolver()

	var stage ports.ConversionStage
	if cfg.EnableTranscode {
		stage = ffmpeg.NewEncoder(cfg.FFmpegBinary)
	}

	// 2. Core Service
	dlService := services.NewDownloaderService(resolver, stage)

	// 3. Adapter (Driving)
	httpHandler := handlers.NewHTTPHandler(dlService)

	// 4. Router
	mux := http.NewServeMux()
	mux.HandleFunc("/download-metadata", httpHandler.HandleMetadata)
	mux.HandleFunc("/download-audio", httpHandler.HandleDownload)
	mux.HandleFunc("/session/", httpHandler.HandleSession)
	mux.HandleFunc("/healthz", httpHandler.HandleHealth)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      mux,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s...", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

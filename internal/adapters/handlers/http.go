package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"ytaudio/internal/core/domain"
	"ytaudio/internal/core/ports"
)

// Defaults applied when the download request omits quality fields.
const (
	defaultBitrate      = "128"
	defaultSampleRate   = "22050"
	defaultOldPhoneMode = true
)

type HTTPHandler struct {
	service   ports.DownloaderService
	startedAt time.Time
}

func NewHTTPHandler(s ports.DownloaderService) *HTTPHandler {
	return &HTTPHandler{service: s, startedAt: time.Now()}
}

type metadataRequest struct {
	URL string `json:"url"`
}

type downloadRequest struct {
	URL          string `json:"url"`
	Bitrate      string `json:"bitrate"`
	SampleRate   string `json:"sampleRate"`
	OldPhoneMode *bool  `json:"oldPhoneMode"`
}

type qualityOption struct {
	Quality   string `json:"quality"`
	FormatID  string `json:"formatId"`
	Container string `json:"container"`
}

type metadataResponse struct {
	Status             string          `json:"status"`
	Title              string          `json:"title"`
	Duration           string          `json:"duration"`
	Author             string          `json:"author"`
	ViewCount          string          `json:"viewCount"`
	Thumbnail          string          `json:"thumbnail"`
	AvailableQualities []qualityOption `json:"availableQualities"`
}

// HandleMetadata answers POST /download-metadata.
func (h *HTTPHandler) HandleMetadata(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeStatusError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req metadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatusError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	video, err := h.service.GetMetadata(r.Context(), req.URL)
	if err != nil {
		log.Printf("metadata request failed: %v", err)
		writeStatusError(w, statusFor(err), err.Error())
		return
	}

	resp := metadataResponse{
		Status:    "success",
		Title:     video.Title,
		Duration:  strconv.Itoa(int(video.Duration.Seconds())),
		Author:    video.Author,
		ViewCount: strconv.Itoa(video.Views),
		Thumbnail: bestThumbnail(video.Thumbnails),
	}
	for _, f := range video.Formats {
		if !f.HasAudio || f.HasVideo || f.AudioBitrateKbps == 0 {
			continue
		}
		resp.AvailableQualities = append(resp.AvailableQualities, qualityOption{
			Quality:   fmt.Sprintf("%dkbps", f.AudioBitrateKbps),
			FormatID:  strconv.Itoa(f.ItagNo),
			Container: f.Container,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDownload answers POST /download-audio with the buffered audio bytes
// and the quality echo headers the client reads back.
func (h *HTTPHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q := domain.QualityRequest{URL: req.URL, CompatMode: defaultOldPhoneMode}
	if req.OldPhoneMode != nil {
		q.CompatMode = *req.OldPhoneMode
	}
	bitrate := req.Bitrate
	if bitrate == "" {
		bitrate = defaultBitrate
	}
	sampleRate := req.SampleRate
	if sampleRate == "" {
		sampleRate = defaultSampleRate
	}
	// Non-numeric values parse to zero and fail enum validation downstream.
	q.BitrateKbps, _ = strconv.Atoi(bitrate)
	q.SampleRateHz, _ = strconv.Atoi(sampleRate)

	result, err := h.service.DownloadAudio(r.Context(), q)
	if err != nil {
		log.Printf("download request failed: %v", err)
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", url.PathEscape(result.Filename)))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.Header().Set("X-Video-Title", url.PathEscape(result.Title))
	w.Header().Set("X-Audio-Bitrate", strconv.Itoa(result.BitrateKbps))
	w.Header().Set("X-Sample-Rate", strconv.Itoa(result.SampleRateHz))
	w.Header().Set("X-Old-Phone-Mode", strconv.FormatBool(result.CompatMode))
	w.Header().Set("X-Session-Id", result.SessionID)

	if _, err := w.Write(result.Data); err != nil {
		log.Printf("writing response: %v", err)
	}
}

// HandleSession answers GET /session/{id} for progress polling.
func (h *HTTPHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id := path.Base(r.URL.Path)
	sess, ok := h.service.Session(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":        sess.ID,
		"state":     string(sess.State),
		"title":     sess.Title,
		"error":     sess.Err,
		"createdAt": sess.CreatedAt,
		"updatedAt": sess.UpdatedAt,
	})
}

func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	})
}

func bestThumbnail(thumbnails []string) string {
	// The resolver lists thumbnails smallest first; the last entry is the
	// highest resolution.
	if len(thumbnails) == 0 {
		return ""
	}
	return thumbnails[len(thumbnails)-1]
}

func statusFor(err error) int {
	if domain.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func enableCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Expose-Headers",
		"Content-Disposition, X-Video-Title, X-Audio-Bitrate, X-Sample-Rate, X-Old-Phone-Mode, X-Session-Id")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// writeStatusError is the metadata endpoint's error shape.
func writeStatusError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"status": "error", "message": message})
}

// writeError is the download endpoint's error shape.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"ytaudio/internal/core/domain"
	"ytaudio/internal/core/ports"
)

// Encoder re-encodes audio to MP3 by piping it through an ffmpeg binary. It
// is the optional real implementation of the conversion stage; the default
// server configuration does not re-encode at all.
type Encoder struct {
	binary string
}

func NewEncoder(binary string) ports.ConversionStage {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Encoder{binary: binary}
}

func (e *Encoder) Apply(ctx context.Context, data []byte, req domain.QualityRequest, progress func(int)) ([]byte, string, error) {
	args := []string{
		"-i", "pipe:0",
		"-vn",
		"-ar", strconv.Itoa(req.SampleRateHz),
		"-b:a", fmt.Sprintf("%dk", req.BitrateKbps),
		"-f", "mp3",
	}
	if req.CompatMode {
		// Legacy players choke on VBR headers and stereo at low rates.
		args = append(args, "-ac", "1", "-write_xing", "0")
	} else {
		args = append(args, "-ac", "2")
	}
	args = append(args, "pipe:1")

	if progress != nil {
		progress(20)
	}

	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = bytes.NewReader(data)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, "", fmt.Errorf("ffmpeg encode: %v: %s", err, stderr.String())
	}

	if progress != nil {
		progress(100)
	}
	return out.Bytes(), "audio/mpeg", nil
}

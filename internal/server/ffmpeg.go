package server

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// FFmpeg extracts the audio track of an uploaded video as MP3, shelling out
// to the ffmpeg binary via temp files.
type FFmpeg struct {
	// Bin is the ffmpeg executable; empty means "ffmpeg" on PATH.
	Bin string
	// Bitrate for the audio encode; empty means 128k.
	Bitrate string
}

func (f FFmpeg) Convert(ctx context.Context, input []byte, mediaType string) ([]byte, string, error) {
	if mediaType == "" {
		mediaType = "mp4"
	}
	in, err := os.CreateTemp("", "sealbox-in-*."+mediaType)
	if err != nil {
		return nil, "", err
	}
	defer os.Remove(in.Name())
	if _, err := in.Write(input); err != nil {
		_ = in.Close()
		return nil, "", err
	}
	if err := in.Close(); err != nil {
		return nil, "", err
	}

	out, err := os.CreateTemp("", "sealbox-out-*.mp3")
	if err != nil {
		return nil, "", err
	}
	outPath := out.Name()
	_ = out.Close()
	defer os.Remove(outPath)

	bin := f.Bin
	if bin == "" {
		bin = "ffmpeg"
	}
	bitrate := f.Bitrate
	if bitrate == "" {
		bitrate = "128k"
	}
	// -vn drops the video stream; only the audio is re-encoded.
	cmd := exec.CommandContext(ctx, bin,
		"-y",
		"-i", in.Name(),
		"-vn",
		"-acodec", "mp3",
		"-b:a", bitrate,
		outPath,
	)
	if stderr, err := cmd.CombinedOutput(); err != nil {
		return nil, "", fmt.Errorf("ffmpeg: %w: %s", err, stderr)
	}

	result, err := os.ReadFile(outPath)
	if err != nil {
		return nil, "", err
	}
	return result, "mp3", nil
}

var _ Converter = FFmpeg{}

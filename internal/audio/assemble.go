package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/voxdub/voxdub/internal/errs"
	"github.com/voxdub/voxdub/internal/tts"
)

// Assemble decodes every clip, joins them with inter-clip silence, and
// exports the track as MP3 at the configured bitrate.
func (a *implAssembler) Assemble(ctx context.Context, segments []tts.Segment, outPath string) error {
	joined, bitDepth, err := joinClips(segments)
	if err != nil {
		return err
	}

	wavPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + "_assembled.wav"
	if err := writeWAV(wavPath, joined, bitDepth); err != nil {
		return &errs.ConversionError{Op: "wav encode", Err: err}
	}
	defer os.Remove(wavPath)

	a.logger.Info(ctx, "Exporting %d clip(s) to MP3 at %s", len(segments), a.cfg.Bitrate)

	args := []string{
		"-i", wavPath,
		"-b:a", a.cfg.Bitrate,
		"-y",
		outPath,
	}
	if _, err := a.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return &errs.ConversionError{Op: "mp3 export", Err: err}
	}

	return nil
}

// joinClips concatenates the PCM of all clips in order. Each segment's pause
// becomes silence between it and the next clip; the last segment's pause is
// never rendered, so the track does not end in dead air.
func joinClips(segments []tts.Segment) (*goaudio.IntBuffer, int, error) {
	if len(segments) == 0 {
		return nil, 0, &errs.ConversionError{Op: "assemble", Err: fmt.Errorf("no segments to assemble")}
	}

	var joined *goaudio.IntBuffer
	bitDepth := 16

	for i, seg := range segments {
		buf, depth, err := decodeWAV(seg.Path)
		if err != nil {
			return nil, 0, &errs.ConversionError{Op: "wav decode", Err: fmt.Errorf("clip %d: %w", i, err)}
		}

		if joined == nil {
			joined = &goaudio.IntBuffer{
				Format:         buf.Format,
				SourceBitDepth: buf.SourceBitDepth,
			}
			bitDepth = depth
		} else if buf.Format.SampleRate != joined.Format.SampleRate ||
			buf.Format.NumChannels != joined.Format.NumChannels {
			return nil, 0, &errs.ConversionError{
				Op:  "assemble",
				Err: fmt.Errorf("clip %d format %d Hz/%d ch differs from %d Hz/%d ch", i, buf.Format.SampleRate, buf.Format.NumChannels, joined.Format.SampleRate, joined.Format.NumChannels),
			}
		}

		joined.Data = append(joined.Data, buf.Data...)

		if i < len(segments)-1 {
			joined.Data = append(joined.Data, silence(seg, joined.Format)...)
		}
	}

	return joined, bitDepth, nil
}

// silence renders a segment's pause as zero samples in the track format.
func silence(seg tts.Segment, format *goaudio.Format) []int {
	frames := int(seg.Pause.Seconds() * float64(format.SampleRate))
	return make([]int, frames*format.NumChannels)
}

func decodeWAV(path string) (*goaudio.IntBuffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf.Format == nil || buf.Format.SampleRate == 0 {
		return nil, 0, fmt.Errorf("invalid wav header in %s", path)
	}

	return buf, int(dec.BitDepth), nil
}

func writeWAV(path string, buf *goaudio.IntBuffer, bitDepth int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(out, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		out.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

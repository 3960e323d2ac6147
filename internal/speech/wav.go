package speech

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	wavHeaderSize = 44
	bitsPerSample = 16
	pcmFormatCode = 1
)

// WriteWAV wraps raw 16-bit little-endian PCM samples in a WAV container.
func WriteWAV(w io.Writer, pcm []byte, sampleRate, channels int) error {
	if len(pcm) == 0 {
		return fmt.Errorf("no audio samples")
	}
	if sampleRate <= 0 || channels <= 0 {
		return fmt.Errorf("invalid audio format: rate=%d channels=%d", sampleRate, channels)
	}

	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	var header [wavHeaderSize]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], uint32(wavHeaderSize-8+len(pcm)))
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], pcmFormatCode)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], uint32(len(pcm)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write WAV header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("write WAV samples: %w", err)
	}
	return nil
}

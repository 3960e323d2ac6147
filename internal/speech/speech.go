// Package speech converts text to spoken audio through the gateway's TTS
// model and writes it out as a WAV file.
package speech

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/amink/durus/internal/llm"
)

// Result describes a finished speech synthesis.
type Result struct {
	Path       string
	Duration   time.Duration
	SampleRate int
}

// Service synthesizes speech and encodes it locally.
type Service struct {
	provider llm.SpeechProvider
}

// NewService creates a speech service.
func NewService(provider llm.SpeechProvider) *Service {
	return &Service{provider: provider}
}

// SpeakToFile synthesizes text and writes a WAV file at path. An empty
// voice uses the configured default.
func (s *Service) SpeakToFile(ctx context.Context, text, voice, path string) (*Result, error) {
	audio, err := s.provider.Speak(ctx, llm.SpeechRequest{Text: text, Voice: voice})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create audio file: %w", err)
	}
	defer f.Close()

	if err := WriteWAV(f, audio.PCM, audio.SampleRate, audio.Channels); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close audio file: %w", err)
	}

	return &Result{
		Path:       path,
		Duration:   pcmDuration(len(audio.PCM), audio.SampleRate, audio.Channels),
		SampleRate: audio.SampleRate,
	}, nil
}

// pcmDuration computes playback time of 16-bit PCM data.
func pcmDuration(bytes, sampleRate, channels int) time.Duration {
	if sampleRate <= 0 || channels <= 0 {
		return 0
	}
	samples := bytes / 2 / channels
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}

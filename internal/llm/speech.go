package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini TTS returns 24kHz mono 16-bit PCM.
const (
	SpeechSampleRate = 24000
	SpeechChannels   = 1
)

// SpeechRequest describes a text-to-speech request.
type SpeechRequest struct {
	Text string

	// Voice overrides the configured prebuilt voice when set.
	Voice string
}

// SpeechResult holds raw audio samples returned by the gateway.
type SpeechResult struct {
	PCM        []byte // 16-bit little-endian samples
	SampleRate int
	Channels   int
}

// SpeechProvider converts text to audio samples.
type SpeechProvider interface {
	Speak(ctx context.Context, req SpeechRequest) (*SpeechResult, error)
}

// GeminiSpeech implements SpeechProvider using the Gemini TTS models.
type GeminiSpeech struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGeminiSpeech creates a Gemini-backed speech provider.
func NewGeminiSpeech(ctx context.Context, cfg GeminiConfig) (*GeminiSpeech, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := cfg.SpeechModel
	if model == "" {
		model = "gemini-2.5-flash-preview-tts"
	}
	voice := cfg.Voice
	if voice == "" {
		voice = "Kore"
	}

	return &GeminiSpeech{client: client, model: model, voice: voice}, nil
}

func (p *GeminiSpeech) Speak(ctx context.Context, req SpeechRequest) (*SpeechResult, error) {
	voice := p.voice
	if req.Voice != "" {
		voice = req.Voice
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Text}},
	}}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	pcm := extractGeminiAudio(result)
	if len(pcm) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no audio data in TTS response"),
		}
	}

	return &SpeechResult{
		PCM:        pcm,
		SampleRate: SpeechSampleRate,
		Channels:   SpeechChannels,
	}, nil
}

func extractGeminiAudio(result *genai.GenerateContentResponse) []byte {
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}

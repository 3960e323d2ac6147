package speech

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amink/durus/internal/llm"
)

type fakeSpeech struct {
	result *llm.SpeechResult
	err    error
	last   llm.SpeechRequest
}

func (f *fakeSpeech) Speak(ctx context.Context, req llm.SpeechRequest) (*llm.SpeechResult, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestWriteWAV(t *testing.T) {
	pcm := make([]byte, 48000) // one second of 24kHz mono PCM16
	var buf bytes.Buffer
	if err := WriteWAV(&buf, pcm, 24000, 1); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if len(out) != 44+len(pcm) {
		t.Fatalf("output size = %d, want %d", len(out), 44+len(pcm))
	}
	if string(out[0:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Error("missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != 24000 {
		t.Errorf("sample rate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 48000 {
		t.Errorf("byte rate = %d, want 48000", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d, want %d", got, len(pcm))
	}
}

func TestWriteWAV_Invalid(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, nil, 24000, 1); err == nil {
		t.Error("expected error for empty samples")
	}
	if err := WriteWAV(&buf, []byte{0, 0}, 0, 1); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestSpeakToFile(t *testing.T) {
	pcm := make([]byte, 48000)
	fake := &fakeSpeech{result: &llm.SpeechResult{
		PCM:        pcm,
		SampleRate: llm.SpeechSampleRate,
		Channels:   llm.SpeechChannels,
	}}
	svc := NewService(fake)

	path := filepath.Join(t.TempDir(), "out.wav")
	res, err := svc.SpeakToFile(context.Background(), "hello class", "Puck", path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Duration != time.Second {
		t.Errorf("duration = %v, want 1s", res.Duration)
	}
	if fake.last.Text != "hello class" || fake.last.Voice != "Puck" {
		t.Errorf("request = %+v", fake.last)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 44+len(pcm) {
		t.Errorf("file size = %d, want %d", len(data), 44+len(pcm))
	}
	if string(data[0:4]) != "RIFF" {
		t.Error("file is not a WAV")
	}
}

func TestSpeakToFile_ProviderFailure(t *testing.T) {
	fake := &fakeSpeech{err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}
	svc := NewService(fake)

	path := filepath.Join(t.TempDir(), "out.wav")
	if _, err := svc.SpeakToFile(context.Background(), "hi", "", path); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written on failure")
	}
}

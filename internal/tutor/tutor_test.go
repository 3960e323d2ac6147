package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
)

func TestCapabilities(t *testing.T) {
	tests := []struct {
		mode     Mode
		baseline bool
	}{
		{ModeNormal, true},
		{ModeStudy, true},
		{ModeThinking, false},
		{ModeResearch, false},
		{ModeSearch, false},
	}
	for _, tt := range tests {
		c := tt.mode.Capability()
		if c.Baseline() != tt.baseline {
			t.Errorf("%s baseline = %v, want %v", tt.mode, c.Baseline(), tt.baseline)
		}
		if c.Instruction == "" {
			t.Errorf("%s has no instruction", tt.mode)
		}
	}

	if ModeThinking.Capability().ThinkingBudget != 2048 {
		t.Error("thinking mode should set a 2048 token budget")
	}
	if ModeResearch.Capability().Model != "gemini-pro" {
		t.Error("research mode should ask for the pro model")
	}
	if !ModeSearch.Capability().EnableSearch {
		t.Error("search mode should enable web search")
	}
}

func TestSend_NormalTurn(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Gravity pulls masses together.")})
	s := NewSession(mock, ModeNormal, i18n.English, nil)

	reply, err := s.Send(context.Background(), "What is gravity?", nil)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "Gravity pulls masses together." {
		t.Errorf("reply = %q", reply.Text)
	}
	if reply.Degraded {
		t.Error("normal reply must not be degraded")
	}

	// Both turns land in the history.
	h := s.History()
	if len(h) != 2 || h[0].Role != llm.RoleUser || h[1].Role != llm.RoleAssistant {
		t.Fatalf("history = %+v", h)
	}
}

func TestSend_HistoryCarriedForward(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("first")},
		llm.MockResponse{Content: json.RawMessage("second")},
	)
	s := NewSession(mock, ModeStudy, i18n.English, nil)

	if _, err := s.Send(context.Background(), "q1", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Send(context.Background(), "q2", nil); err != nil {
		t.Fatal(err)
	}

	req := mock.LastCall()
	if len(req.Messages) != 3 {
		t.Fatalf("second turn should carry 3 messages, got %d", len(req.Messages))
	}
	if req.Messages[1].Content != "first" {
		t.Errorf("assistant turn not in history: %+v", req.Messages)
	}
}

func TestSend_DegradesToBaseline(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrBadRequest{Status: 403, Err: errors.New("tool denied")}},
		llm.MockResponse{Content: json.RawMessage("plain answer")},
	)
	s := NewSession(mock, ModeSearch, i18n.Arabic, nil)

	reply, err := s.Send(context.Background(), "latest news about Mars", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reply.Degraded {
		t.Fatal("expected degraded reply")
	}
	if !strings.Contains(reply.Text, "plain answer") {
		t.Errorf("reply = %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "ملاحظة") {
		t.Errorf("reply should carry the Arabic reduced-functionality notice: %q", reply.Text)
	}

	// Second attempt must drop the advanced capability.
	req := mock.LastCall()
	if req.EnableSearch || req.Model != "" || req.ThinkingBudget != 0 {
		t.Errorf("fallback request still asks for advanced capability: %+v", req)
	}

	// The notice stays out of the model-facing history.
	h := s.History()
	if strings.Contains(h[1].Content, "ملاحظة") {
		t.Error("history should store the raw reply without the notice")
	}
}

func TestSend_BaselineFailureNotDegraded(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewSession(mock, ModeNormal, i18n.English, nil)

	if _, err := s.Send(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("baseline mode must not retry as itself, calls = %d", mock.CallCount())
	}
	if len(s.History()) != 0 {
		t.Error("failed turn must not enter the history")
	}
}

func TestSend_DoubleFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	s := NewSession(mock, ModeThinking, i18n.English, nil)

	if _, err := s.Send(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected error when baseline also fails")
	}
	if len(s.History()) != 0 {
		t.Error("failed turn must not enter the history")
	}
}

func TestSend_InvalidResponseNotDegraded(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("garbage")}},
	)
	s := NewSession(mock, ModeSearch, i18n.English, nil)

	if _, err := s.Send(context.Background(), "hi", nil); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("invalid response should not trigger degradation, calls = %d", mock.CallCount())
	}
}

func TestSend_AttachmentForwarded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("it is a triangle")})
	s := NewSession(mock, ModeNormal, i18n.English, nil)

	att := &llm.Attachment{MIMEType: "image/jpeg", Data: []byte{0xff}, Name: "shape.jpg"}
	if _, err := s.Send(context.Background(), "what shape is this?", att); err != nil {
		t.Fatal(err)
	}

	req := mock.LastCall()
	last := req.Messages[len(req.Messages)-1]
	if len(last.Attachments) != 1 || last.Attachments[0].MIMEType != "image/jpeg" {
		t.Errorf("attachment not forwarded: %+v", last.Attachments)
	}
}

func TestSend_EmptyMessage(t *testing.T) {
	s := NewSession(llm.NewMockProvider(), ModeNormal, i18n.English, nil)
	if _, err := s.Send(context.Background(), "   ", nil); err == nil {
		t.Fatal("expected error for empty message")
	}
}

func TestNewSession_UnknownModeFallsBack(t *testing.T) {
	s := NewSession(llm.NewMockProvider(), Mode("turbo"), i18n.English, nil)
	if s.Mode() != ModeNormal {
		t.Errorf("mode = %s, want normal", s.Mode())
	}
}

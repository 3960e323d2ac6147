package search

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
)

func TestQuery_Grounded(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The Nile is the longest river in Africa."),
		Sources: []llm.Source{{Title: "Encyclopedia", URL: "https://example.org/nile"}},
	})
	svc := NewService(mock, nil)

	res, err := svc.Query(context.Background(), "longest river in Africa", i18n.English)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Grounded {
		t.Error("expected grounded result")
	}
	if len(res.Sources) != 1 || res.Sources[0].URL != "https://example.org/nile" {
		t.Errorf("sources = %v", res.Sources)
	}

	req := mock.LastCall()
	if !req.EnableSearch {
		t.Error("first attempt should enable search")
	}
}

func TestQuery_FallsBackToPlain(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrBadRequest{Status: 403, Err: errors.New("grounding denied")}},
		llm.MockResponse{Content: json.RawMessage("A plain answer.")},
	)
	svc := NewService(mock, nil)

	res, err := svc.Query(context.Background(), "q", i18n.Arabic)
	if err != nil {
		t.Fatal(err)
	}
	if res.Grounded {
		t.Error("fallback result must not claim grounding")
	}
	if res.Text != "A plain answer." {
		t.Errorf("text = %q", res.Text)
	}
	if len(res.Sources) != 0 {
		t.Errorf("fallback should have no sources: %v", res.Sources)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}

	req := mock.LastCall()
	if req.EnableSearch {
		t.Error("fallback attempt must not enable search")
	}
}

func TestQuery_BothAttemptsFail(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, nil)

	if _, err := svc.Query(context.Background(), "q", i18n.English); err == nil {
		t.Fatal("expected error when both attempts fail")
	}
}

func TestQuery_EmptyQuery(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil)
	if _, err := svc.Query(context.Background(), "  ", i18n.English); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestQuery_ContextCancelledNoFallback(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider(llm.MockResponse{Err: ctx.Err()})
	svc := NewService(mock, nil)

	if _, err := svc.Query(ctx, "q", i18n.English); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("cancelled context should not trigger the fallback, calls = %d", mock.CallCount())
	}
}

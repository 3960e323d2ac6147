// Package tutor implements the multi-turn chat tutor. Each chat mode is a
// capability the gateway may or may not be able to serve; when an advanced
// capability fails permanently the session degrades to the baseline and
// tells the learner so.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
)

// Mode is a tutoring style the learner selects.
type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeThinking Mode = "thinking"
	ModeResearch Mode = "research"
	ModeSearch   Mode = "search"
	ModeStudy    Mode = "study"
)

// Modes lists the selectable modes in display order.
var Modes = []Mode{ModeNormal, ModeThinking, ModeResearch, ModeSearch, ModeStudy}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeNormal, ModeThinking, ModeResearch, ModeSearch, ModeStudy:
		return true
	}
	return false
}

// Capability is what a mode asks of the gateway beyond the baseline chat.
type Capability struct {
	Model          string // model alias override, "" for the default
	EnableSearch   bool
	ThinkingBudget int
	Instruction    string // appended to the system prompt
}

// Baseline reports whether the capability asks for nothing beyond plain
// generation on the default model.
func (c Capability) Baseline() bool {
	return c.Model == "" && !c.EnableSearch && c.ThinkingBudget == 0
}

// Capability returns what the mode requires from the gateway.
func (m Mode) Capability() Capability {
	switch m {
	case ModeThinking:
		return Capability{
			ThinkingBudget: 2048,
			Instruction:    "MODE: DEEP THINKING. Think step-by-step. Provide a very thorough, reasoned answer. Explain your logic clearly.",
		}
	case ModeResearch:
		return Capability{
			Model:       "gemini-pro",
			Instruction: "MODE: DEEP RESEARCH. Provide a detailed, report-style response. Include structure, headings, and comprehensive details.",
		}
	case ModeSearch:
		return Capability{
			EnableSearch: true,
			Instruction:  "MODE: WEB SEARCH. Use the web search tool to find the latest real-time information.",
		}
	case ModeStudy:
		return Capability{
			Instruction: "MODE: STUDY & LEARN. Act as a Socratic tutor. Explain concepts clearly, give examples, and verify understanding. Break down complex topics into digestible parts.",
		}
	default:
		return Capability{
			Instruction: "Be encouraging, clear, and concise.",
		}
	}
}

// reducedNotice is appended to a reply served by the degraded baseline.
var reducedNotice = i18n.Text{
	i18n.Arabic:  "(ملاحظة: الميزات المتقدمة غير متوفرة حالياً، تم استخدام النموذج القياسي.)",
	i18n.English: "(Note: Advanced features were unavailable. Falling back to standard AI.)",
	i18n.French:  "(Remarque : les fonctionnalités avancées étaient indisponibles. Passage au modèle standard.)",
	i18n.Spanish: "(Nota: las funciones avanzadas no estaban disponibles. Se utilizó el modelo estándar.)",
}

// Reply is one assistant turn.
type Reply struct {
	Text    string
	Sources []llm.Source

	// Degraded reports that the mode's capability failed and the baseline
	// served this reply instead.
	Degraded bool
}

// Session is a multi-turn conversation with the tutor.
type Session struct {
	provider llm.Provider
	mode     Mode
	lang     i18n.Language
	log      *zap.Logger

	messages []llm.Message
}

// NewSession starts a tutoring session in the given mode and language.
func NewSession(provider llm.Provider, mode Mode, lang i18n.Language, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if !mode.Valid() {
		mode = ModeNormal
	}
	return &Session{provider: provider, mode: mode, lang: lang, log: log}
}

// Mode returns the session's mode.
func (s *Session) Mode() Mode { return s.mode }

// History returns the conversation so far.
func (s *Session) History() []llm.Message {
	return append([]llm.Message(nil), s.messages...)
}

// Send delivers one learner message and returns the tutor's reply. On a
// failure of the mode's advanced capability the session retries once with
// the baseline capability and marks the reply degraded; failed turns are
// not added to the history.
func (s *Session) Send(ctx context.Context, text string, attachment *llm.Attachment) (*Reply, error) {
	if strings.TrimSpace(text) == "" && attachment == nil {
		return nil, fmt.Errorf("message is empty")
	}

	ctx = llm.WithPurpose(ctx, "tutor")

	userMsg := llm.Message{Role: llm.RoleUser, Content: text}
	if attachment != nil {
		userMsg.Attachments = []llm.Attachment{*attachment}
	}

	capability := s.mode.Capability()
	resp, err := s.generate(ctx, userMsg, capability)
	if err == nil {
		reply := &Reply{Text: resp.Text(), Sources: resp.Sources}
		s.commit(userMsg, reply.Text)
		return reply, nil
	}

	if capability.Baseline() || !degradable(err) || ctx.Err() != nil {
		return nil, fmt.Errorf("tutor reply failed: %w", err)
	}

	s.log.Warn("tutor capability unavailable, degrading to baseline",
		zap.String("mode", string(s.mode)), zap.Error(err))

	resp, err = s.generate(ctx, userMsg, ModeNormal.Capability())
	if err != nil {
		return nil, fmt.Errorf("tutor reply failed: %w", err)
	}

	reply := &Reply{
		Text:     resp.Text() + "\n\n" + reducedNotice.In(s.lang),
		Degraded: true,
	}
	s.commit(userMsg, resp.Text())
	return reply, nil
}

func (s *Session) generate(ctx context.Context, userMsg llm.Message, c Capability) (*llm.Response, error) {
	return s.provider.Generate(ctx, llm.Request{
		System:         s.systemPrompt(c),
		Messages:       append(s.History(), userMsg),
		Model:          c.Model,
		EnableSearch:   c.EnableSearch,
		ThinkingBudget: c.ThinkingBudget,
		MaxTokens:      4096,
	})
}

func (s *Session) commit(userMsg llm.Message, replyText string) {
	s.messages = append(s.messages, userMsg,
		llm.Message{Role: llm.RoleAssistant, Content: replyText})
}

func (s *Session) systemPrompt(c Capability) string {
	var b strings.Builder
	b.WriteString("You are an intelligent educational tutor for students.\n")
	fmt.Fprintf(&b, "Current Language: %s.\n", s.lang)
	b.WriteString(c.Instruction)
	return b.String()
}

// degradable reports whether the error means the advanced capability is
// unavailable, as opposed to the whole gateway being unreachable in a way
// the baseline would share.
func degradable(err error) bool {
	var bad *llm.ErrBadRequest
	var unavailable *llm.ErrProviderUnavailable
	var rate *llm.ErrRateLimit
	return errors.As(err, &bad) || errors.As(err, &unavailable) || errors.As(err, &rate)
}

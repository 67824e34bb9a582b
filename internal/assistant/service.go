// Package assistant wraps the OpenAI chat API behind a small coaching
// assistant that answers questions about the user's profile and recommended
// routine.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/okoskine/routina/internal/errors"
	"github.com/okoskine/routina/internal/recommend"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrNotConfigured is returned when no OpenAI API key was provided.
var ErrNotConfigured = errors.NewSentinel("assistant not configured")

// Request is a single turn of the coaching conversation. Profile and Routine
// are optional context that gets woven into the system prompt.
type Request struct {
	History History                      `json:"history"`
	Message string                       `json:"message"`
	Profile *recommend.ClassifiedProfile `json:"profile,omitempty"`
	Routine *recommend.Routine           `json:"routine,omitempty"`
}

// Service generates coaching replies. The zero value is not usable; construct
// it with NewService.
type Service struct {
	client     openai.Client
	configured bool
	logger     *slog.Logger
}

// NewService creates a new assistant service. An empty API key yields a
// service whose Reply always fails with ErrNotConfigured, which lets the rest
// of the app run without OpenAI credentials.
func NewService(apiKey string, logger *slog.Logger) *Service {
	if apiKey == "" {
		return &Service{configured: false, logger: logger}
	}
	return &Service{
		client:     openai.NewClient(option.WithAPIKey(apiKey)),
		configured: true,
		logger:     logger,
	}
}

// Reply sends the conversation to the model and returns its answer together
// with the updated history.
func (s *Service) Reply(ctx context.Context, req Request) (string, History, error) {
	if !s.configured {
		return "", req.History, ErrNotConfigured
	}
	if strings.TrimSpace(req.Message) == "" {
		return "", req.History, errors.New("empty message")
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt(req.Profile, req.Routine)),
	}
	for _, m := range req.History.entries {
		switch m.Role {
		case RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(req.Message))

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModelGPT4o,
		Messages: messages,
	})
	if err != nil {
		return "", req.History, errors.Wrap(err, "chat completion")
	}
	if len(completion.Choices) == 0 {
		return "", req.History, errors.New("chat completion returned no choices")
	}
	answer := completion.Choices[0].Message.Content

	s.logger.LogAttrs(ctx, slog.LevelDebug, "assistant reply generated",
		slog.Int64("total_tokens", completion.Usage.TotalTokens),
		slog.Int("history_len", req.History.Len()))

	history := req.History
	history.Append(RoleUser, req.Message)
	history.Append(RoleAssistant, answer)
	return answer, history, nil
}

// systemPrompt weaves the user's classified profile and recommended routine
// into the coaching instructions so the model answers in context.
func systemPrompt(p *recommend.ClassifiedProfile, r *recommend.Routine) string {
	var b strings.Builder
	b.WriteString("You are the coaching assistant for Routina, a fitness routine recommendation app. " +
		"Answer questions about training, recovery and nutrition in a supportive, practical tone. " +
		"Keep answers short and concrete. You are not a medical professional: for injuries or " +
		"medical conditions, advise consulting a doctor.")

	if p != nil {
		fmt.Fprintf(&b, "\n\nUser profile: age %d, BMI %.1f (%s), inferred level %s, recommended goal %s, safe intensity %s, %d training days per week available.",
			p.Age, p.BMI, p.BMIClass, p.InferredLevel, p.RecommendedGoal, p.SafeIntensity, p.AvailableDays)
	}
	if r != nil {
		fmt.Fprintf(&b, "\n\nRecommended routine: %q (%s level, %s goal, %s intensity, %d days/week, %d minutes per session). Exercises: %s.",
			r.Name, r.Level, r.Goal, r.Intensity, r.DaysPerWeek, r.DurationMinutes, strings.Join(r.Exercises, ", "))
	}
	return b.String()
}

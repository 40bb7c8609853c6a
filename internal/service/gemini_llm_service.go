package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/mockprep/config"
	"github.com/lshigami/mockprep/internal/scoring"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrExplainerUnavailable = errors.New("explanation service is not configured")

// ExplanationService writes a short tutor-style explanation for a reviewed
// question the student got wrong or skipped.
type ExplanationService interface {
	Explain(ctx context.Context, item scoring.ReviewItem) (string, error)
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiExplanationService struct {
	model contentGenerator
}

func NewExplanationService(cfg *config.Config) (ExplanationService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Answer explanations will be unavailable.")
		return &geminiExplanationService{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(0.2)
	return &geminiExplanationService{model: model}, nil
}

func (s *geminiExplanationService) Explain(ctx context.Context, item scoring.ReviewItem) (string, error) {
	if s.model == nil {
		return "", ErrExplainerUnavailable
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(explanationPrompt(item)))
	if err != nil {
		log.Error().Err(err).Int("questionIndex", item.Index).Msg("Gemini API error while explaining answer")
		return "", fmt.Errorf("gemini api: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}
	if raw.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return parseExplanation(raw.String()), nil
}

func explanationPrompt(item scoring.ReviewItem) string {
	var b strings.Builder
	b.WriteString("You are a patient tutor reviewing a student's mock test.\n")
	b.WriteString("Explain in at most three sentences why the correct answer is right")
	if item.Outcome == scoring.OutcomeIncorrect {
		b.WriteString(" and why the student's answer is wrong")
	}
	b.WriteString(".\n\n")

	fmt.Fprintf(&b, "Question:\n---\n%s\n---\n", item.Question)
	if len(item.Options) > 0 {
		b.WriteString("Options:\n")
		for _, o := range item.Options {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}
	fmt.Fprintf(&b, "Correct answer: %s\n", item.CorrectAnswer)
	if item.Outcome == scoring.OutcomeIncorrect {
		fmt.Fprintf(&b, "Student's answer: %s\n", item.UserAnswer)
	} else {
		b.WriteString("The student did not answer.\n")
	}
	b.WriteString("\nFormat your response strictly as:\nExplanation: [your explanation]\n")
	return b.String()
}

// parseExplanation strips the "Explanation:" label when the model used it.
func parseExplanation(raw string) string {
	const prefix = "Explanation:"
	if i := strings.Index(raw, prefix); i != -1 {
		return strings.TrimSpace(raw[i+len(prefix):])
	}
	return strings.TrimSpace(raw)
}

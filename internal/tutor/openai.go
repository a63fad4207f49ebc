package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/model"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAITutor asks the chat completions API for feedback. Any API failure is
// logged and answered by the fallback generator instead.
type OpenAITutor struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	httpClient  *http.Client
	fallback    FeedbackGenerator
	logger      *slog.Logger
}

func NewOpenAITutor(cfg config.TutorConfig, fallback FeedbackGenerator, logger *slog.Logger) *OpenAITutor {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultOpenAIBaseURL
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = config.DefaultOpenAIModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAITutor{
		apiKey:      cfg.APIKey,
		apiURL:      strings.TrimRight(baseURL, "/") + "/chat/completions",
		model:       modelName,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: timeout},
		fallback:    fallback,
		logger:      logger.With("component", "OpenAITutor"),
	}
}

func systemPrompt(level model.Level, mode string) string {
	focus := "Respond naturally in English first, then give feedback."
	if mode == ModeCorrection {
		focus = "Focus on correcting the text; keep the reply short."
	}
	return fmt.Sprintf(`You are an English tutor for Brazilian Portuguese speakers learning English.

User Level: %s (CEFR)
%s
Provide up to %d corrections with brief explanations in Portuguese and one quick exercise based on the user's input.
Be encouraging and adapt vocabulary and complexity to the user's CEFR level.

Answer only with JSON:
{
  "reply": "Natural English response",
  "corrections": [
    {"original": "user's text", "corrected": "corrected version", "explanation": "Brief explanation in Portuguese", "rule": "Grammar rule name"}
  ],
  "mini_exercise": {"type": "multiple_choice", "question": "Question text", "options": ["a", "b", "c", "d"], "correct": 0, "explanation": "Why this answer is correct"}
}`, level, focus, MaxCorrections)
}

func (t *OpenAITutor) GenerateFeedback(ctx context.Context, text string, level model.Level, mode string) (*Feedback, error) {
	content, err := t.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt(level, mode)},
		{Role: "user", Content: text},
	})
	if err != nil {
		t.logger.Warn("OpenAI request failed, using fallback feedback", slog.Any("error", err))
		return t.fallback.GenerateFeedback(ctx, text, level, mode)
	}
	return parseFeedback(content), nil
}

func (t *OpenAITutor) complete(ctx context.Context, messages []chatMessage) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       t.model,
		Messages:    messages,
		Temperature: t.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

// parseFeedback decodes the model's JSON answer. Anything that is not a JSON
// object with a reply becomes a plain reply without corrections.
func parseFeedback(content string) *Feedback {
	raw := strings.TrimSpace(content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var fb Feedback
	if err := json.Unmarshal([]byte(raw), &fb); err != nil || fb.Reply == "" {
		return &Feedback{Reply: content, Corrections: []Correction{}}
	}
	fb.normalize()
	return &fb
}

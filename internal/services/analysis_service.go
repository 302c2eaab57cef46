package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"schemaviz/internal/config"
	"schemaviz/internal/models"
)

// analysisCharBudget caps how much schema text is sent per request. Input
// beyond the budget is truncated before transmission, never rejected.
const analysisCharBudget = 12000

const analysisSystemPrompt = `You are a database schema expert. Analyze the schema definition ` +
	`provided by the user and respond ONLY with a JSON object of the shape ` +
	`{"summary": string, "issues": [string], "suggestions": [string]}. ` +
	`The summary describes the overall design in two or three sentences, issues lists ` +
	`concrete problems (missing indexes, unclear naming, absent constraints), and ` +
	`suggestions lists actionable improvements. Do not wrap the JSON in markdown fences.`

type AnalysisService struct {
	client *openai.Client
	model  string
}

func NewAnalysisService(cfg *config.AnalysisConfig) *AnalysisService {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &AnalysisService{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Analyze sends the raw schema text to the analysis collaborator and returns
// its structured report. Transport, auth, and quota failures come back as
// errors for the caller to surface as a retryable state; a malformed
// response body is not an error and degrades to empty report fields.
func (s *AnalysisService) Analyze(ctx context.Context, rawContent string) (*models.AnalysisReport, error) {
	prompt := rawContent
	if len(prompt) > analysisCharBudget {
		prompt = prompt[:analysisCharBudget]
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.1,
		MaxTokens:   1024,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("analysis returned no choices")
	}

	return parseAnalysisReport(resp.Choices[0].Message.Content), nil
}

// parseAnalysisReport decodes the collaborator's reply field by field. A
// missing or mistyped field defaults to its empty value; even a completely
// unparseable body yields an empty report rather than an error.
func parseAnalysisReport(content string) *models.AnalysisReport {
	report := &models.AnalysisReport{
		Issues:      []string{},
		Suggestions: []string{},
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripJSONFences(content)), &raw); err != nil {
		return report
	}

	if v, ok := raw["summary"]; ok {
		_ = json.Unmarshal(v, &report.Summary)
	}
	if v, ok := raw["issues"]; ok {
		var issues []string
		if json.Unmarshal(v, &issues) == nil && issues != nil {
			report.Issues = issues
		}
	}
	if v, ok := raw["suggestions"]; ok {
		var suggestions []string
		if json.Unmarshal(v, &suggestions) == nil && suggestions != nil {
			report.Suggestions = suggestions
		}
	}

	return report
}

// stripJSONFences unwraps a markdown-fenced body, which some models emit
// despite instructions.
func stripJSONFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

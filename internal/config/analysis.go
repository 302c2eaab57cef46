package config

import (
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// AnalysisConfig holds settings for the external text-analysis collaborator.
type AnalysisConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func Analysis() (*AnalysisConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	model := os.Getenv("ANALYSIS_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &AnalysisConfig{
		APIKey:  apiKey,
		BaseURL: os.Getenv("ANALYSIS_BASE_URL"),
		Model:   model,
	}, nil
}

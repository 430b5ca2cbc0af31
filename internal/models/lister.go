package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister queries the completion provider's OpenAI-compatible models API.
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a model lister for the given provider base URL
// (e.g. https://api.together.xyz/v1).
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
		out:    os.Stdout,
	}
}

// BaseURLFromEndpoint derives the provider's API base URL from the
// completion endpoint URL, e.g.
// https://api.together.xyz/completions -> https://api.together.xyz/v1.
func BaseURLFromEndpoint(endpoint string) string {
	base := strings.TrimSuffix(endpoint, "/completions")
	base = strings.TrimSuffix(base, "/v1")
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return ""
	}
	return base + "/v1"
}

// ListAvailableModels prints the models the API key has access to,
// language models first.
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("API key not found. Set TOGETHER_API_KEY environment variable or configure in .uccharana.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	languageModels := []string{}
	otherModels := []string{}

	for _, model := range models.Models {
		if isLanguageModel(model.ID) {
			languageModels = append(languageModels, model.ID)
		} else {
			otherModels = append(otherModels, model.ID)
		}
	}

	sort.Strings(languageModels)
	sort.Strings(otherModels)

	fmt.Fprintln(l.out, "Available models:")
	fmt.Fprintln(l.out, "\nLanguage models (usable for pronunciation prompts):")
	if len(languageModels) == 0 {
		fmt.Fprintln(l.out, "  No language models found")
	}
	for _, model := range languageModels {
		fmt.Fprintf(l.out, "  %s\n", model)
	}

	if len(otherModels) > 0 {
		fmt.Fprintln(l.out, "\nOther models:")
		for _, model := range otherModels {
			fmt.Fprintf(l.out, "  %s\n", model)
		}
	}

	return nil
}

func isLanguageModel(id string) bool {
	lowered := strings.ToLower(id)
	for _, marker := range []string{"llama", "gpt", "chat", "instruct", "mistral", "mixtral", "qwen"} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// Package diagnosis - Direct Gemini reconciliation agent
package diagnosis

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ReconAgent is a purpose-built Gemini client for reconciliation diagnoses,
// holding its own connection instead of going through the generic provider
// registry. Useful when the caller wants one long-lived client across many
// vendors in a batch run.
type ReconAgent struct {
	modelName string
	client    *genai.Client
}

// NewReconAgent connects to Gemini using GEMINI_API_KEY.
func NewReconAgent(ctx context.Context) (*ReconAgent, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	return &ReconAgent{
		modelName: "gemini-2.0-flash",
		client:    client,
	}, nil
}

// Close releases the underlying client.
func (a *ReconAgent) Close() error {
	return a.client.Close()
}

// GenerateResponse satisfies llm.Provider so the agent can be injected into
// the diagnosis Engine directly.
func (a *ReconAgent) GenerateResponse(ctx context.Context, prompt string, sysPrompt string, options map[string]interface{}) (string, error) {
	model := a.client.GenerativeModel(a.modelName)
	model.SetTemperature(0.1)
	if val, ok := options["response_format"].(string); ok && val == "json" {
		model.ResponseMIMEType = "application/json"
	}

	fullPrompt := fmt.Sprintf("%s\n\nTask: %s", sysPrompt, prompt)

	resp, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	return sb.String(), nil
}

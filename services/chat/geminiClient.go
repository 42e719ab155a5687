// File: services/chat/geminiClient.go
package chat

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const conciergePrompt = "Tu es le concierge d'Azura, service de conciergerie de luxe à Marbella. " +
	"Réponds en une ou deux phrases chaleureuses et professionnelles, dans la langue du client."

// GeminiClient phrases the conversational replies around the deterministic
// engine results. The booking engine never depends on it.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiClient{model: model}
}

func (g *GeminiClient) GenerateReply(ctx context.Context, userMessage string) (string, error) {
	prompt := conciergePrompt + "\n\nMessage du client : " + userMessage
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return replyText(resp)
}

// replyText flattens the first candidate's text parts. A safety-blocked
// prompt yields zero candidates; that is an error, not a panic.
func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiCompleter implements Completer with Google's Gemini models. The system
// message becomes the model's system instruction, every other message except
// the last becomes chat history.
type GeminiCompleter struct {
	client *genai.Client
}

func NewGeminiCompleter(ctx context.Context, apiKey string) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCompleter{client: client}, nil
}

func (g *GeminiCompleter) Provider() string {
	return "gemini"
}

func (g *GeminiCompleter) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	system, history, last, err := splitForGemini(messages)
	if err != nil {
		return "", err
	}

	m := g.client.GenerativeModel(model)
	m.SetCandidateCount(1)
	if system != "" {
		m.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	cs := m.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", geminiError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}

func splitForGemini(messages []Message) (string, []*genai.Content, string, error) {
	if len(messages) == 0 || messages[len(messages)-1].Role != RoleUser {
		return "", nil, "", fmt.Errorf("gemini: conversation must end with a user message")
	}

	var system []string
	history := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages[:len(messages)-1] {
		if msg.Role == RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		history = append(history, &genai.Content{
			Role:  "user",
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	return strings.Join(system, "\n"), history, messages[len(messages)-1].Content, nil
}

// geminiError marks quota failures with ErrRateLimited.
func geminiError(err error) error {
	if isGeminiRateLimit(err) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return fmt.Errorf("gemini: %w", err)
}

func isGeminiRateLimit(err error) bool {
	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.HTTPCode() == http.StatusTooManyRequests {
		return true
	}
	if st := apiErr.GRPCStatus(); st != nil && st.Code() == codes.ResourceExhausted {
		return true
	}
	return false
}

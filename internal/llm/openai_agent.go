package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultSystemPrompt = "You are Jarvis, a helpful personal assistant. " +
	"Answer the user's request directly and concisely. Responses may be spoken " +
	"aloud, so prefer short natural sentences over lists and markup."

// OpenAIConfig holds settings for the OpenAI-backed fallback agent
type OpenAIConfig struct {
	APIKey            string  `json:"api_key"`
	Model             string  `json:"model"`
	MaxTokens         int     `json:"max_tokens"`
	Temperature       float32 `json:"temperature"`
	SystemPrompt      string  `json:"system_prompt,omitempty"`
	RequestsPerMinute int     `json:"requests_per_minute"`
}

// OpenAIAgent implements Agent on top of the OpenAI chat completion API.
// Requests are rate limited client-side so a burst of fallbacks cannot blow
// through the provider's quota.
type OpenAIAgent struct {
	client  *openai.Client
	config  OpenAIConfig
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewOpenAIAgent creates the fallback agent
func NewOpenAIAgent(config OpenAIConfig, logger *zap.Logger) (*OpenAIAgent, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not provided")
	}

	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 2048
	}
	if config.Temperature == 0 {
		config.Temperature = 0.1
	}
	if config.SystemPrompt == "" {
		config.SystemPrompt = defaultSystemPrompt
	}
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = 60
	}

	return &OpenAIAgent{
		client:  openai.NewClient(apiKey),
		config:  config,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)), config.RequestsPerMinute),
		logger:  logger,
	}, nil
}

// Invoke sends the query to the model and returns the completion text
func (a *OpenAIAgent) Invoke(ctx context.Context, query string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait failed: %w", err)
	}

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.config.Model,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: a.config.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	a.logger.Debug("Fallback agent completed",
		zap.String("model", a.config.Model),
		zap.Duration("latency", time.Since(start)),
		zap.Int("total_tokens", resp.Usage.TotalTokens))

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

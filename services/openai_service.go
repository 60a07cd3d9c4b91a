package services

import (
	"DateMate/config/environment"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// TextGenerator is the boundary to the text-generation API. Both the query
// interpreter and the explanation generator talk to it; tests substitute fakes.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, timeout time.Duration) (string, error)
}

// OpenAIService handles text generation with the OpenAI API
type OpenAIService struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIService creates a new instance of OpenAIService
func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		Client: openai.NewClient(environment.GetOpenAIKey()),
		Model:  openai.GPT4o,
	}
}

// Complete sends one chat-completion request bounded by timeout. The context
// deadline cancels the in-flight HTTP call when the budget is exceeded.
func (s *OpenAIService) Complete(ctx context.Context, systemPrompt, userPrompt string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error sending completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}

	return resp.Choices[0].Message.Content, nil
}

func cleanJSONResponse(response string) string {
	// Remove markdown code block markers like ```json and ```
	re := regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	cleaned := re.ReplaceAllString(response, "$1")

	return strings.TrimSpace(cleaned)
}

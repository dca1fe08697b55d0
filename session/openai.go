package session

import (
	"context"
	"fmt"

	"ewintr.nl/baitbiter/model"
	"github.com/sashabaranov/go-openai"
)

// OpenAI is a CompletionClient backed by the OpenAI completions endpoint.
type OpenAI struct {
	client *openai.Client
}

func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
	}
}

func (o *OpenAI) Complete(ctx context.Context, modelName, prompt string, maxTokens int) (string, error) {
	resp, err := o.client.CreateCompletion(
		ctx,
		openai.CompletionRequest{
			Model:     modelName,
			Prompt:    prompt,
			MaxTokens: maxTokens,
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", model.ErrCompletionFailed)
	}

	return resp.Choices[0].Text, nil
}

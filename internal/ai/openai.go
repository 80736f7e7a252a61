package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAI implements Completer using chat completions, for deployments that
// carry an OpenAI credential instead of a Gemini one.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewOpenAI(apiKey, model string, timeout time.Duration, log *zap.SugaredLogger) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	return &OpenAI{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		log:     log,
	}, nil
}

func (o *OpenAI) Complete(ctx context.Context, instructions, contextText string, opts Options) RawResult {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: contextText},
		},
		MaxTokens:   int(opts.MaxOutputTokens),
		Temperature: opts.Temperature,
	}
	if opts.JSONResponse {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		o.log.Warnw("openai completion failed", "model", o.model, "error", err)
		return RawResult{}
	}

	if len(resp.Choices) == 0 {
		return RawResult{Blocked: true}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return RawResult{}
	}
	return RawResult{OK: true, Text: text}
}

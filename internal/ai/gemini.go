package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Block only clearly harmful content; the wizard produces marketing copy
// and over-blocking would look like a dead UI.
var geminiSafety = []*genai.SafetySetting{
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
}

// Gemini implements Completer against the Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *zap.SugaredLogger
}

func NewGemini(apiKey, model string, timeout time.Duration, log *zap.SugaredLogger) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client, model: model, timeout: timeout, log: log}, nil
}

func (g *Gemini) Complete(ctx context.Context, instructions, contextText string, opts Options) RawResult {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		TopP:            genai.Ptr[float32](0.9),
		MaxOutputTokens: opts.MaxOutputTokens,
		SafetySettings:  geminiSafety,
	}
	if opts.JSONResponse {
		cfg.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(instructions, genai.RoleUser),
		genai.NewContentFromText(contextText, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		g.log.Warnw("gemini completion failed", "model", g.model, "error", err)
		return RawResult{}
	}

	if len(resp.Candidates) == 0 {
		reason := ""
		if resp.PromptFeedback != nil {
			reason = string(resp.PromptFeedback.BlockReason)
		}
		return RawResult{Blocked: true, BlockReason: reason}
	}

	// Concatenate all text fragments of the first candidate.
	var b strings.Builder
	if content := resp.Candidates[0].Content; content != nil {
		for _, part := range content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return RawResult{}
	}
	return RawResult{OK: true, Text: text}
}

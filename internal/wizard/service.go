// Package wizard implements the four stage operations of the prompt
// wizard. Every stage runs the same machine: validate the input, attempt
// one remote completion when a provider is configured, fall back to the
// deterministic local generator on any trouble, respond.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"magicprompt_server/internal/ai"
	"magicprompt_server/internal/ai/prompts"
	"magicprompt_server/internal/classify"
	"magicprompt_server/internal/fallback"
	"magicprompt_server/internal/types"
)

// ErrInvalidInput marks validation failures the transport layer should
// report as a 400. All other paths succeed with either remote or fallback
// content.
var ErrInvalidInput = errors.New("invalid input")

const (
	// The questions instruction asks for exactly six; anything shorter is
	// treated the same as a full failure.
	minRemoteQuestions = 6
	// Remote variations shorter than the clamp floor trigger fallback.
	minRemoteVariations = 3

	defaultVariationCount = 5
	minVariationCount     = 3
	maxVariationCount     = 8

	// The one-shot generate response never carries more follow-ups than
	// this, however many the model returns.
	maxGenerateQuestions = 6
)

// Service runs the wizard stages. A nil completer means no remote
// credential is configured and every request takes the fallback path.
type Service struct {
	completer ai.Completer
	log       *zap.SugaredLogger
}

func NewService(completer ai.Completer, log *zap.SugaredLogger) *Service {
	return &Service{completer: completer, log: log}
}

// Generate is the one-shot path: a single call turns the raw goal into a
// finished prompt, the resolved task type and up to six follow-up
// questions the UI can offer for further refinement.
func (s *Service) Generate(ctx context.Context, req types.GenerateRequest) (types.GenerateResponse, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return types.GenerateResponse{}, fmt.Errorf("%w: missing 'goal'", ErrInvalidInput)
	}

	task := classify.TaskOf(goal)
	lang := classify.ResolveLocale("", "", goal)

	if s.completer != nil {
		instructions, contextText := prompts.Generate(goal, task)
		res := s.completer.Complete(ctx, instructions, contextText, ai.Options{
			Temperature:     0.6,
			MaxOutputTokens: 1200,
			JSONResponse:    true,
		})
		if res.OK {
			if payload, ok := ai.DecodeStrict[prompts.GeneratePayload](res.Text); ok {
				if prompt := strings.TrimSpace(payload.Prompt); prompt != "" {
					if payload.Type != "" {
						task = types.ParseTaskType(payload.Type)
					}
					return types.GenerateResponse{
						Prompt:    prompt,
						TaskType:  task,
						Language:  lang,
						Questions: truncate(compact(payload.Questions), maxGenerateQuestions),
					}, nil
				}
			}
		}
		s.log.Infow("generate: remote attempt unusable, using fallback")
	}

	return types.GenerateResponse{
		Prompt:    fallback.Prompt(goal, nil, task, lang),
		TaskType:  task,
		Language:  lang,
		Questions: truncate(fallback.Questions(goal, task, lang), maxGenerateQuestions),
	}, nil
}

// Questions turns a goal into 4–8 clarifying questions plus the detected
// task type and language.
func (s *Service) Questions(ctx context.Context, req types.QuestionsRequest) (types.QuestionsResponse, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return types.QuestionsResponse{}, fmt.Errorf("%w: missing 'goal'", ErrInvalidInput)
	}

	task := classify.TaskOf(goal)

	if s.completer != nil {
		if resp, ok := s.remoteQuestions(ctx, goal, task); ok {
			return resp, nil
		}
		s.log.Infow("questions: remote attempt unusable, using fallback")
	}

	lang := classify.ResolveLocale("", "", goal)
	return types.QuestionsResponse{
		TaskType:  task,
		Language:  lang,
		Questions: fallback.Questions(goal, task, lang),
	}, nil
}

type questionsPayload struct {
	Language  string   `json:"language"`
	Questions []string `json:"questions"`
}

func (s *Service) remoteQuestions(ctx context.Context, goal string, task types.TaskType) (types.QuestionsResponse, bool) {
	instructions, contextText := prompts.Questions(goal, task)
	res := s.completer.Complete(ctx, instructions, contextText, ai.Options{
		Temperature:     0.25,
		MaxOutputTokens: 320,
		JSONResponse:    true,
	})
	if !res.OK {
		return types.QuestionsResponse{}, false
	}

	if payload, ok := ai.DecodeStrict[questionsPayload](res.Text); ok {
		qs := compact(payload.Questions)
		if len(qs) >= minRemoteQuestions {
			return types.QuestionsResponse{
				TaskType:  task,
				Language:  classify.ResolveLocale("", payload.Language, goal),
				Questions: truncate(qs, 8),
			}, true
		}
		return types.QuestionsResponse{}, false
	}

	// The model sometimes ignores the JSON instruction and answers with
	// a plain list.
	if lines := compact(ai.ExtractLines(res.Text)); len(lines) >= minRemoteQuestions {
		return types.QuestionsResponse{
			TaskType:  task,
			Language:  classify.ResolveLocale("", "", goal),
			Questions: truncate(lines, 8),
		}, true
	}
	return types.QuestionsResponse{}, false
}

// Enhance composes the execution-ready prompt from the goal and the
// user's answers.
func (s *Service) Enhance(ctx context.Context, req types.EnhanceRequest) (types.EnhanceResponse, error) {
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return types.EnhanceResponse{}, fmt.Errorf("%w: missing 'goal'", ErrInvalidInput)
	}

	// One answer per question; missing answers read as empty, never fatal.
	answers := make([]string, len(req.Questions))
	copy(answers, req.Answers)
	if len(req.Questions) == 0 {
		answers = req.Answers
	}

	task := resolveTask(req.TaskType, goal)
	lang := classify.ResolveLocale(req.Language, "", goal)

	if s.completer != nil {
		instructions, contextText := prompts.Enhance(goal, req.Questions, answers)
		res := s.completer.Complete(ctx, instructions, contextText, ai.Options{
			Temperature:     0.6,
			MaxOutputTokens: 1200,
			JSONResponse:    true,
		})
		if res.OK {
			if payload, ok := ai.DecodeStrict[prompts.EnhancePayload](res.Text); ok {
				prompt := strings.TrimSpace(payload.FinalPrompt)
				if prompt == "" {
					prompt = strings.TrimSpace(payload.Prompt)
				}
				if prompt != "" {
					if req.TaskType == "" && payload.Type != "" {
						task = types.ParseTaskType(payload.Type)
					}
					return types.EnhanceResponse{Prompt: prompt, TaskType: task, Language: lang}, nil
				}
			}
			// Not the requested JSON but still a usable prompt text.
			if text := ai.StripFences(res.Text); text != "" {
				return types.EnhanceResponse{Prompt: text, TaskType: task, Language: lang}, nil
			}
		}
		s.log.Infow("enhance: remote attempt unusable, using fallback")
	}

	return types.EnhanceResponse{
		Prompt:   fallback.Prompt(goal, answers, task, lang),
		TaskType: task,
		Language: lang,
	}, nil
}

// Variations rephrases the base prompt into count alternates with varied
// rhetorical angles. Count is clamped to [3,8], defaulting to 5.
func (s *Service) Variations(ctx context.Context, req types.VariationsRequest) (types.VariationsResponse, error) {
	base := strings.TrimSpace(req.Prompt)
	goal := strings.TrimSpace(req.Goal)
	if base == "" && goal == "" {
		return types.VariationsResponse{}, fmt.Errorf("%w: missing 'prompt' or 'goal'", ErrInvalidInput)
	}

	primary := base
	if primary == "" {
		primary = goal
	}

	n := clampCount(req.Count)
	task := resolveTask(req.TaskType, primary)
	lang := classify.ResolveLocale(req.Language, "", primary)

	if s.completer != nil {
		if variants, ok := s.remoteVariations(ctx, base, goal, task, lang, n); ok {
			return types.VariationsResponse{Variants: variants, Language: lang}, nil
		}
		s.log.Infow("variations: remote attempt unusable, using fallback")
	}

	return types.VariationsResponse{
		Variants: fallback.Variations(primary, task, lang, n),
		Language: lang,
	}, nil
}

func (s *Service) remoteVariations(ctx context.Context, base, goal string, task types.TaskType, lang string, n int) ([]string, bool) {
	instructions, contextText := prompts.Variations(base, goal, task, lang, n)
	res := s.completer.Complete(ctx, instructions, contextText, ai.Options{
		Temperature:     0.6,
		MaxOutputTokens: 800,
		JSONResponse:    true,
	})
	if !res.OK {
		return nil, false
	}

	if payload, ok := ai.DecodeStrict[prompts.VariationsPayload](res.Text); ok {
		variants := compact(payload.Variants)
		if len(variants) >= minRemoteVariations {
			return truncate(variants, n), true
		}
		return nil, false
	}

	if lines := compact(ai.ExtractLines(res.Text)); len(lines) >= minRemoteVariations {
		return truncate(lines, n), true
	}
	return nil, false
}

// TestDrive produces a short preview of what running the prompt through a
// target AI tool would yield. A provider content-block is a soft
// condition: empty sample, explanatory note, success status.
func (s *Service) TestDrive(ctx context.Context, req types.TestDriveRequest) (types.TestDriveResponse, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return types.TestDriveResponse{}, fmt.Errorf("%w: missing 'prompt'", ErrInvalidInput)
	}

	task := types.ParseTaskType(req.TaskType)

	if s.completer != nil {
		instructions, contextText := prompts.TestDrive(prompt, task)
		res := s.completer.Complete(ctx, instructions, contextText, ai.Options{
			Temperature:     0.7,
			MaxOutputTokens: 600,
		})
		if res.OK {
			return types.TestDriveResponse{Sample: res.Text}, nil
		}
		if res.Blocked {
			note := "No preview returned."
			if res.BlockReason != "" {
				note = "Preview blocked: " + res.BlockReason
			}
			return types.TestDriveResponse{Sample: "", Note: note}, nil
		}
		s.log.Infow("testdrive: remote attempt unusable, using fallback")
	}

	sample, note := fallback.Preview(prompt, task)
	if s.completer != nil {
		note = fallback.DegradedNote
	}
	return types.TestDriveResponse{Sample: sample, Note: note}, nil
}

// resolveTask prefers an explicit task hint over the heuristic.
func resolveTask(hint, text string) types.TaskType {
	if strings.TrimSpace(hint) != "" {
		return types.ParseTaskType(hint)
	}
	return classify.TaskOf(text)
}

func clampCount(v int) int {
	if v == 0 {
		return defaultVariationCount
	}
	if v < minVariationCount {
		return minVariationCount
	}
	if v > maxVariationCount {
		return maxVariationCount
	}
	return v
}

func truncate(ss []string, max int) []string {
	if len(ss) > max {
		return ss[:max]
	}
	return ss
}

// compact trims entries and drops blanks and duplicates, keeping first
// occurrences in order. The model occasionally repeats itself; repeats
// must not count toward the minimum nor reach the response.
func compact(ss []string) []string {
	out := make([]string, 0, len(ss))
	seen := make(map[string]bool, len(ss))
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

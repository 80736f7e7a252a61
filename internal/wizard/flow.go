package wizard

import (
	"context"
	"encoding/json"
	"fmt"

	"magicprompt_server/internal/session"
	"magicprompt_server/internal/types"
)

// Flow sequences the wizard stages for one session, persisting each
// stage's output so the next one can consume it. Stages run strictly
// sequentially, gated on the user completing the prior step; a Flow is
// owned by a single caller and never shared.
type Flow struct {
	svc   *Service
	store *session.Store
	id    string
}

func NewFlow(svc *Service, store *session.Store) *Flow {
	return &Flow{svc: svc, store: store, id: store.New()}
}

// SessionID identifies the flow's session in the underlying store.
func (f *Flow) SessionID() string {
	return f.id
}

// SubmitGoal runs the Questions stage and persists goal, detected task
// type, language and the question list.
func (f *Flow) SubmitGoal(ctx context.Context, goal string) (types.QuestionsResponse, error) {
	resp, err := f.svc.Questions(ctx, types.QuestionsRequest{Goal: goal})
	if err != nil {
		return types.QuestionsResponse{}, err
	}

	qs, err := json.Marshal(resp.Questions)
	if err != nil {
		return types.QuestionsResponse{}, err
	}

	f.store.Set(f.id, session.KeyGoal, goal)
	f.store.Set(f.id, session.KeyTaskType, string(resp.TaskType))
	f.store.Set(f.id, session.KeyLanguage, resp.Language)
	f.store.Set(f.id, session.KeyQuestions, string(qs))
	return resp, nil
}

// Answer records the user's answer to question index i.
func (f *Flow) Answer(i int, answer string) {
	f.store.Set(f.id, session.AnswerKey(i), answer)
}

// BuildPrompt runs the Enhance stage over the persisted goal, questions
// and answers, and persists the resulting prompt.
func (f *Flow) BuildPrompt(ctx context.Context) (types.EnhanceResponse, error) {
	goal := f.store.Get(f.id, session.KeyGoal)
	if goal == "" {
		return types.EnhanceResponse{}, fmt.Errorf("%w: no goal submitted yet", ErrInvalidInput)
	}

	questions := f.questions()
	answers := make([]string, len(questions))
	for i := range questions {
		answers[i] = f.store.Get(f.id, session.AnswerKey(i))
	}

	resp, err := f.svc.Enhance(ctx, types.EnhanceRequest{
		Goal:      goal,
		Questions: questions,
		Answers:   answers,
		TaskType:  f.store.Get(f.id, session.KeyTaskType),
		Language:  f.store.Get(f.id, session.KeyLanguage),
	})
	if err != nil {
		return types.EnhanceResponse{}, err
	}

	f.store.Set(f.id, session.KeyPrompt, resp.Prompt)
	f.store.Set(f.id, session.KeyTaskType, string(resp.TaskType))
	f.store.Set(f.id, session.KeyLanguage, resp.Language)
	return resp, nil
}

// Variations runs the Variations stage over the persisted prompt and
// persists the variant list.
func (f *Flow) Variations(ctx context.Context, count int) (types.VariationsResponse, error) {
	resp, err := f.svc.Variations(ctx, types.VariationsRequest{
		Prompt:   f.store.Get(f.id, session.KeyPrompt),
		Goal:     f.store.Get(f.id, session.KeyGoal),
		TaskType: f.store.Get(f.id, session.KeyTaskType),
		Language: f.store.Get(f.id, session.KeyLanguage),
		Count:    count,
	})
	if err != nil {
		return types.VariationsResponse{}, err
	}

	vs, err := json.Marshal(resp.Variants)
	if err != nil {
		return types.VariationsResponse{}, err
	}
	f.store.Set(f.id, session.KeyVariants, string(vs))
	return resp, nil
}

// TestDrive runs the Test-Drive stage over the persisted prompt.
func (f *Flow) TestDrive(ctx context.Context) (types.TestDriveResponse, error) {
	return f.svc.TestDrive(ctx, types.TestDriveRequest{
		Prompt:   f.store.Get(f.id, session.KeyPrompt),
		TaskType: f.store.Get(f.id, session.KeyTaskType),
	})
}

// Reset drops all persisted state, the "start over" action.
func (f *Flow) Reset() {
	f.store.Clear(f.id)
	f.id = f.store.New()
}

func (f *Flow) questions() []string {
	raw := f.store.Get(f.id, session.KeyQuestions)
	if raw == "" {
		return nil
	}
	var qs []string
	if err := json.Unmarshal([]byte(raw), &qs); err != nil {
		return nil
	}
	return qs
}

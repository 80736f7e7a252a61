// Package prompts holds the per-stage instruction templates sent to the
// completion gateway. Instructions and context are kept separate so each
// provider can map them onto its own conversation shape.
package prompts

import (
	"fmt"
	"strings"

	"magicprompt_server/internal/types"
)

// TaskLabel renders a task type the way the instructions talk about it.
func TaskLabel(task types.TaskType) string {
	switch task {
	case types.TaskEssay:
		return "essay"
	case types.TaskAd:
		return "advertising campaign"
	case types.TaskEmail:
		return "email"
	case types.TaskSocial:
		return "social media posts"
	case types.TaskScript:
		return "short-form video script"
	case types.TaskImage:
		return "image prompt"
	case types.TaskCode:
		return "piece of code"
	case types.TaskResearch:
		return "research brief"
	case types.TaskProductCopy:
		return "product copy"
	default:
		return "general task"
	}
}

// Questions asks for exactly six sharp clarifying questions plus the
// detected language, as strict JSON.
func Questions(goal string, task types.TaskType) (instructions, contextText string) {
	instructions = fmt.Sprintf(`Write your entire response in the SAME LANGUAGE as GOAL. Do NOT translate.
Return STRICT JSON only, with this schema:
{
  "language": "<ISO 639-1 code if obvious, else a language name>",
  "questions": ["<q1>", "<q2>", "<q3>", "<q4>", "<q5>", "<q6>"]
}

ROLE: Precise prompt strategist.
TASK: Ask exactly 6 sharp, non-redundant follow-up questions that enable building a high-quality %s prompt.
STYLE: No numbering, no preface, no explanations. The strings must be just the questions.
CONTENT: Make each question specific to the GOAL (audience, format/length, tone/voice, channels, CTA, sources, deadlines, constraints, anti-requirements).`, TaskLabel(task))

	contextText = "GOAL:\n" + goal
	return
}

// GeneratePayload is the strict-JSON shape the one-shot generate
// instruction requests.
type GeneratePayload struct {
	Type      string   `json:"type"`
	Questions []string `json:"questions"`
	Prompt    string   `json:"prompt"`
}

// Generate asks for the task type, task-specific follow-up questions and a
// production-grade prompt in a single call. The locally inferred type is
// passed along for the model to confirm or adjust.
func Generate(goal string, task types.TaskType) (instructions, contextText string) {
	instructions = `You are a world-class prompt engineer. Your job:
1) Identify the user's task type precisely from: email | essay | ad | social | script | image | code | research | product_copy | general.
2) Generate 4-6 LASER-FOCUSED follow-up questions that are SPECIFIC to the task type. No generic creative-writing fluff.
3) Produce ONE final, production-grade prompt that another model can execute directly.
Rules:
- The final prompt must be self-contained, explicit, and include all necessary constraints.
- Use a compact, professional style. No markdown fences, no extra commentary.
- Write in the same language as GOAL.
- Output JSON ONLY with keys: type, questions, prompt. No prose.`

	contextText = fmt.Sprintf("GOAL:\n%s\n\nINFERRED_TYPE: %s\nQUALITY_BAR: senior copy chief / staff prompt engineer", goal, task)
	return
}

// EnhancePayload is the strict-JSON shape the enhance instruction requests.
type EnhancePayload struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	FinalPrompt string `json:"final_prompt"`
	Prompt      string `json:"prompt"` // some responses use this key instead
}

// Enhance asks for one execution-ready prompt following a fixed section
// outline, with bracket-style placeholders explicitly forbidden.
func Enhance(goal string, questions, answers []string) (instructions, contextText string) {
	instructions = `You are an expert Prompt Engineer. Given a user's goal and brief answers,
produce a single, execution-ready prompt that another AI can run directly.

1) First infer a task TYPE from: email | essay | ad | social | script | image | code | research | product_copy | general.
2) Then compose a polished prompt with these sections (concise, no placeholders):
   - Role: (who the model should be)
   - Task: (what to produce)
   - Inputs: (facts gleaned from the answers; synthesize sensible defaults)
   - Constraints: (style, tone, length/structure, do/don't)
   - Output format: (bullets/sections/JSON schema as appropriate)
   - Quality bar: (clarity, specificity, correctness)

Rules:
- Do NOT use bracket placeholders like [AUDIENCE]; fill fields from answers or safe defaults.
- Avoid meta language. Write it like instructions to a model.
- Write in the same language as the GOAL.
- Return pure JSON only with keys:
  {
    "type": "<inferred type>",
    "title": "<one-line title>",
    "final_prompt": "<the full prompt, multiline>"
  }`

	var b strings.Builder
	b.WriteString("GOAL:\n")
	if goal == "" {
		b.WriteString("(none)")
	} else {
		b.WriteString(goal)
	}
	b.WriteString("\n\nANSWERS:\n")
	wrote := false
	for i, a := range answers {
		q := ""
		if i < len(questions) {
			q = questions[i]
		}
		if strings.TrimSpace(a) == "" {
			continue
		}
		if q != "" {
			fmt.Fprintf(&b, "Q%d: %s\n", i+1, q)
		}
		fmt.Fprintf(&b, "A%d: %s\n", i+1, a)
		wrote = true
	}
	if !wrote {
		b.WriteString("(none)")
	}

	contextText = b.String()
	return
}

// VariationsPayload is the strict-JSON shape the variations instruction
// requests.
type VariationsPayload struct {
	Variants []string `json:"variants"`
}

// Variations asks for n rephrasings that preserve intent but vary the
// rhetorical angle, mirroring the given language exactly.
func Variations(basePrompt, goal string, task types.TaskType, language string, n int) (instructions, contextText string) {
	instructions = fmt.Sprintf(`You are an expert prompt engineer.
TASK: Create %d distinct VARIATIONS of the user's prompt (not the final output), keeping intent the same but angle/style different.
LANGUAGE: %s (mirror exactly; do not switch languages).
EACH VARIATION: concise, executable, one paragraph max. No examples unless asked.
RETURN STRICT JSON ONLY:
{"variants": ["v1","v2", "..."]}`, n, language)

	base := basePrompt
	if base == "" {
		base = "(derived from goal)"
	}
	g := goal
	if g == "" {
		g = "(n/a)"
	}
	contextText = fmt.Sprintf("TYPE: %s\nBASE_PROMPT:\n%s\n\nGOAL (if helpful):\n%s\n", task, base, g)
	return
}

var previewAsks = map[types.TaskType]string{
	types.TaskEmail:       "Generate 3 subject lines and a 140–180 word email body. Respond in plain text only.",
	types.TaskEssay:       "Produce an outline (5–7 H2s) and the first 2 paragraphs (<=220 words total). Respond in plain text only.",
	types.TaskAd:          "Give 3 hooks (<=12 words each) and platform copy for IG + YT Short (<=80 words each). Respond in plain text only.",
	types.TaskSocial:      "Give 3 posts (<=80 words each) with distinct angles. Respond in plain text only.",
	types.TaskScript:      "Give a 6-beat outline and the opening 15–25 seconds of script. Respond in plain text only.",
	types.TaskImage:       "Produce one fully-specified image prompt and 2 alternates, one line each. Plain text only.",
	types.TaskCode:        "Sketch the public interface and the core implementation (<=40 lines). Plain text only.",
	types.TaskResearch:    "Give 5 key findings as bullets and a 3-sentence synthesis. Plain text only.",
	types.TaskProductCopy: "Give a headline, 3 benefit bullets and a closing line. Plain text only.",
	types.TaskGeneral:     "Give a concise preview (<=200 words) that shows the output style. Plain text only.",
}

// TestDrive asks for a short, safety-filtered preview of what running the
// final prompt would produce, using a per-task-type preview instruction.
func TestDrive(prompt string, task types.TaskType) (instructions, contextText string) {
	ask, ok := previewAsks[task]
	if !ok {
		ask = previewAsks[types.TaskGeneral]
	}

	instructions = "You will generate a SAFE, respectful, neutral preview of the final output.\n" +
		"Return PLAIN TEXT only (no markdown, no code fences).\n\n" +
		"TASK FOR PREVIEW:\n" + ask
	contextText = "FINAL PROMPT:\n" + prompt
	return
}

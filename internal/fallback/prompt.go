package fallback

import (
	"fmt"
	"strings"

	"magicprompt_server/internal/types"
)

var taskLabels = map[types.TaskType]string{
	types.TaskEmail:       "email",
	types.TaskEssay:       "essay",
	types.TaskAd:          "advertising copy",
	types.TaskSocial:      "social media posts",
	types.TaskScript:      "short-form video script",
	types.TaskImage:       "image prompt",
	types.TaskCode:        "code",
	types.TaskResearch:    "research summary",
	types.TaskProductCopy: "product copy",
	types.TaskGeneral:     "deliverable",
}

var taskLabelsDE = map[types.TaskType]string{
	types.TaskEmail:   "E-Mail",
	types.TaskEssay:   "Aufsatz",
	types.TaskAd:      "Werbetext",
	types.TaskSocial:  "Social-Media-Beiträge",
	types.TaskScript:  "Kurzvideo-Skript",
	types.TaskImage:   "Bild-Prompt",
	types.TaskGeneral: "Ergebnis",
}

// Prompt composes an execution-ready prompt from the goal and the user's
// answers. The output follows the Role/Task/Inputs/Constraints/Output
// format/Quality bar outline and is never empty.
func Prompt(goal string, answers []string, task types.TaskType, language string) string {
	label := taskLabels[task]
	if label == "" {
		label = taskLabels[types.TaskGeneral]
	}

	if primaryTag(language) == "de" {
		labelDE := taskLabelsDE[task]
		if labelDE == "" {
			labelDE = taskLabelsDE[types.TaskGeneral]
		}
		return promptDE(goal, answers, labelDE)
	}
	return promptEN(goal, answers, label)
}

func promptEN(goal string, answers []string, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Role: You are an experienced professional writer producing a %s.\n\n", label)
	fmt.Fprintf(&b, "Task: Fulfill this goal exactly as stated: %s\n\n", strings.TrimSpace(goal))
	b.WriteString("Inputs:\n")
	writeAnswerList(&b, answers, "The briefing provided no further details; choose sensible, widely applicable defaults.")
	b.WriteString("\nConstraints: Stay faithful to the goal, keep the language of the goal text, ")
	b.WriteString("be specific rather than generic, and do not invent facts the inputs do not support.\n\n")
	b.WriteString("Output format: Deliver the finished text only, structured so it can be used without edits.\n\n")
	b.WriteString("Quality bar: Clear, specific and correct, at the level of a senior copy chief.\n")
	return b.String()
}

func promptDE(goal string, answers []string, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rolle: Du bist ein erfahrener Profi-Texter und erstellst: %s.\n\n", label)
	fmt.Fprintf(&b, "Aufgabe: Erfülle genau dieses Ziel: %s\n\n", strings.TrimSpace(goal))
	b.WriteString("Eingaben:\n")
	writeAnswerList(&b, answers, "Das Briefing enthielt keine weiteren Details; wähle sinnvolle, allgemein passende Annahmen.")
	b.WriteString("\nVorgaben: Bleibe beim Ziel, behalte die Sprache des Zieltexts bei, ")
	b.WriteString("sei konkret statt generisch und erfinde keine Fakten, die die Eingaben nicht stützen.\n\n")
	b.WriteString("Ausgabeformat: Liefere nur den fertigen Text, so strukturiert, dass er ohne Nacharbeit nutzbar ist.\n\n")
	b.WriteString("Qualitätsanspruch: Klar, konkret und korrekt, auf dem Niveau eines erfahrenen Chef-Texters.\n")
	return b.String()
}

func writeAnswerList(b *strings.Builder, answers []string, emptyNote string) {
	wrote := false
	for i, a := range answers {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		fmt.Fprintf(b, "- A%d: %s\n", i+1, a)
		wrote = true
	}
	if !wrote {
		fmt.Fprintf(b, "- %s\n", emptyNote)
	}
}

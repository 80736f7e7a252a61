package fallback

import (
	"fmt"
	"strings"

	"magicprompt_server/internal/types"
)

// Notes attached to locally generated previews so the UI can tell them
// apart from a live model sample. OfflineNote means no credential is
// configured; DegradedNote means a credential exists but the call failed.
const (
	OfflineNote  = "Offline preview: configure an AI credential for a live sample."
	DegradedNote = "Live sample unavailable right now; showing a local preview instead."
)

var previewShapes = map[types.TaskType]string{
	types.TaskEmail:       "Subject line options, then a 140–180 word body with a single clear call to action.",
	types.TaskEssay:       "An outline of five to seven section headings, then the opening two paragraphs.",
	types.TaskAd:          "Three short hooks, then platform copy for one vertical and one short-form video placement.",
	types.TaskSocial:      "Three posts of up to 80 words, each taking a distinct angle.",
	types.TaskScript:      "A six-beat outline, then the opening 15–25 seconds of script.",
	types.TaskImage:       "One fully specified image prompt plus two one-line alternates.",
	types.TaskCode:        "A sketch of the public interface, then the core implementation with brief comments.",
	types.TaskResearch:    "Key findings as bullets with source types, then a short synthesis paragraph.",
	types.TaskProductCopy: "A headline, three feature-to-benefit bullets, and a closing line.",
	types.TaskGeneral:     "A concise sample of up to 200 words showing the output style.",
}

// Preview approximates what running the prompt through an AI tool would
// produce, without calling one. The sample describes the shape of the
// expected output and quotes the prompt's opening so the user can sanity
// check that the right prompt would run.
func Preview(prompt string, task types.TaskType) (sample string, note string) {
	shape := previewShapes[task]
	if shape == "" {
		shape = previewShapes[types.TaskGeneral]
	}

	return fmt.Sprintf("Running this prompt would produce: %s\n\nPrompt under test:\n%s", shape, excerpt(prompt, 240)), OfflineNote
}

func excerpt(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

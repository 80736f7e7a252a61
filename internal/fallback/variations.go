package fallback

import (
	"fmt"

	"magicprompt_server/internal/types"
)

var anglesEN = []string{
	"benefit-driven",
	"data-driven",
	"storytelling",
	"urgent/limited-time",
	"authority/expert",
	"problem-solution",
	"contrarian",
	"customer-voice",
}

var anglesDE = []string{
	"nutzenorientiert",
	"datenbasiert",
	"Storytelling",
	"dringend/limitiert",
	"Autorität/Expertise",
	"Problem-Lösung",
	"kontrovers",
	"Kundenstimme",
}

// Variations prefixes rhetorical-angle labels onto the base prompt. Every
// element contains basePrompt verbatim, all elements are distinct, and the
// result never exceeds count (nor the number of known angles).
func Variations(basePrompt string, task types.TaskType, language string, count int) []string {
	_ = task // angles are task-agnostic; the base prompt carries the task

	angles := anglesEN
	word := "Variation"
	if primaryTag(language) == "de" {
		angles = anglesDE
		word = "Variante"
	}

	if count < 1 {
		count = 1
	}
	if count > len(angles) {
		count = len(angles)
	}

	out := make([]string, 0, count)
	for _, angle := range angles[:count] {
		out = append(out, fmt.Sprintf("%s (%s): %s", word, angle, basePrompt))
	}
	return out
}

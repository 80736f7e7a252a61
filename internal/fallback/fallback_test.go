package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magicprompt_server/internal/types"
)

var allTasks = []types.TaskType{
	types.TaskEmail, types.TaskEssay, types.TaskAd, types.TaskSocial,
	types.TaskScript, types.TaskImage, types.TaskCode, types.TaskResearch,
	types.TaskProductCopy, types.TaskGeneral,
}

func TestQuestionsCardinalityForEveryPair(t *testing.T) {
	// Includes languages and tasks with no dedicated table entry; the
	// generic branches must still satisfy the 4–8 invariant.
	languages := []string{"en", "de", "de-AT", "es", "fr", "tl", "fi", "nl", "ru", "ja", "xx", ""}
	for _, lang := range languages {
		for _, task := range allTasks {
			qs := Questions("Write a persuasive email about our new product", task, lang)
			assert.GreaterOrEqual(t, len(qs), 4, "lang=%q task=%q", lang, task)
			assert.LessOrEqual(t, len(qs), 8, "lang=%q task=%q", lang, task)
			for _, q := range qs {
				assert.NotEmpty(t, q)
				assert.NotContains(t, q, "{subject}")
			}
		}
	}
}

func TestQuestionsEmbedSubject(t *testing.T) {
	qs := Questions(`Promote our "Night Garden" candle line`, types.TaskAd, "en")
	joined := strings.Join(qs, "\n")
	assert.Contains(t, joined, "Night Garden")
}

func TestQuestionsEmptyGoal(t *testing.T) {
	qs := Questions("", types.TaskGeneral, "en")
	assert.GreaterOrEqual(t, len(qs), 4)
}

func TestPromptNeverEmpty(t *testing.T) {
	for _, lang := range []string{"en", "de", "es", ""} {
		for _, task := range allTasks {
			p := Prompt("Write something", nil, task, lang)
			require.NotEmpty(t, p, "lang=%q task=%q", lang, task)
		}
	}
}

func TestPromptRestatesGoalAndAnswers(t *testing.T) {
	goal := "Write a launch email for our roasting club"
	p := Prompt(goal, []string{"home baristas", "", "playful tone"}, types.TaskEmail, "en")

	assert.Contains(t, p, goal)
	assert.Contains(t, p, "A1: home baristas")
	assert.Contains(t, p, "A3: playful tone")
	assert.NotContains(t, p, "A2:") // blank answers are skipped, not rendered

	for _, section := range []string{"Role:", "Task:", "Inputs:", "Constraints:", "Output format:", "Quality bar:"} {
		assert.Contains(t, p, section)
	}
}

func TestPromptGermanTemplate(t *testing.T) {
	p := Prompt("Schreibe eine E-Mail an Kunden", []string{"Bestandskunden"}, types.TaskEmail, "de")
	assert.Contains(t, p, "Rolle:")
	assert.Contains(t, p, "Aufgabe:")
	assert.Contains(t, p, "A1: Bestandskunden")
}

func TestVariationsEmbedBaseAndAreDistinct(t *testing.T) {
	base := "Write a launch email for our roasting club"
	for _, lang := range []string{"en", "de"} {
		for _, n := range []int{2, 3, 5, 8} {
			vs := Variations(base, types.TaskEmail, lang, n)
			assert.LessOrEqual(t, len(vs), n)
			assert.NotEmpty(t, vs)

			seen := map[string]bool{}
			for _, v := range vs {
				assert.Contains(t, v, base)
				assert.False(t, seen[v], "duplicate variant: %q", v)
				seen[v] = true
			}
		}
	}
}

func TestVariationsNeverExceedAngleCount(t *testing.T) {
	vs := Variations("base", types.TaskGeneral, "en", 50)
	assert.Len(t, vs, len(anglesEN))
}

func TestPreview(t *testing.T) {
	for _, task := range allTasks {
		sample, note := Preview("Write a launch email for our roasting club", task)
		assert.NotEmpty(t, sample, "task=%q", task)
		assert.Equal(t, OfflineNote, note)
	}

	long := strings.Repeat("x", 1000)
	sample, _ := Preview(long, types.TaskGeneral)
	assert.Contains(t, sample, "…")
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"magicprompt_server/internal/types"
)

func TestClassifyGermanEmailGoal(t *testing.T) {
	res := Classify("Schreibe eine E-Mail an Kunden über ein neues Produkt")
	assert.Equal(t, "de", res.Language)
	assert.Equal(t, types.TaskEmail, res.TaskType)
}

func TestLanguageOf(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"cyrillic", "Напиши письмо клиентам", "ru"},
		{"japanese kana", "新しい商品についてのメールを書いて", "ja"},
		{"polish diacritics", "Napisz wiadomość do klientów", "pl"},
		{"umlauts beat spanish words", "Grüße para el equipo", "de"},
		{"spanish words", "Escribe un correo para los clientes", "es"},
		{"french words", "Rédige une lettre pour les clients", "fr"},
		{"tagalog words", "Sumulat ng liham sa mga kliyente", "tl"},
		{"finnish words", "Kirjoita raportti mutta ole nopea", "fi"},
		{"dutch words", "Schrijf het bericht voor klanten", "nl"},
		{"plain english", "Write a persuasive message to customers", "en"},
		{"empty", "", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageOf(tt.text))
		})
	}
}

func TestLanguagePriorityIsFixed(t *testing.T) {
	// German function words sort before the Spanish ones even when both
	// languages have hits.
	assert.Equal(t, "de", LanguageOf("ein mensaje para el equipo"))
}

func TestTaskOf(t *testing.T) {
	tests := []struct {
		text string
		want types.TaskType
	}{
		{"write a newsletter for subscribers", types.TaskEmail},
		{"an essay on urban farming", types.TaskEssay},
		{"launch a facebook ads campaign", types.TaskAd},
		{"three linkedin posts with a hashtag", types.TaskSocial},
		{"a 60 second video script", types.TaskScript},
		{"midjourney image prompt of a lighthouse", types.TaskImage},
		{"refactor this python module", types.TaskCode},
		{"literature review on sleep studies", types.TaskResearch},
		{"product description for a shopify store", types.TaskProductCopy},
		{"help me plan my week", types.TaskGeneral},
		{"", types.TaskGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TaskOf(tt.text), "text: %q", tt.text)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	const text = "Schreibe eine E-Mail an Kunden über ein neues Produkt"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Alpine Touring", Subject(`Promote our "Alpine Touring" collection to skiers`))
	assert.Equal(t, "neue Kollektion", Subject("Bewirb die „neue Kollektion“ bei Stammkunden"))

	got := Subject("one two three four five six seven eight nine ten")
	assert.Equal(t, "three four five six seven eight nine ten", got)

	assert.Equal(t, "short goal", Subject("short goal"))
}

func TestResolveLocale(t *testing.T) {
	// Explicit hint wins over everything.
	assert.Equal(t, "fr", ResolveLocale("FR", "de", "Schreibe eine E-Mail"))
	// Remote-detected beats the heuristic.
	assert.Equal(t, "es", ResolveLocale("", "es", "Schreibe eine E-Mail"))
	// "und" from the model is ignored.
	assert.Equal(t, "de", ResolveLocale("", "und", "Schreibe eine E-Mail über Produkte"))
	// Nothing at all falls back to the default.
	assert.Equal(t, "en", ResolveLocale("", "", "plain message"))
}

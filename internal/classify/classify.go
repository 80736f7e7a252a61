package classify

import (
	"strings"
	"unicode"

	"magicprompt_server/internal/types"
)

// Result is the classifier's verdict over a piece of free text. Both fields
// are always populated; the defaults are "en" and TaskGeneral.
type Result struct {
	Language string
	TaskType types.TaskType
}

// Classify guesses a BCP-47-like language tag and a task category for raw
// free text. It is a pure function: no I/O, no randomness, same input same
// output.
func Classify(text string) Result {
	return Result{
		Language: LanguageOf(text),
		TaskType: TaskOf(text),
	}
}

// scriptRule matches a character class. Script and diacritic rules carry
// more signal than shared function words, so they are checked before the
// word lists: text with umlauts and Spanish function words is German.
type scriptRule struct {
	lang  string
	match func(r rune) bool
}

var scriptRules = []scriptRule{
	{"ru", func(r rune) bool { return unicode.Is(unicode.Cyrillic, r) }},
	{"ja", func(r rune) bool { return unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) }},
	{"zh", func(r rune) bool { return unicode.Is(unicode.Han, r) }},
	{"ko", func(r rune) bool { return unicode.Is(unicode.Hangul, r) }},
	{"pl", func(r rune) bool { return strings.ContainsRune("ąćęłńśźż", r) }},
	{"de", func(r rune) bool { return strings.ContainsRune("äöüß", r) }},
}

// wordRule matches common short function words. Checked in fixed priority
// order; the first language with any hit wins.
type wordRule struct {
	lang  string
	words []string
}

var wordRules = []wordRule{
	{"de", []string{"und", "oder", "für", "über", "ein", "eine", "kein", "nicht", "dass", "weil", "damit", "schreibe", "verfasse"}},
	{"es", []string{"el", "la", "los", "las", "con", "para", "qué", "por", "una", "un", "escribe"}},
	{"fr", []string{"le", "les", "des", "et", "pour", "que", "une", "écrire", "rédige"}},
	{"tl", []string{"ang", "ng", "mga", "sa", "ako", "ito", "kami", "sumulat"}},
	{"fi", []string{"että", "mutta", "myös", "kanssa", "minä", "sinä", "olen", "kirjoita"}},
	{"nl", []string{"het", "een", "maar", "voor", "met", "niet", "schrijf"}},
}

// LanguageOf returns a best-effort language tag for text, "en" when nothing
// matches.
func LanguageOf(text string) string {
	lower := strings.ToLower(text)

	for _, rule := range scriptRules {
		if strings.ContainsFunc(lower, rule.match) {
			return rule.lang
		}
	}

	words := fields(lower)
	for _, rule := range wordRules {
		for _, w := range rule.words {
			if _, ok := words[w]; ok {
				return rule.lang
			}
		}
	}
	return "en"
}

func fields(lower string) map[string]struct{} {
	parts := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return set
}

// taskRule maps category-specific keywords to a task type.
type taskRule struct {
	task     types.TaskType
	keywords []string
}

var taskRules = []taskRule{
	{types.TaskEmail, []string{"email", "e-mail", "newsletter", "correo", "courriel"}},
	{types.TaskEssay, []string{"essay", "aufsatz", "essai", "ensayo", "saggio", "thesis"}},
	{types.TaskAd, []string{"campaign", "kampagne", "campaña", "campagne", "ad copy", "anzeige", "advert", "facebook ads", "google ads"}},
	{types.TaskSocial, []string{"social media", "tweet", "instagram", "linkedin", "tiktok", "hashtag"}},
	{types.TaskScript, []string{"script", "skript", "guion", "video", "voiceover"}},
	{types.TaskImage, []string{"image prompt", "bild prompt", "midjourney", "stable diffusion", "dalle", "illustration"}},
	{types.TaskCode, []string{"code", "coding", "refactor", "debug", "python", "javascript", "sql"}},
	{types.TaskResearch, []string{"research", "recherche", "literature review", "studie", "survey"}},
	{types.TaskProductCopy, []string{"product description", "produktbeschreibung", "product copy", "shopify", "amazon listing"}},
}

// TaskOf scans lowercased text for category keywords in fixed priority
// order; the first category with a hit wins, otherwise TaskGeneral.
func TaskOf(text string) types.TaskType {
	lower := strings.ToLower(text)
	for _, rule := range taskRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.task
			}
		}
	}
	return types.TaskGeneral
}

// Subject extracts the part of a goal worth echoing back in questions: a
// quoted substring when present, otherwise the last eight words.
func Subject(goal string) string {
	for _, quotes := range [][2]string{{`"`, `"`}, {"“", "”"}, {"„", "“"}, {"«", "»"}} {
		open := strings.Index(goal, quotes[0])
		if open < 0 {
			continue
		}
		rest := goal[open+len(quotes[0]):]
		end := strings.Index(rest, quotes[1])
		if end > 0 {
			return rest[:end]
		}
	}

	words := strings.Fields(goal)
	if len(words) > 8 {
		words = words[len(words)-8:]
	}
	return strings.Join(words, " ")
}

// ResolveLocale is the single locale-resolution policy shared by every
// stage: an explicit caller hint wins, then a language the remote model
// reported, then the local heuristic over the stage's primary text.
func ResolveLocale(hint, detected, text string) string {
	if l := normalize(hint); l != "" {
		return l
	}
	if l := normalize(detected); l != "" {
		return l
	}
	return LanguageOf(text)
}

// normalize lowercases a tag and drops the "und" (undetermined) marker the
// remote model sometimes returns.
func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "und" {
		return ""
	}
	return tag
}

// Package fallback produces deterministic, templated wizard content for
// every (language, task) pair. It is the guaranteed-availability path: the
// functions here never fail and never return empty collections, no matter
// what the remote model did.
package fallback

import (
	"strings"

	"magicprompt_server/internal/classify"
	"magicprompt_server/internal/types"
)

// The template tables are initialized once and never mutated. Question
// strings may embed {subject}, replaced with the goal's extracted subject.
var questionTables = map[string]map[types.TaskType][]string{
	"en": {
		types.TaskEssay: {
			"Who is the audience and what tone is preferred (grade level, academic, neutral)?",
			"Which angles about “{subject}” should be covered (history, present, future, culture, challenges)?",
			"Target length and structure (e.g., 800–1200 words, H2 sections, citations)?",
			"Source requirements (count/type) and citation style (APA/MLA/Chicago)?",
			"What central thesis or research question should be emphasized?",
			"Any do-not items or sensitive areas to avoid?",
		},
		types.TaskAd: {
			"Who exactly is the target audience for “{subject}” (segment/age/interests)?",
			"What core message, USP or offer leads (proof/social proof)?",
			"Which channels and formats (IG Reels, TikTok, YT Shorts, static/video) and rough budget/timeline?",
			"Tone and visuals (friendly, bold, premium, local, sustainable)?",
			"Primary CTA and any deadline or limit?",
			"Any examples to emulate, or competitors/angles to avoid?",
		},
		types.TaskEmail: {
			"Who is the audience (new leads, existing customers, lapsed buyers)?",
			"Primary objective (announce, convert trial, book a call) and success metric?",
			"Offer or benefit (discount, bonus, trial length) including terms and deadline?",
			"Tone and brand rules (must-use or must-avoid words)?",
			"Subject line style (three options?) and body length target?",
			"Any legal or compliance constraints?",
		},
		types.TaskSocial: {
			"Which platforms and audiences are in scope?",
			"What key message or story about “{subject}” should stick?",
			"Any hashtags or keywords to include or avoid?",
			"Tone and format (punchy, witty, informative; emojis yes/no)?",
			"CTA, links and posting cadence?",
			"Examples you like versus no-gos?",
		},
		types.TaskScript: {
			"Platform and duration (IG Reel/Short 20–30s, YouTube 60–120s)?",
			"Core hook for “{subject}” and desired narrative beat?",
			"Available assets (A-roll, B-roll, screens)?",
			"Tone and style (documentary, humorous, snappy, formal)?",
			"Closing CTA and next step?",
			"Any brand or legal constraints?",
		},
		types.TaskImage: {
			"What subject or setting around “{subject}” do you want?",
			"Which style (photo, watercolor, doodle, 3D, isometric, film still)?",
			"Composition, lens and lighting (close/wide, 35mm, golden hour)?",
			"Color mood and palette (bright, moody, vibrant, monochrome)?",
			"Resolution, aspect ratio, negative prompts?",
			"References you like, and why?",
		},
		types.TaskCode: {
			"Which language, framework and runtime version are in play?",
			"What exactly should the code do around “{subject}” (inputs, outputs, edge cases)?",
			"Constraints on dependencies, style or performance?",
			"How will it be tested, and what counts as done?",
			"Any existing code or interfaces it must fit into?",
		},
		types.TaskResearch: {
			"What precise question should the research answer about “{subject}”?",
			"Which source types are acceptable (peer-reviewed, industry, news)?",
			"Time range and geography to consider?",
			"Desired deliverable (summary, annotated list, comparison table) and length?",
			"Known positions or sources that must be included or avoided?",
		},
		types.TaskProductCopy: {
			"Who buys this, and for what use case?",
			"Top three features of “{subject}” mapped to benefits?",
			"Brand voice (premium, playful, technical)?",
			"Where the copy appears (Amazon, PDP, catalog) and its length limits?",
			"Any claims or compliance rules to respect?",
		},
		types.TaskGeneral: {
			"What is the concrete objective?",
			"Who is the audience?",
			"Any constraints or requirements (length, style, deadline)?",
			"Examples or references?",
			"How will success be measured?",
			"What should be explicitly avoided?",
		},
	},
	"de": {
		types.TaskEssay: {
			"Wer ist die Zielgruppe und welcher Ton ist gewünscht (z. B. Klasse, akademisch, neutral)?",
			"Welche Aspekte zu „{subject}“ sollen behandelt werden (Geschichte, Gegenwart, Zukunft, Kultur, Herausforderungen)?",
			"Gewünschte Länge und Struktur (z. B. 800–1200 Wörter, Zwischenüberschriften, Zitate)?",
			"Quellenanforderungen (Anzahl/Art) und Zitierstil (APA/MLA/Chicago)?",
			"Zentrale These oder Fragestellung, die klar herausgearbeitet werden soll?",
			"Gibt es Inhalte, die vermieden werden sollen?",
		},
		types.TaskAd: {
			"Wer genau ist die Zielgruppe (Segment/Alter/Interessen) für „{subject}“?",
			"Welche Kernbotschaft, USP oder welches Angebot steht im Vordergrund?",
			"Welche Kanäle und Formate (IG Reels, TikTok, YT Shorts, statisch/Video) und grobe Laufzeit/Budget?",
			"Ton und Bildsprache (freundlich, frech, premium, lokal, nachhaltig)?",
			"Konkreter CTA und ggf. Frist oder Limitierung?",
			"Gibt es Vorbilder oder Inhalte, die wir vermeiden sollen?",
		},
		types.TaskEmail: {
			"An wen richtet sich die E-Mail (Neukunden, Bestandskunden, inaktive Kunden)?",
			"Hauptziel (Ankündigung, Testphase, Termin buchen) und Erfolgskennzahl?",
			"Angebot oder Benefit (Rabatt, Bonus, Testdauer) inklusive Bedingungen und Frist?",
			"Ton und Markenrichtlinien (Wörter, die vermieden oder verwendet werden sollen)?",
			"Betreffzeilen-Stil (drei Varianten?) und gewünschte Länge des Textes?",
			"Gibt es rechtliche Vorgaben oder Compliance-Regeln?",
		},
		types.TaskSocial: {
			"Welche Plattformen und Zielgruppen stehen im Fokus?",
			"Kernbotschaft oder Story zu „{subject}“, die hängen bleiben soll?",
			"Hashtags oder Keywords, die genutzt oder vermieden werden sollen?",
			"Ton und Format (knapp, witzig, informativ; Emojis ja/nein)?",
			"CTA, Links und Posting-Kadenz?",
			"Beispiele, die gefallen, bzw. No-Gos?",
		},
		types.TaskScript: {
			"Plattform und Länge (IG Reel/Short 20–30 s, YouTube 60–120 s)?",
			"Kern-Hook zu „{subject}“ und gewünschter Spannungsbogen?",
			"Vorhandene Assets (A-Roll, B-Roll, Screens)?",
			"Ton und Stil (dokumentarisch, humorvoll, dynamisch, seriös)?",
			"CTA oder Schlussbotschaft und gewünschte nächste Aktion?",
			"Gibt es rechtliche oder Marken-Einschränkungen?",
		},
		types.TaskImage: {
			"Welches Motiv oder Setting zu „{subject}“?",
			"Welcher Stil (Foto, Aquarell, Doodle, 3D, Isometrie, Filmstill)?",
			"Komposition, Objektiv, Beleuchtung (nah/weit, 35 mm, Golden Hour)?",
			"Farbwelt und Stimmung (hell, moody, lebhaft, monochrom)?",
			"Auflösung, Seitenverhältnis, Negative Prompts?",
			"Referenzen, die dir gefallen, und warum?",
		},
		types.TaskGeneral: {
			"Was ist das konkrete Ziel?",
			"Wer ist das Publikum?",
			"Welche Anforderungen oder Einschränkungen (Länge, Stil, Frist)?",
			"Beispiele oder Referenzen?",
			"Wie misst du den Erfolg?",
			"Was soll ausdrücklich vermieden werden?",
		},
	},
}

// Questions returns 4–8 clarifying questions for the goal. Unknown
// language/task pairs fall through to the generic table, so the result is
// never empty.
func Questions(goal string, task types.TaskType, language string) []string {
	subject := classify.Subject(goal)
	if subject == "" {
		subject = "your subject"
	}

	templates := lookupQuestions(language, task)
	out := make([]string, 0, len(templates))
	for _, q := range templates {
		out = append(out, strings.ReplaceAll(q, "{subject}", subject))
	}
	if len(out) > 8 {
		out = out[:8]
	}
	return out
}

func lookupQuestions(language string, task types.TaskType) []string {
	byTask, ok := questionTables[primaryTag(language)]
	if !ok {
		byTask = questionTables["en"]
	}
	if qs, ok := byTask[task]; ok {
		return qs
	}
	if qs, ok := byTask[types.TaskGeneral]; ok {
		return qs
	}
	return questionTables["en"][types.TaskGeneral]
}

// primaryTag reduces a BCP-47-like tag to its primary subtag ("de-AT" → "de").
func primaryTag(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if i := strings.IndexAny(language, "-_"); i > 0 {
		language = language[:i]
	}
	return language
}

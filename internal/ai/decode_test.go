package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"plain fences", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json fences", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"single line", "```json{\"a\":1}```", `{"a":1}`},
		{"leading whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
		{"no closing fence", "```json\n{\"a\":1}", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.in))
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	type payload struct {
		Language  string   `json:"language"`
		Questions []string `json:"questions"`
	}

	got, ok := DecodeStrict[payload]("```json\n{\"language\":\"de\",\"questions\":[\"q1\",\"q2\"]}\n```")
	assert.True(t, ok)
	assert.Equal(t, "de", got.Language)
	assert.Equal(t, []string{"q1", "q2"}, got.Questions)

	_, ok = DecodeStrict[payload]("here are your questions:\n1. q1\n2. q2")
	assert.False(t, ok)
}

func TestExtractLines(t *testing.T) {
	raw := "```\n1. First question?\n- Second question?\n• Third question?\n\n  4) Fourth question?\n```"
	assert.Equal(t, []string{
		"First question?",
		"Second question?",
		"Third question?",
		"Fourth question?",
	}, ExtractLines(raw))

	assert.Empty(t, ExtractLines(""))
	assert.Empty(t, ExtractLines("```\n\n\n```"))
}

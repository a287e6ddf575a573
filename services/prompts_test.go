package services

import (
	"testing"

	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{"ThreeLines", "Offline mode\nShare links\nKeyboard shortcuts", []string{"Offline mode", "Share links", "Keyboard shortcuts"}},
		{"BlankLinesAndPadding", "\n  Offline mode  \n\n\nShare links\n", []string{"Offline mode", "Share links"}},
		{"KeepsFirstThree", "a\nb\nc\nd\ne", []string{"a", "b", "c"}},
		{"Empty", "   ", []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSuggestions(tc.reply))
		})
	}
}

func TestParseSummary(t *testing.T) {
	t.Run("AllLabels", func(t *testing.T) {
		reply := "SUMMARY: Focused on onboarding.\r\nTHEMES: ux, growth, , retention\r\nTOP_PRIORITY: Guided tour"
		got := ParseSummary(reply)

		assert.Equal(t, "Focused on onboarding.", got.Summary)
		assert.Equal(t, []string{"ux", "growth", "retention"}, got.Themes)
		require.NotNil(t, got.TopPriority)
		assert.Equal(t, "Guided tour", *got.TopPriority)
	})

	t.Run("IgnoresChatter", func(t *testing.T) {
		got := ParseSummary("Here you go!\nSUMMARY: Short.\nThanks")
		assert.Equal(t, "Short.", got.Summary)
		assert.Equal(t, []string{}, got.Themes)
		assert.Nil(t, got.TopPriority)
	})

	t.Run("Unlabelled", func(t *testing.T) {
		got := ParseSummary("no structure at all")
		assert.Empty(t, got.Summary)
		assert.NotNil(t, got.Themes)
		assert.Nil(t, got.TopPriority)
	})
}

func TestParseCategories(t *testing.T) {
	assert.Equal(t, []string{"frontend", "ux"}, ParseCategories(" Frontend, UX "))
	assert.Equal(t, []string{"a", "b", "c"}, ParseCategories("a, b, , c, d"))
	assert.Equal(t, []string{}, ParseCategories(""))
}

func TestIdeaLines(t *testing.T) {
	description := "Let users work on planes"
	empty := ""
	ideas := []models.Idea{
		{Title: "Offline mode", Description: &description, Votes: 3},
		{Title: "Dark mode"},
		{Title: "Export", Description: &empty},
	}

	assert.Equal(t,
		"- Offline mode: Let users work on planes\n- Dark mode: No description\n- Export: No description",
		ideaLines(ideas, false))
	assert.Equal(t,
		"- Offline mode (votes: 3): Let users work on planes\n- Dark mode (votes: 0): No description\n- Export (votes: 0): No description",
		ideaLines(ideas, true))
	assert.Equal(t, "No ideas yet.", ideaLines(nil, false))
}

func TestPromptsRender(t *testing.T) {
	prompt, err := suggestionsPrompt.Format(map[string]any{"board_name": "Sprint", "ideas": "- A: B"})
	require.NoError(t, err)
	assert.Contains(t, prompt, `board called "Sprint"`)
	assert.Contains(t, prompt, "- A: B")

	prompt, err = categorizePrompt.Format(map[string]any{"title": "Fix login", "description": "No description", "existing_tags": "None yet"})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Title: Fix login")
	assert.Contains(t, prompt, "Existing tags in the system: None yet")
}

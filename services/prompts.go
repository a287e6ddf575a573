package services

import (
	"fmt"
	"strings"

	"github.com/rpupo63/ideaboard-backend/models"
	"github.com/tmc/langchaingo/prompts"
)

const (
	maxSuggestions = 3
	maxCategories  = 3
)

var suggestionsPrompt = prompts.NewPromptTemplate(`You are helping brainstorm ideas for a board called "{{.board_name}}".

Here are the existing ideas on this board:
{{.ideas}}

Generate exactly 3 new, creative idea suggestions that complement the existing ideas. Each suggestion should be a concise title (max 50 characters).

Respond with just the 3 ideas, one per line, no numbering or bullets.`, []string{"board_name", "ideas"})

var summaryPrompt = prompts.NewPromptTemplate(`Analyze the ideas on this board called "{{.board_name}}":

{{.ideas}}

Provide:
1. A brief summary (2-3 sentences) of the board's focus
2. The main themes (list 2-4 themes, just keywords)
3. The highest priority idea based on votes and potential impact (just the title)

Format your response exactly like this:
SUMMARY: [your summary]
THEMES: [theme1], [theme2], [theme3]
TOP_PRIORITY: [idea title]`, []string{"board_name", "ideas"})

var categorizePrompt = prompts.NewPromptTemplate(`Suggest tags for this idea:

Title: {{.title}}
Description: {{.description}}

Existing tags in the system: {{.existing_tags}}

Suggest 1-3 tags that would help categorize this idea. Prefer existing tags if they fit. If suggesting new tags, keep them short (1-2 words).

Respond with just the tag names, comma-separated, nothing else.`, []string{"title", "description", "existing_tags"})

func describe(description *string) string {
	if description == nil || *description == "" {
		return "No description"
	}
	return *description
}

// ideaLines renders one "- title: description" line per idea
func ideaLines(ideas []models.Idea, withVotes bool) string {
	if len(ideas) == 0 {
		return "No ideas yet."
	}

	lines := make([]string, 0, len(ideas))
	for _, idea := range ideas {
		if withVotes {
			lines = append(lines, fmt.Sprintf("- %s (votes: %d): %s", idea.Title, idea.Votes, describe(idea.Description)))
		} else {
			lines = append(lines, fmt.Sprintf("- %s: %s", idea.Title, describe(idea.Description)))
		}
	}
	return strings.Join(lines, "\n")
}

// ParseSuggestions keeps the first three non-blank lines of the reply, trimmed
func ParseSuggestions(reply string) []string {
	suggestions := make([]string, 0, maxSuggestions)
	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// Summary is the structured result of summarizing a board
type Summary struct {
	Summary     string   `json:"summary"`
	Themes      []string `json:"themes"`
	TopPriority *string  `json:"top_priority"`
}

// ParseSummary extracts the SUMMARY, THEMES and TOP_PRIORITY lines of the reply.
// Unrecognized lines are ignored and a missing label keeps its zero value.
func ParseSummary(reply string) Summary {
	summary := Summary{Themes: []string{}}

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			summary.Summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
		case strings.HasPrefix(line, "THEMES:"):
			summary.Themes = splitList(strings.TrimPrefix(line, "THEMES:"), false)
		case strings.HasPrefix(line, "TOP_PRIORITY:"):
			top := strings.TrimSpace(strings.TrimPrefix(line, "TOP_PRIORITY:"))
			summary.TopPriority = &top
		}
	}

	return summary
}

// ParseCategories lower-cases the comma separated tag names of the reply and keeps the first three
func ParseCategories(reply string) []string {
	tags := splitList(strings.TrimSpace(reply), true)
	if len(tags) > maxCategories {
		tags = tags[:maxCategories]
	}
	return tags
}

func splitList(raw string, lower bool) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lower {
			part = strings.ToLower(part)
		}
		out = append(out, part)
	}
	return out
}

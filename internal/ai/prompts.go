package ai

import (
	"fmt"
)

const questionSystemPrompt = `You are an expert trivia question generator.
Each question should be unique, challenging, and engaging. Avoid generating questions that are too similar to each other.
Each question should have a clear, short answer, belong to a specific category and have a difficulty level of hard.`

const summarySystemPrompt = `You are an AI assistant specializing in summarizing trivia game history for players.
Focus on key statistics, interesting moments, and insights into how the players performed.
Consider overall performance, strong and weak categories, memorable questions or answers, and how the named player compared to the others.
Keep the summary to one short paragraph.`

const analysisSystemPrompt = `You are an AI assistant specializing in analyzing trivia game history.
Identify question categories that are consistently challenging for players.
Consider which categories have the most incorrect answers across games and where players score lower.
Reply with the challenging categories as a comma-separated list.`

func questionUserPrompt(count int, locale string) string {
	prompt := fmt.Sprintf("Generate %d difficult trivia questions on various topics.", count)
	if locale != "" && locale != "en" {
		prompt += fmt.Sprintf(" Write the questions and answers in the language with code %q.", locale)
	}
	return prompt
}

func summaryUserPrompt(transcript, winner string) string {
	return fmt.Sprintf("Game History:\n%s\n\nPlayer Name: %s", transcript, winner)
}

func analysisUserPrompt(transcript string) string {
	return fmt.Sprintf("Game History:\n%s", transcript)
}

var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question":   map[string]any{"type": "string", "description": "The trivia question."},
					"answer":     map[string]any{"type": "string", "description": "The correct answer to the question."},
					"category":   map[string]any{"type": "string", "description": "The category of the trivia question."},
					"difficulty": map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
				},
				"required":             []string{"question", "answer", "category", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []string{"questions"},
	"additionalProperties": false,
}

var summarySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"summary": map[string]any{"type": "string", "description": "A summary of the game history for the player."},
	},
	"required":             []string{"summary"},
	"additionalProperties": false,
}

var analysisSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"challengingCategories": map[string]any{"type": "string", "description": "Comma-separated list of challenging categories."},
	},
	"required":             []string{"challengingCategories"},
	"additionalProperties": false,
}

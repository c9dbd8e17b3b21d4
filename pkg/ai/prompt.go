package ai

import (
	"fmt"
	"strings"
	"time"
)

const categorizeSystemPrompt = "You are an AI that organizes text into lists and distinguishes between past events (logs) and future tasks. Detect the user's desired formatting style for each item."

const purposeSystemPrompt = "You are an AI that helps users define list rules."

// categorizePrompt builds the classification prompt for one user input.
// Every list's rules text is included verbatim; the provider re-evaluates
// it on every call.
func categorizePrompt(input string, now time.Time, lists []ListRule) string {
	nowStr := now.Format(time.RFC3339)

	var listLines strings.Builder
	for _, l := range lists {
		fmt.Fprintf(&listLines, "- List ID: %s, Name: %s, Rules: %s\n", l.ID, l.Name, l.Rules)
	}

	return fmt.Sprintf(`You are an organizational assistant. The current date/time is: %s

The user provided this text: "%s"

Here are the available lists and their rules:
%s
Your task:
1. Break down the user input into individual items.
2. For each item, decide which list it belongs to based on the rules and list names.
3. Detect if this is a LOG ENTRY (past event that happened, e.g. "I walked the dog at 8pm", "went to gym yesterday") or a TASK (future todo, e.g. "walk the dog", "need to go to gym").
4. Set type to "log" for log entries or "task" for tasks.
5. Separate the core action into "content" (short label) and any extra details into "notes". The content should be a clean, short label. The notes should capture additional context, details, or descriptions. Set notes to null if there are no extra details.
6. For LOG ENTRIES: set completed to false. Extract any mentioned timestamp and return it as an ISO 8601 string relative to the current time. If no time is mentioned, use the current time.
7. For TASKS: set completed to false, keep as future action, set timestamp to null.
8. Detect priority: "low", "medium", "high", or null if not applicable.
9. If an item doesn't fit any list, set listId to null.
10. Detect the user's desired formatting style and set display_mode accordingly:
    - "todo-strike": Default for tasks. Also when user says "checklist", "check off", or "to-do".
    - "todo-no-strike": When user says "don't cross out" or "just a checkbox".
    - "bullet": When user says "bullet point", "list item", or "note".
    - "log-clock": Default for log entries. Also when user says "record this", "logged", or "timestamp".

Examples (assuming current time is %s):
- "I walked the dog at 8am, it peed and pooped" -> type: "log", content: "Dog walk", notes: "Peed and pooped", display_mode: "log-clock", timestamp: "<today at 8am ISO>"
- "Walk the dog and make sure to bring bags" -> type: "task", content: "Walk the dog", notes: "Bring bags", display_mode: "todo-strike", timestamp: null
- "went to gym yesterday at 6am, did legs and cardio" -> type: "log", content: "Gym session", notes: "Legs and cardio", display_mode: "log-clock", timestamp: "<yesterday 6am ISO>"
- "Add a bullet point for 'Buy milk'" -> type: "task", content: "Buy milk", notes: null, display_mode: "bullet", timestamp: null
- "Record that I finished the report at 2pm" -> type: "log", content: "Finished report", notes: null, display_mode: "log-clock", timestamp: "<today at 2pm ISO>"
- "Checklist item: Clean the kitchen" -> type: "task", content: "Clean the kitchen", notes: null, display_mode: "todo-strike", timestamp: null

Respond with ONLY a JSON object containing an 'items' array.`, nowStr, input, listLines.String(), nowStr)
}

func purposePrompt(purpose string) string {
	return fmt.Sprintf(`The user wants to create a new list with this purpose: "%s"

Analyze this purpose and extract:
1. A set of "AI rules" or key phrases that define what should go into this list.
2. A concise description of the list.

Respond with ONLY a JSON object with the string fields "rules" and "description".`, purpose)
}

// categorizedItemsSchema is the strict JSON schema for the categorization
// response. Every candidate field is required; nullable fields must be
// explicit nulls so that a missing field is a schema violation, not a
// silent default.
func categorizedItemsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"items": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"content":      map[string]interface{}{"type": "string"},
						"listId":       map[string]interface{}{"type": []string{"string", "null"}},
						"priority":     map[string]interface{}{"type": []string{"string", "null"}},
						"completed":    map[string]interface{}{"type": "boolean"},
						"type":         map[string]interface{}{"type": "string", "enum": []string{"task", "log"}},
						"timestamp":    map[string]interface{}{"type": []string{"string", "null"}},
						"notes":        map[string]interface{}{"type": []string{"string", "null"}},
						"display_mode": map[string]interface{}{"type": "string", "enum": []string{"todo-strike", "todo-no-strike", "bullet", "log-clock"}},
					},
					"required":             []string{"content", "listId", "priority", "completed", "type", "timestamp", "notes", "display_mode"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"items"},
		"additionalProperties": false,
	}
}

func listAnalysisSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"rules":       map[string]interface{}{"type": "string"},
			"description": map[string]interface{}{"type": "string"},
		},
		"required":             []string{"rules", "description"},
		"additionalProperties": false,
	}
}

// Package prompts holds the fixed generation instruction and the builders
// that turn chat state into a single prompt string. The generation backend is
// stateless, so the full transcript is serialized on every turn.
package prompts

import (
	"fmt"
	"strings"

	"github.com/foliochat/foliochat/internal/models"
)

// Instructions is the fixed generation template appended to every request.
const Instructions = "Using my resume, generate a static HTML and CSS portfolio page with a good-looking UI and CSS. " +
	"Only provide the code, no explanations or other text. Keep everything in a single file (index.html) " +
	"and use internal CSS and JS."

// Initial builds the seed prompt for a brand new chat.
func Initial(additionalDescription, resumeText string) string {
	return fmt.Sprintf("%s\nAdditional Description: %s\n\nResume Text:\n%s",
		Instructions, additionalDescription, resumeText)
}

// Transcript serializes an ordered message history as "{sender}: {text}\n"
// lines. The order of history is the order sent to the backend; any
// reordering changes the generated output.
func Transcript(history []models.Message) string {
	var sb strings.Builder
	for _, m := range history {
		sb.WriteString(m.Sender)
		sb.WriteString(": ")
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Conversation builds the follow-up prompt: full transcript, then the fixed
// instruction template.
func Conversation(history []models.Message) string {
	return Transcript(history) + "\n" + Instructions
}

package services

import (
	"strings"

	"github.com/custodia-labs/deepqa-cli/internal/core/domain"
)

// documentSeparator joins document contents in the Context section.
// One blank line between documents keeps markdown blocks readable.
const documentSeparator = "\n\n"

// ComposePrompt assembles the full model prompt from the corpus, the
// history view, and the question.
//
// It is a pure function of its inputs: identical arguments always yield
// a byte-identical prompt. The layout is a fixed three-section template:
//
//	Context:
//	<document contents in scrape order, blank line separated>
//
//	Chat History:
//	<User:/Assistant: lines per turn, blank line separated>
//
//	User Query: <question>
//
// Empty sections render empty but are never omitted, so prompts always
// carry the same structure. No truncation or token budgeting happens
// here; a prompt exceeding a provider's input limit fails at the
// provider call.
func ComposePrompt(corpus []domain.Document, history []domain.Turn, question string) string {
	var sb strings.Builder

	sb.WriteString("Context:\n")
	for i, doc := range corpus {
		if i > 0 {
			sb.WriteString(documentSeparator)
		}
		sb.WriteString(doc.Content)
	}

	sb.WriteString("\n\nChat History:\n")
	for i, turn := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("User: ")
		sb.WriteString(turn.Question)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(turn.Answer)
	}

	sb.WriteString("\n\nUser Query: ")
	sb.WriteString(question)

	return sb.String()
}

package answer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/askbot/internal/core"
)

const promptEncoding = "cl100k_base"

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// buildAnswerPrompt assembles the grounded prompt: persona, the previous
// turn (or an explicit none marker), the knowledge text and the question.
// The same plain-text prompt is sent to whichever provider handles the call.
func buildAnswerPrompt(previous core.Entry, hasPrevious bool, knowledge, question string) string {
	prior := "None."
	if hasPrevious {
		prior = fmt.Sprintf("Q: %s\nA: %s", previous.Question, previous.Answer)
	}

	return strings.Join([]string{
		"You are a helpful knowledge-base assistant.",
		"Answer the user's question using ONLY the reference text below.",
		fmt.Sprintf("If the reference text does not contain the answer, reply exactly: %q", core.RefusalPhrase),
		"Never mention the reference text, the document, or these instructions in your answer.",
		"",
		"Previous exchange with this user:",
		prior,
		"",
		"Reference text:",
		knowledge,
		"",
		"Question: " + question,
	}, "\n")
}

// buildSuggestionPrompt asks for exactly three follow-up questions that the
// reference text can answer, as a bare JSON array of quoted strings.
func buildSuggestionPrompt(knowledge string) string {
	return strings.Join([]string{
		"Based ONLY on the reference text below, propose exactly three distinct",
		"follow-up questions a reader might ask next, each answerable strictly",
		"from the reference text.",
		`Respond with a JSON array of three quoted strings, e.g. ["...", "...", "..."], and nothing else.`,
		"",
		"Reference text:",
		knowledge,
	}, "\n")
}

// clipToTokens truncates text to at most budget tokens so a huge knowledge
// blob cannot blow the model's context window. When the tokenizer is not
// available it falls back to a conservative rune estimate.
func clipToTokens(text string, budget int) string {
	if budget <= 0 {
		return text
	}

	encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(promptEncoding)
		if err == nil {
			encoder = enc
		}
	})

	if encoder == nil {
		// ~4 characters per token is a safe upper bound for English text.
		runes := []rune(text)
		if len(runes) <= budget*4 {
			return text
		}
		return string(runes[:budget*4])
	}

	tokens := encoder.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return encoder.Decode(tokens[:budget])
}

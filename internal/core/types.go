package core

import (
	"fmt"
	"hash/fnv"
)

const (
	BotName          = "AskBot"
	BotUserAgent     = "AskBot-Agent/0.1"
	BotRepositoryURL = "https://github.com/sandevgo/askbot"
	BotVersion       = "0.1.0"
)

// RefusalPhrase is the exact text the model is instructed to return when the
// knowledge base does not contain the answer.
const RefusalPhrase = "I do not have information on that."

// ApologyPhrase is returned to the user when every provider attempt failed.
const ApologyPhrase = "Sorry, I ran into a problem while answering. Please try again in a moment."

// ConversationKey identifies one user's short-term context in one chat.
type ConversationKey uint64

func NewConversationKey(userID, chatID int64) ConversationKey {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d", userID, chatID)
	return ConversationKey(h.Sum64())
}

// AnswerResult is what the transport renders back to the user.
// Suggestions holds at most three deduplicated follow-up questions.
type AnswerResult struct {
	Text        string
	Suggestions []string
}

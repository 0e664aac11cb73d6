package core

// Entry is the single remembered turn for one conversation key.
type Entry struct {
	Question string
	Answer   string
}

// Memory is the short-lived per-conversation cache. An entry is never
// returned more than its TTL after the last write.
type Memory interface {
	Get(key ConversationKey) (Entry, bool)
	Put(key ConversationKey, question, answer string)
}

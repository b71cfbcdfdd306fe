package domain

type ChatID int64

type UserID int64

// SessionKey identifies one person's conversation inside a chat. Group chats are shared by
// several waiters, so a wizard cannot be keyed by the chat alone.
type SessionKey struct {
	ChatID ChatID
	UserID UserID
}

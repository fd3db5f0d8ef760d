package gigawall

import "gigawall/internal/model"

// Store provides durable access to the portal's domain collections and the
// three remote-deployment settings. Reads on never-written keys return seed
// or zero defaults; a corrupt stored value is treated the same as an absent
// one rather than surfacing a parse error.
type Store interface {
	// Content catalog. AddContent prepends the item (newest first) and
	// creates a "publish succeeded" system notification for the creator.
	GetContent() ([]model.Content, error)
	SaveContent(items []model.Content) error
	AddContent(item model.Content) error

	// Notifications. The collection is global; reads filter by user.
	// AddNotification prepends.
	GetNotifications(userID string) ([]model.Notification, error)
	AddNotification(n model.Notification) error

	// Comments, one append-only thread per content item.
	GetComments(contentID string) ([]model.Comment, error)
	AddComment(c model.Comment) error

	// Like-set for the local profile. ToggleLike flips membership and
	// returns the new state: true when the id is now liked.
	ToggleLike(contentID string) (bool, error)
	IsLiked(contentID string) (bool, error)

	// Chat transcript. ClearChat removes the whole transcript.
	GetChatHistory() ([]model.ChatMessage, error)
	AddChatMessage(msg model.ChatMessage) error
	ClearChat() error

	// Remote deployment settings, each independently settable.
	GetRemoteConfig() (model.RemoteConfig, error)
	SetRepoURL(url string) error
	SetRepoPrivate(private bool) error
	SetToken(token string) error

	// Subscribe registers fn for store change events and returns an
	// unsubscribe func. Callers must unsubscribe when done.
	Subscribe(fn func(Event)) (unsubscribe func())

	Close() error
}

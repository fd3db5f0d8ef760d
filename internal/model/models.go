package model

// ContentType identifies what kind of media a content item carries.
type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentImage ContentType = "image"
	ContentFile  ContentType = "file"
)

// Content is a published media or file record with engagement counters.
type Content struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Type                ContentType `json:"type"`
	CreatorID           string      `json:"creatorId"`
	Thumbnail           string      `json:"thumbnail"`
	URL                 string      `json:"url"`
	Views               int         `json:"views"`
	Likes               int         `json:"likes"`
	Downloads           int         `json:"downloads"`
	CreatedAt           string      `json:"createdAt"`
	Tags                []string    `json:"tags"`
	Category            string      `json:"category"`
	RestrictedCountries []string    `json:"restrictedCountries,omitempty"`
	AgeRestricted       bool        `json:"ageRestricted"`
	Version             string      `json:"version,omitempty"`
	Changelog           string      `json:"changelog,omitempty"`
	Requirements        string      `json:"requirements,omitempty"`
}

// NotificationType classifies a notification.
type NotificationType string

const (
	NotifLike       NotificationType = "like"
	NotifComment    NotificationType = "comment"
	NotifModeration NotificationType = "moderation"
	NotifSystem     NotificationType = "system"
)

// Notification is a per-user message shown in the portal's notification tray.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	ContentID string           `json:"contentId,omitempty"`
	CreatedAt string           `json:"createdAt"`
	Read      bool             `json:"read"`
}

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
)

// Comment belongs to exactly one content item's thread.
type Comment struct {
	ID         string        `json:"id"`
	ContentID  string        `json:"contentId"`
	UserID     string        `json:"userId"`
	UserName   string        `json:"userName"`
	UserHandle string        `json:"userHandle"`
	Text       string        `json:"text"`
	CreatedAt  string        `json:"createdAt"`
	Status     CommentStatus `json:"status"`
}

// ChatMessage is one entry in the portal's single chat transcript.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
	IsAI       bool   `json:"isAi,omitempty"`
}

// RemoteConfig holds the three independently settable deployment settings.
// There is no cross-field invariant; each slot is persisted on its own.
type RemoteConfig struct {
	RepoURL string
	Private bool
	Token   string
}

// Repository is the metadata GitHub returns for a verified repository.
type Repository struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
}

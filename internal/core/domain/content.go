package domain

import "time"

// DateLayout is the calendar date format used for item timestamps.
const DateLayout = "2006-01-02"

// ContentKind identifies the type of a collected item.
type ContentKind string

// Available content kinds.
const (
	// KindPost is a submission authored by the account.
	KindPost ContentKind = "post"

	// KindComment is a comment authored by the account.
	KindComment ContentKind = "comment"
)

// IsValid returns true if the kind is recognised.
func (k ContentKind) IsValid() bool {
	switch k {
	case KindPost, KindComment:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ContentKind) String() string {
	return string(k)
}

// ContentItem is the normalised record of one post or comment.
// It is the canonical representation produced by the content collector.
type ContentItem struct {
	// Kind is the item type (post or comment).
	Kind ContentKind

	// Title is the submission title. Always empty for comments.
	Title string

	// Text is the body text. Absent bodies are represented as "",
	// never as a missing value.
	Text string

	// Community is the name of the forum the item was posted in.
	Community string

	// Timestamp is the item's creation date, formatted as YYYY-MM-DD.
	Timestamp string

	// SourceURL is the fully qualified permanent link to the item.
	SourceURL string
}

// NewContentItem builds a ContentItem from raw provider fields,
// normalising the creation time to a calendar date.
func NewContentItem(kind ContentKind, title, text, community string, createdAt time.Time, sourceURL string) ContentItem {
	return ContentItem{
		Kind:      kind,
		Title:     title,
		Text:      text,
		Community: community,
		Timestamp: createdAt.Format(DateLayout),
		SourceURL: sourceURL,
	}
}

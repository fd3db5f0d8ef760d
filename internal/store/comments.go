package store

import (
	"gigawall/internal/gigawall"
	"gigawall/internal/model"
)

// GetComments returns the comment thread for a content item, oldest first.
func (s *Store) GetComments(contentID string) ([]model.Comment, error) {
	var thread []model.Comment
	if _, err := s.get(commentsPrefix+contentID, &thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// AddComment appends c to its content item's thread. Threads are
// append-only; moderation flips the status field, never removes entries.
func (s *Store) AddComment(c model.Comment) error {
	thread, err := s.GetComments(c.ContentID)
	if err != nil {
		return err
	}

	if err := s.put(commentsPrefix+c.ContentID, append(thread, c)); err != nil {
		return err
	}

	s.bus.Publish(gigawall.Event{Type: gigawall.EventCommentAdded, ContentID: c.ContentID})
	return nil
}

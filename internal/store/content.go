package store

import (
	"fmt"
	"time"

	"gigawall/internal/gigawall"
	"gigawall/internal/model"
)

// GetContent returns the content catalog, newest first. A store that has
// never been written returns the seed catalog.
func (s *Store) GetContent() ([]model.Content, error) {
	var items []model.Content
	found, err := s.get(keyContent, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedContent(), nil
	}
	return items, nil
}

// SaveContent replaces the whole catalog and announces the change.
func (s *Store) SaveContent(items []model.Content) error {
	if err := s.put(keyContent, items); err != nil {
		return err
	}
	s.bus.Publish(gigawall.Event{Type: gigawall.EventContentChanged})
	return nil
}

// AddContent prepends the new item and creates a publish notification for
// its creator.
func (s *Store) AddContent(item model.Content) error {
	current, err := s.GetContent()
	if err != nil {
		return err
	}

	updated := append([]model.Content{item}, current...)
	if err := s.SaveContent(updated); err != nil {
		return err
	}

	return s.AddNotification(model.Notification{
		ID:        s.idgen.New(),
		UserID:    item.CreatorID,
		Type:      model.NotifSystem,
		Title:     "Upload complete",
		Message:   fmt.Sprintf("Your content %q was published successfully.", item.Title),
		ContentID: item.ID,
		CreatedAt: s.clock.Now().UTC().Format(time.RFC3339),
	})
}

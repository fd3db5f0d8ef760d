package store

import (
	"gigawall/internal/gigawall"
	"gigawall/internal/model"
)

// GetNotifications returns the notifications addressed to userID, newest
// first. The underlying collection is global; filtering happens on read.
func (s *Store) GetNotifications(userID string) ([]model.Notification, error) {
	all, err := s.allNotifications()
	if err != nil {
		return nil, err
	}

	var out []model.Notification
	for _, n := range all {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// AddNotification prepends n to the global collection and announces the
// change.
func (s *Store) AddNotification(n model.Notification) error {
	all, err := s.allNotifications()
	if err != nil {
		return err
	}

	updated := append([]model.Notification{n}, all...)
	if err := s.put(keyNotifications, updated); err != nil {
		return err
	}

	s.bus.Publish(gigawall.Event{Type: gigawall.EventNotificationsChanged})
	return nil
}

func (s *Store) allNotifications() ([]model.Notification, error) {
	var all []model.Notification
	found, err := s.get(keyNotifications, &all)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedNotifications(), nil
	}
	return all, nil
}

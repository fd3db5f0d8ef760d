package store

import "gigawall/internal/model"

// GetChatHistory returns the chat transcript in send order.
func (s *Store) GetChatHistory() ([]model.ChatMessage, error) {
	var history []model.ChatMessage
	if _, err := s.get(keyChat, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// AddChatMessage appends msg to the transcript.
func (s *Store) AddChatMessage(msg model.ChatMessage) error {
	history, err := s.GetChatHistory()
	if err != nil {
		return err
	}
	return s.put(keyChat, append(history, msg))
}

// ClearChat deletes the transcript wholesale. Observably the same as
// writing an empty list, but the key is genuinely removed.
func (s *Store) ClearChat() error {
	return s.delete(keyChat)
}

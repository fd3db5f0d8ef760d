package store

// ToggleLike flips contentID's membership in the like-set and returns the
// new state: true when the id is now liked. Toggling twice restores the
// original set.
func (s *Store) ToggleLike(contentID string) (bool, error) {
	likes, err := s.likeSet()
	if err != nil {
		return false, err
	}

	liked := false
	idx := -1
	for i, id := range likes {
		if id == contentID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		likes = append(likes[:idx], likes[idx+1:]...)
	} else {
		likes = append(likes, contentID)
		liked = true
	}

	if err := s.put(keyLikes, likes); err != nil {
		return false, err
	}
	return liked, nil
}

// IsLiked reports whether contentID is in the like-set.
func (s *Store) IsLiked(contentID string) (bool, error) {
	likes, err := s.likeSet()
	if err != nil {
		return false, err
	}
	for _, id := range likes {
		if id == contentID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) likeSet() ([]string, error) {
	var likes []string
	if _, err := s.get(keyLikes, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

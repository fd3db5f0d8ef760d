package store

import "gigawall/internal/model"

// GetRemoteConfig reads the three deployment settings. Absent slots come
// back as their zero values.
func (s *Store) GetRemoteConfig() (model.RemoteConfig, error) {
	var cfg model.RemoteConfig
	if _, err := s.get(keyRepoURL, &cfg.RepoURL); err != nil {
		return model.RemoteConfig{}, err
	}
	if _, err := s.get(keyRepoPrivate, &cfg.Private); err != nil {
		return model.RemoteConfig{}, err
	}
	if _, err := s.get(keyToken, &cfg.Token); err != nil {
		return model.RemoteConfig{}, err
	}
	return cfg, nil
}

func (s *Store) SetRepoURL(url string) error {
	return s.put(keyRepoURL, url)
}

func (s *Store) SetRepoPrivate(private bool) error {
	return s.put(keyRepoPrivate, private)
}

func (s *Store) SetToken(token string) error {
	return s.put(keyToken, token)
}

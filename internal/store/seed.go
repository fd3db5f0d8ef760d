package store

import "gigawall/internal/model"

// Seed data returned by reads on a store that has never been written. Each
// call returns a fresh slice so callers can mutate freely.

func SeedContent() []model.Content {
	return []model.Content{
		{
			ID:          "c-001",
			Title:       "Neon Horizons",
			Description: "A looping animation study of a synthwave skyline.",
			Type:        model.ContentVideo,
			CreatorID:   "u-admin",
			Thumbnail:   "/media/thumbs/neon-horizons.jpg",
			URL:         "/media/neon-horizons.mp4",
			Views:       1204,
			Likes:       311,
			Downloads:   58,
			CreatedAt:   "2026-05-02T14:00:00Z",
			Tags:        []string{"animation", "synthwave", "loop"},
			Category:    "Digital Art",
		},
		{
			ID:          "c-002",
			Title:       "Mist Over the Valley",
			Description: "Dawn photography series from the northern trails.",
			Type:        model.ContentImage,
			CreatorID:   "u-lena",
			Thumbnail:   "/media/thumbs/mist-valley.jpg",
			URL:         "/media/mist-valley.jpg",
			Views:       847,
			Likes:       190,
			Downloads:   23,
			CreatedAt:   "2026-04-18T07:30:00Z",
			Tags:        []string{"photography", "nature", "fog"},
			Category:    "Photography",
		},
		{
			ID:            "c-003",
			Title:         "Pixel Forge 1.4",
			Description:   "Tile-map editor build with the new export pipeline.",
			Type:          model.ContentFile,
			CreatorID:     "u-admin",
			Thumbnail:     "/media/thumbs/pixel-forge.png",
			URL:           "/media/pixel-forge-1.4.zip",
			Views:         412,
			Likes:         96,
			Downloads:     201,
			CreatedAt:     "2026-03-29T19:45:00Z",
			Tags:          []string{"tools", "gamedev", "editor"},
			Category:      "Software",
			Version:       "1.4.0",
			Changelog:     "Adds PNG sprite-sheet export and fixes palette drift.",
			AgeRestricted: false,
		},
	}
}

func SeedNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:        "n-001",
			UserID:    "u-admin",
			Type:      model.NotifSystem,
			Title:     "Welcome to Gigawall",
			Message:   "Your portal is ready. Publish something from the studio.",
			CreatedAt: "2026-03-01T12:00:00Z",
			Read:      false,
		},
		{
			ID:        "n-002",
			UserID:    "u-lena",
			Type:      model.NotifLike,
			Title:     "New like",
			Message:   "Someone liked \"Mist Over the Valley\".",
			ContentID: "c-002",
			CreatedAt: "2026-04-19T10:12:00Z",
			Read:      true,
		},
	}
}

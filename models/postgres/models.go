package postgres

// All lists every model in dependency order, parents first.
func All() []any {
	return []any{
		&User{},
		&UserProfile{},
		&Game{},
		&GameVersion{},
		&Purchase{},
		&Review{},
		&Achievement{},
		&AchievementProgress{},
		&Category{},
		&GameCategory{},
		&GamePlatform{},
		&Favorite{},
		&Event{},
		&EventParticipation{},
		&Comment{},
		&CommentReport{},
		&GameReport{},
		&MaintenanceWindow{},
		&PriceHistoryEntry{},
		&ActivityLogEntry{},
	}
}

package service

import "ecotrack-be/internal/entity"

// EntryStats are the aggregates achievement rules are judged against.
type EntryStats struct {
	TotalEntries     int
	RecycledCount    int
	RecycledWeightKg float64
}

// CollectEntryStats aggregates a user's waste entries. Null weights count
// as zero.
func CollectEntryStats(entries []*entity.WasteEntry) EntryStats {
	var stats EntryStats
	stats.TotalEntries = len(entries)
	for _, e := range entries {
		if e.Recycled {
			stats.RecycledCount++
			stats.RecycledWeightKg += e.Weight()
		}
	}
	return stats
}

// AchievementRule is one unlockable achievement with its condition.
type AchievementRule struct {
	Type        string
	Title       string
	Description string
	Unlocked    func(stats EntryStats) bool
}

// AchievementRules lists every unlockable achievement in unlock order.
func AchievementRules() []AchievementRule {
	return []AchievementRule{
		{
			Type:        "first_entry",
			Title:       "First Step",
			Description: "Tracked your first waste entry!",
			Unlocked:    func(s EntryStats) bool { return s.TotalEntries >= 1 },
		},
		{
			Type:        "five_entries",
			Title:       "Getting Started",
			Description: "Tracked 5 waste entries!",
			Unlocked:    func(s EntryStats) bool { return s.TotalEntries >= 5 },
		},
		{
			Type:        "ten_entries",
			Title:       "Waste Warrior",
			Description: "Tracked 10 waste entries!",
			Unlocked:    func(s EntryStats) bool { return s.TotalEntries >= 10 },
		},
		{
			Type:        "twenty_five_entries",
			Title:       "Eco Champion",
			Description: "Tracked 25 waste entries!",
			Unlocked:    func(s EntryStats) bool { return s.TotalEntries >= 25 },
		},
		{
			Type:        "first_recycle",
			Title:       "Recycler",
			Description: "Recycled your first item!",
			Unlocked:    func(s EntryStats) bool { return s.RecycledCount >= 1 },
		},
		{
			Type:        "ten_recycles",
			Title:       "Recycling Master",
			Description: "Recycled 10 items!",
			Unlocked:    func(s EntryStats) bool { return s.RecycledCount >= 10 },
		},
		{
			Type:        "fifty_kg_recycled",
			Title:       "Eco Hero",
			Description: "Recycled 50 kg of waste!",
			Unlocked:    func(s EntryStats) bool { return s.RecycledWeightKg >= 50 },
		},
	}
}

// EvaluateAchievements returns the rules newly unlocked by the given stats,
// skipping achievement types the user already owns.
func EvaluateAchievements(stats EntryStats, owned map[string]bool) []AchievementRule {
	var unlocked []AchievementRule
	for _, rule := range AchievementRules() {
		if owned[rule.Type] {
			continue
		}
		if rule.Unlocked(stats) {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked
}

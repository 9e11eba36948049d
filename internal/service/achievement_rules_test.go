package service

import (
	"testing"

	"ecotrack-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(total, recycled int, recycledWeightEach float64) []*entity.WasteEntry {
	entries := make([]*entity.WasteEntry, 0, total)
	for i := 0; i < total; i++ {
		e := &entity.WasteEntry{WasteType: entity.WasteTypeRecyclable}
		if i < recycled {
			w := recycledWeightEach
			e.Recycled = true
			e.WeightKg = &w
		}
		entries = append(entries, e)
	}
	return entries
}

func TestCollectEntryStats(t *testing.T) {
	stats := CollectEntryStats(makeEntries(10, 4, 2.5))
	assert.Equal(t, 10, stats.TotalEntries)
	assert.Equal(t, 4, stats.RecycledCount)
	assert.InDelta(t, 10.0, stats.RecycledWeightKg, 1e-9)
}

func TestCollectEntryStatsNullWeights(t *testing.T) {
	entries := []*entity.WasteEntry{
		{Recycled: true},
		{Recycled: true, WeightKg: floatPtr(3)},
	}
	stats := CollectEntryStats(entries)
	assert.Equal(t, 2, stats.RecycledCount)
	assert.InDelta(t, 3.0, stats.RecycledWeightKg, 1e-9)
}

func TestEvaluateAchievementsThresholds(t *testing.T) {
	tests := []struct {
		name  string
		stats EntryStats
		want  []string
	}{
		{
			name:  "first entry",
			stats: EntryStats{TotalEntries: 1},
			want:  []string{"first_entry"},
		},
		{
			name:  "five entries includes earlier milestones",
			stats: EntryStats{TotalEntries: 5},
			want:  []string{"first_entry", "five_entries"},
		},
		{
			name:  "first recycle",
			stats: EntryStats{TotalEntries: 1, RecycledCount: 1},
			want:  []string{"first_entry", "first_recycle"},
		},
		{
			name:  "heavy recycler",
			stats: EntryStats{TotalEntries: 25, RecycledCount: 10, RecycledWeightKg: 50},
			want: []string{
				"first_entry", "five_entries", "ten_entries", "twenty_five_entries",
				"first_recycle", "ten_recycles", "fifty_kg_recycled",
			},
		},
		{
			name:  "just under the weight threshold",
			stats: EntryStats{TotalEntries: 1, RecycledCount: 1, RecycledWeightKg: 49.9},
			want:  []string{"first_entry", "first_recycle"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unlocked := EvaluateAchievements(tt.stats, nil)
			types := make([]string, 0, len(unlocked))
			for _, rule := range unlocked {
				types = append(types, rule.Type)
			}
			assert.Equal(t, tt.want, types)
		})
	}
}

func TestEvaluateAchievementsSkipsOwned(t *testing.T) {
	owned := map[string]bool{"first_entry": true, "first_recycle": true}
	unlocked := EvaluateAchievements(EntryStats{TotalEntries: 5, RecycledCount: 1}, owned)

	require.Len(t, unlocked, 1)
	assert.Equal(t, "five_entries", unlocked[0].Type)
	assert.Equal(t, "Getting Started", unlocked[0].Title)
}

func floatPtr(f float64) *float64 { return &f }

package service

import (
	"testing"
	"time"

	"ecotrack-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func entryAt(day time.Time, weightKg float64, recycled bool) *entity.WasteEntry {
	return &entity.WasteEntry{
		WeightKg:     &weightKg,
		DisposalDate: day,
		Recycled:     recycled,
	}
}

func TestRecomputeReduceGoal(t *testing.T) {
	goal := &entity.WasteGoal{GoalType: entity.GoalTypeReduce, TargetValue: 10}
	now := time.Now()

	changed, achieved := RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(now, 4, false),
		entryAt(now, 3, false),
	})
	assert.True(t, changed)
	assert.True(t, achieved)
	assert.True(t, goal.IsCompleted)
	assert.InDelta(t, 7.0, goal.CurrentValue, 1e-9)
}

func TestRecomputeReduceGoalUncompletes(t *testing.T) {
	goal := &entity.WasteGoal{GoalType: entity.GoalTypeReduce, TargetValue: 10}
	now := time.Now()

	_, achieved := RecomputeGoalProgress(goal, []*entity.WasteEntry{entryAt(now, 5, false)})
	assert.True(t, achieved)

	// More waste pushes the user back over the target.
	changed, achieved := RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(now, 5, false),
		entryAt(now, 8, false),
	})
	assert.True(t, changed)
	assert.False(t, achieved)
	assert.False(t, goal.IsCompleted)
	assert.InDelta(t, 13.0, goal.CurrentValue, 1e-9)
}

func TestRecomputeRecycleGoalByWeight(t *testing.T) {
	goal := &entity.WasteGoal{GoalType: entity.GoalTypeRecycle, TargetValue: 5, Unit: "kg"}
	now := time.Now()

	changed, achieved := RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(now, 3, true),
		entryAt(now, 3, false), // not recycled, ignored
		entryAt(now, 2.5, true),
	})
	assert.True(t, changed)
	assert.True(t, achieved)
	assert.InDelta(t, 5.5, goal.CurrentValue, 1e-9)
}

func TestRecomputeRecycleGoalByCount(t *testing.T) {
	goal := &entity.WasteGoal{GoalType: entity.GoalTypeRecycle, TargetValue: 2, Unit: "count"}
	now := time.Now()

	_, achieved := RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(now, 100, true),
	})
	assert.False(t, achieved)
	assert.InDelta(t, 1.0, goal.CurrentValue, 1e-9)

	_, achieved = RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(now, 1, true),
		entryAt(now, 1, true),
	})
	assert.True(t, achieved)
}

func TestRecomputeTrackGoalCountsEntries(t *testing.T) {
	goal := &entity.WasteGoal{GoalType: entity.GoalTypeTrack, TargetValue: 3}
	now := time.Now()

	changed, achieved := RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(now, 1, false),
		entryAt(now, 1, true),
		entryAt(now, 1, false),
	})
	assert.True(t, changed)
	assert.True(t, achieved)
	assert.InDelta(t, 3.0, goal.CurrentValue, 1e-9)
}

func TestGoalWindowFiltersEntries(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	goal := &entity.WasteGoal{
		GoalType:    entity.GoalTypeTrack,
		TargetValue: 10,
		StartDate:   &start,
		EndDate:     &end,
	}

	RecomputeGoalProgress(goal, []*entity.WasteEntry{
		entryAt(start.AddDate(0, 0, -1), 1, false), // before window
		entryAt(start.AddDate(0, 0, 5), 1, false),
		entryAt(end.AddDate(0, 0, 1), 1, false), // after window
	})
	assert.InDelta(t, 1.0, goal.CurrentValue, 1e-9)
}

func TestGoalProgressPercent(t *testing.T) {
	tests := []struct {
		name string
		goal entity.WasteGoal
		want float64
	}{
		{"track halfway", entity.WasteGoal{GoalType: entity.GoalTypeTrack, TargetValue: 10, CurrentValue: 5}, 50},
		{"track capped", entity.WasteGoal{GoalType: entity.GoalTypeTrack, TargetValue: 10, CurrentValue: 15}, 100},
		{"reduce under target is done", entity.WasteGoal{GoalType: entity.GoalTypeReduce, TargetValue: 10, CurrentValue: 6}, 100},
		{"reduce over target inverts", entity.WasteGoal{GoalType: entity.GoalTypeReduce, TargetValue: 10, CurrentValue: 20}, 50},
		{"zero target", entity.WasteGoal{GoalType: entity.GoalTypeTrack, TargetValue: 0, CurrentValue: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GoalProgressPercent(&tt.goal), 1e-9)
		})
	}
}

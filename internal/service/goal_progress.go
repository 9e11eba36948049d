package service

import "ecotrack-be/internal/entity"

// entriesInGoalPeriod keeps entries whose disposal date falls inside the
// goal's window. Either bound may be nil.
func entriesInGoalPeriod(goal *entity.WasteGoal, entries []*entity.WasteEntry) []*entity.WasteEntry {
	var out []*entity.WasteEntry
	for _, e := range entries {
		if goal.StartDate != nil && e.DisposalDate.Before(*goal.StartDate) {
			continue
		}
		if goal.EndDate != nil && e.DisposalDate.After(*goal.EndDate) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// RecomputeGoalProgress updates goal.CurrentValue and goal.IsCompleted from
// the user's entries. It reports whether anything changed and whether the
// goal crossed into the achieved state on this recomputation.
//
// Reduce goals complete while current waste stays at or under the target and
// un-complete again if it climbs back over. Recycle and track goals only
// ever complete.
func RecomputeGoalProgress(goal *entity.WasteGoal, entries []*entity.WasteEntry) (changed, newlyAchieved bool) {
	wasCompleted := goal.IsCompleted
	oldValue := goal.CurrentValue

	switch goal.GoalType {
	case entity.GoalTypeReduce:
		period := entriesInGoalPeriod(goal, entries)
		var current float64
		for _, e := range period {
			current += e.Weight()
		}
		goal.CurrentValue = current

		if current <= goal.TargetValue && !wasCompleted {
			goal.IsCompleted = true
			newlyAchieved = true
		} else if current > goal.TargetValue && wasCompleted {
			goal.IsCompleted = false
		}

	case entity.GoalTypeRecycle:
		var recycled []*entity.WasteEntry
		for _, e := range entriesInGoalPeriod(goal, entries) {
			if e.Recycled {
				recycled = append(recycled, e)
			}
		}

		var current float64
		if goal.Unit == "count" {
			current = float64(len(recycled))
		} else {
			for _, e := range recycled {
				current += e.Weight()
			}
		}
		goal.CurrentValue = current

		if current >= goal.TargetValue && !wasCompleted {
			goal.IsCompleted = true
			newlyAchieved = true
		}

	case entity.GoalTypeTrack:
		period := entriesInGoalPeriod(goal, entries)
		goal.CurrentValue = float64(len(period))

		if goal.CurrentValue >= goal.TargetValue && !wasCompleted {
			goal.IsCompleted = true
			newlyAchieved = true
		}
	}

	changed = goal.CurrentValue != oldValue || goal.IsCompleted != wasCompleted
	return changed, newlyAchieved
}

// GoalProgressPercent reports completion as 0-100, capped at 100. For
// reduce goals staying under target is success, so progress inverts.
func GoalProgressPercent(goal *entity.WasteGoal) float64 {
	if goal.TargetValue <= 0 {
		return 0
	}
	var pct float64
	if goal.GoalType == entity.GoalTypeReduce {
		if goal.CurrentValue <= goal.TargetValue {
			return 100
		}
		pct = goal.TargetValue / goal.CurrentValue * 100
	} else {
		pct = goal.CurrentValue / goal.TargetValue * 100
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

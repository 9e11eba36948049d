package dto

type WasteTypeBreakdown struct {
	WasteType string  `json:"waste_type"`
	Count     int64   `json:"count"`
	WeightKg  float64 `json:"weight_kg"`
}

type MonthlyBreakdown struct {
	Month    string  `json:"month"` // YYYY-MM
	Count    int64   `json:"count"`
	WeightKg float64 `json:"weight_kg"`
}

type EnvironmentalImpact struct {
	Co2SavedKg float64 `json:"co2_saved_kg"`
	TreesSaved float64 `json:"trees_saved"`
}

type StatisticsResponse struct {
	TotalEntries    int64                `json:"total_entries"`
	TotalWeightKg   float64              `json:"total_weight_kg"`
	RecycledEntries int64                `json:"recycled_entries"`
	RecycledKg      float64              `json:"recycled_kg"`
	RecyclingRate   float64              `json:"recycling_rate"`
	ByType          []WasteTypeBreakdown `json:"by_type"`
	Monthly         []MonthlyBreakdown   `json:"monthly"`
	Impact          EnvironmentalImpact  `json:"impact"`
	PotentialImpact EnvironmentalImpact  `json:"potential_impact"`
}

package service

// WasteTips returns the static per-type disposal tip lists.
func WasteTips() map[string][]string {
	return map[string][]string{
		"organic": {
			"Compost food scraps and yard waste",
			"Use biodegradable bags for organic waste",
			"Avoid mixing organic waste with recyclables",
			"Create a home compost bin if possible",
		},
		"recyclable": {
			"Clean containers before recycling",
			"Remove labels and caps when possible",
			"Separate different types of recyclables",
			"Check local recycling guidelines",
			"Flatten cardboard boxes to save space",
		},
		"hazardous": {
			"Never mix hazardous waste with regular trash",
			"Take batteries to designated collection points",
			"Dispose of electronics at certified e-waste centers",
			"Keep hazardous materials in original containers",
			"Contact local authorities for proper disposal",
		},
		"other": {
			"Reduce waste by buying in bulk",
			"Reuse items when possible",
			"Donate items in good condition",
			"Choose products with minimal packaging",
		},
	}
}

package catalog

// fallbackPlants returns the embedded dataset used when the CSV source is
// missing or corrupt. It is intentionally small: enough variety to keep every
// filter keyword serviceable while the real dataset is unavailable.
func fallbackPlants() []Plant {
	return []Plant{
		{
			Name: "Lettuce", Type: "vegetable", Category: "leafy green",
			Sunlight: "partial", Maintenance: "low", Space: "small",
			GrowTime: "30-45 days", Description: "Crisp salad staple that tolerates light shade.",
			Tips:     "Sow every two weeks for a steady harvest.",
			Features: "quick,salad,indoor",
		},
		{
			Name: "Radish", Type: "vegetable", Category: "root",
			Sunlight: "full", Maintenance: "low", Space: "small",
			GrowTime: "25-35 days", Description: "One of the fastest crops from seed to plate.",
			Tips:     "Thin seedlings early so roots can swell.",
			Features: "quick,salad",
		},
		{
			Name: "Spinach", Type: "vegetable", Category: "leafy green",
			Sunlight: "partial", Maintenance: "low", Space: "small",
			GrowTime: "40-50 days", Description: "Cool-season green for salads and smoothies.",
			Tips:     "Bolts in heat; give it afternoon shade.",
			Features: "quick,salad,smoothie,indoor",
		},
		{
			Name: "Cherry Tomato", Type: "vegetable", Category: "fruiting",
			Sunlight: "full", Maintenance: "medium", Space: "small",
			GrowTime: "55-70 days", Description: "Compact tomato that thrives in containers.",
			Tips:     "Needs a stake or cage once fruit sets.",
			Features: "quick,salad",
		},
		{
			Name: "Bell Pepper", Type: "vegetable", Category: "fruiting",
			Sunlight: "full", Maintenance: "medium", Space: "small",
			GrowTime: "60-90 days", Description: "Sweet pepper for salads and stir-fries.",
			Tips:     "Keep soil consistently moist to avoid bitter fruit.",
			Features: "salad",
		},
		{
			Name: "Sweet Basil", Type: "herb", Category: "culinary herb",
			Sunlight: "full", Maintenance: "low", Space: "small",
			GrowTime: "25-35 days", Description: "Fragrant herb that loves warmth.",
			Tips:     "Pinch flower buds to keep leaves coming.",
			Features: "quick,salad,indoor",
		},
		{
			Name: "Fresh Mint", Type: "herb", Category: "culinary herb",
			Sunlight: "partial", Maintenance: "low", Space: "small",
			GrowTime: "30-40 days", Description: "Vigorous herb for teas and smoothies.",
			Tips:     "Grow in its own pot; it spreads aggressively.",
			Features: "quick,smoothie,indoor",
		},
		{
			Name: "Parsley", Type: "herb", Category: "culinary herb",
			Sunlight: "partial", Maintenance: "low", Space: "small",
			GrowTime: "70-90 days", Description: "Slow to sprout, generous once established.",
			Tips:     "Soak seeds overnight to speed germination.",
			Features: "salad,indoor",
		},
		{
			Name: "Strawberry", Type: "fruit", Category: "berry",
			Sunlight: "full", Maintenance: "medium", Space: "small",
			GrowTime: "60-90 days", Description: "Everbearing varieties fruit through summer.",
			Tips:     "Mulch under the fruit to keep it clean.",
			Features: "smoothie",
		},
		{
			Name: "Kale", Type: "vegetable", Category: "leafy green",
			Sunlight: "full", Maintenance: "low", Space: "medium",
			GrowTime: "50-65 days", Description: "Hardy green that sweetens after frost.",
			Tips:     "Harvest outer leaves and the plant keeps producing.",
			Features: "quick,salad,smoothie",
		},
		{
			Name: "Cucumber", Type: "vegetable", Category: "vining",
			Sunlight: "full", Maintenance: "medium", Space: "medium",
			GrowTime: "50-70 days", Description: "Productive climber for trellises.",
			Tips:     "Pick daily at peak; fruit turns bitter if left.",
			Features: "quick,salad",
		},
		{
			Name: "Carrot", Type: "vegetable", Category: "root",
			Sunlight: "full", Maintenance: "low", Space: "medium",
			GrowTime: "70-80 days", Description: "Needs loose, stone-free soil for straight roots.",
			Tips:     "Keep the bed evenly moist until germination.",
			Features: "salad",
		},
		{
			Name: "Garlic", Type: "vegetable", Category: "allium",
			Sunlight: "full", Maintenance: "low", Space: "small",
			GrowTime: "240 days", Description: "Plant cloves in autumn, harvest mid-summer.",
			Tips:     "Stop watering two weeks before harvest.",
			Features: "",
		},
		{
			Name: "Blueberry", Type: "fruit", Category: "berry",
			Sunlight: "full", Maintenance: "high", Space: "large",
			GrowTime: "720 days", Description: "Perennial shrub that needs acidic soil.",
			Tips:     "Grow two varieties for better pollination.",
			Features: "smoothie",
		},
		{
			Name: "Pumpkin", Type: "vegetable", Category: "vining",
			Sunlight: "full", Maintenance: "medium", Space: "large",
			GrowTime: "95-120 days", Description: "Sprawling vines need serious room to run.",
			Tips:     "Slide a board under fruit to prevent rot.",
			Features: "",
		},
	}
}

package model

// ── Fixed option lists offered by the logging forms ──

var activityCategories = map[ActivityType][]string{
	ActivityChore: {
		"Clean Room",
		"Clean Bathroom",
		"Clean Kitchen",
		"Clean Basement",
		"Clean Garage",
		"Clean Yard",
		"Vacuum",
		"Take Out Trash",
		"Load/Unload Dishwasher",
	},
	ActivityEducation: {
		"Math Skills",
		"Reading",
		"Coding",
		"Drawing",
		"Educational Outing",
		"Science Project",
		"Writing Practice",
	},
	ActivitySkill: {
		"Workout",
		"Football Skills",
		"Basketball Skills",
		"Wrestling Skills",
		"Swimming",
		"Bike Ride",
		"Music Practice",
		"Art Practice",
	},
}

var behaviorTypes = []string{
	"Talking Back",
	"Lying",
	"Sneaking Food",
	"Unauthorized Screen Time",
	"Not Following Instructions",
	"Fighting with Sibling",
	"Disrespectful Language",
	"Not Completing Assigned Tasks",
}

// Categories returns a copy of the category list for t (nil for unknown types)
func Categories(t ActivityType) []string {
	list, ok := activityCategories[t]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// IsCategory reports whether category belongs to t's list
func IsCategory(t ActivityType, category string) bool {
	for _, c := range activityCategories[t] {
		if c == category {
			return true
		}
	}
	return false
}

// BehaviorTypes returns a copy of the behavior label list
func BehaviorTypes() []string {
	return append([]string(nil), behaviorTypes...)
}

// IsBehaviorType reports whether label is a known behavior type
func IsBehaviorType(label string) bool {
	for _, b := range behaviorTypes {
		if b == label {
			return true
		}
	}
	return false
}

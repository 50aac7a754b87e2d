package domain

// CloneDays returns a deep copy of the given day sequence.
// Mutating the copy never affects the original.
func CloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Items = append([]ItineraryItem(nil), d.Items...)
	}
	return out
}

// CloneCategories returns a deep copy of the given category sequence.
func CloneCategories(cats []PackingCategory) []PackingCategory {
	if cats == nil {
		return nil
	}
	out := make([]PackingCategory, len(cats))
	for i, c := range cats {
		out[i] = c
		out[i].Items = append([]PackingItem(nil), c.Items...)
	}
	return out
}

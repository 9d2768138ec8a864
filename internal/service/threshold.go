package service

// ThresholdTable drives low-stock classification. Categories not present in
// ByCategory fall back to Default. New elevated thresholds are added by
// extending the table, never by touching call sites.
type ThresholdTable struct {
	ByCategory map[string]int
	Default    int
}

// DefaultThresholds returns the stock thresholds used across the app: the
// two segment categories restock at 100 units, everything else at 5.
func DefaultThresholds() ThresholdTable {
	return ThresholdTable{
		ByCategory: map[string]int{
			"Single Segment": 100,
			"Multi Segment":  100,
		},
		Default: 5,
	}
}

// WithDefault returns a copy of the table with the fallback threshold
// replaced, leaving per-category overrides intact. Used when the caller
// supplies an explicit threshold on the low-stock report.
func (t ThresholdTable) WithDefault(d int) ThresholdTable {
	if d <= 0 {
		return t
	}
	return ThresholdTable{ByCategory: t.ByCategory, Default: d}
}

// For returns the threshold applying to the given category name.
func (t ThresholdTable) For(categoryName string) int {
	if v, ok := t.ByCategory[categoryName]; ok {
		return v
	}
	return t.Default
}

// IsLow reports whether an item with the given quantity and category is
// below its restock threshold.
func (t ThresholdTable) IsLow(quantity int, categoryName string) bool {
	return quantity < t.For(categoryName)
}

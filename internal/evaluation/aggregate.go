package evaluation

// WeightedAverage computes the credit-weighted grade average over units.
// Units without a grade carry no weight and are excluded entirely, as are
// units with non-positive credits. Returns nil when nothing contributes:
// "no average" is a distinct state, not a zero.
func WeightedAverage(units []Unit) *float64 {
	var weightedSum float64
	var totalCredits int

	for _, u := range units {
		if u.Grade == nil || u.Credits <= 0 {
			continue
		}
		weightedSum += *u.Grade * float64(u.Credits)
		totalCredits += u.Credits
	}

	if totalCredits == 0 {
		return nil
	}

	avg := weightedSum / float64(totalCredits)
	return &avg
}

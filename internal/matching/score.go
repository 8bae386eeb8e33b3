package matching

import "math"

// round2 rounds half away from zero to 2 decimal places. Every score path in
// this package goes through it so boundary values behave identically
// everywhere.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// confidenceFor derives the confidence band from the match ratio. The high
// band additionally requires the candidate pool to be at least as large as
// the target, so a tiny candidate set that happens to match everything is not
// labeled high. Bands are checked top to bottom, first hit wins.
func confidenceFor(matchedCount, targetCount, candidateCount int) string {
	if targetCount == 0 {
		return "unknown"
	}
	ratio := float64(matchedCount) / float64(targetCount)
	switch {
	case ratio >= 0.8 && candidateCount >= targetCount:
		return "high"
	case ratio >= 0.6:
		return "medium"
	case ratio >= 0.4:
		return "low"
	default:
		return "very low"
	}
}

// recommendationFor maps a match score to advice. Bands are inclusive lower
// bounds, highest first.
func recommendationFor(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match! Highly recommended to apply."
	case score >= 60:
		return "Good match. Consider applying with emphasis on matched skills."
	case score >= 40:
		return "Moderate match. Consider upskilling in missing areas before applying."
	case score >= 20:
		return "Low match. Significant skill gap exists. Focus on learning missing skills."
	default:
		return "Poor match. This role may require substantial additional training."
	}
}

package utils

import "fmt"

// StarRating renders a score in [0,1] as a five-star figure with one
// decimal. A zero score means the backend sent none and shows as the 0.8
// default. Presentational only, never stored back onto the gift.
func StarRating(score float64) string {
	if score == 0 {
		score = 0.8
	}
	return fmt.Sprintf("%.1f", score*5)
}

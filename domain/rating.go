package domain

import "math"

// Media averages the strictly positive grades of a set, matching how the pages
// compute a professor's displayed rating. Unrated criteria (zero or negative
// placeholders) are skipped; with no usable grades the result is zero.
func Media(notas []float64) float64 {
	var sum float64
	var n int
	for _, nota := range notas {
		if nota > 0 {
			sum += nota
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Stars splits a rating into filled and empty star counts on a five-star
// scale. Fractions round down; out-of-range ratings are clamped.
func Stars(rating float64) (filled, empty int) {
	filled = int(math.Floor(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return filled, 5 - filled
}

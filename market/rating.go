package market

import "math"

// NextRating folds one new rating into a provider's cumulative weighted
// average: (prior*count + rating) / (count+1), rounded half-up to one
// decimal place. It returns the updated average and count.
func NextRating(prior float64, count int, rating int) (float64, int) {
	total := prior*float64(count) + float64(rating)
	n := count + 1
	return math.Round(total/float64(n)*10) / 10, n
}

package engage

import "math"

// Stars is the five-star breakdown of an average rating.
// Filled + Half + Empty is always 5 for ratings in [0,5].
type Stars struct {
	Filled int
	Half   int // 0 or 1
	Empty  int
}

// ComputeStars splits a rating into filled, half and empty stars: a half
// star appears whenever the rating has a fractional part.
func ComputeStars(rating float64) Stars {
	filled := int(math.Floor(rating))
	half := 0
	if rating != math.Trunc(rating) {
		half = 1
	}
	return Stars{
		Filled: filled,
		Half:   half,
		Empty:  5 - int(math.Ceil(rating)),
	}
}

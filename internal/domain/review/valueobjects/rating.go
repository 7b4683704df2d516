package valueobjects

import "fmt"

// Rating is the enumerated 0-5 score a review assigns to a ticket.
type Rating int

const (
	RatingMin = 0
	RatingMax = 5
)

// NewRating creates a Rating, rejecting values outside the 0-5 scale.
func NewRating(value int) (Rating, error) {
	r := Rating(value)
	if !r.IsValid() {
		return 0, fmt.Errorf("rating must be between %d and %d", RatingMin, RatingMax)
	}
	return r, nil
}

func (r Rating) IsValid() bool {
	return r >= RatingMin && r <= RatingMax
}

func (r Rating) Int() int {
	return int(r)
}

// Stars renders the rating the way the original site displayed it,
// e.g. "★★★☆☆" for a rating of 3.
func (r Rating) Stars() string {
	stars := ""
	for i := RatingMin; i < RatingMax; i++ {
		if i < int(r) {
			stars += "★"
		} else {
			stars += "☆"
		}
	}
	return stars
}

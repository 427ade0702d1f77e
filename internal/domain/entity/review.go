package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Review is immutable once stored.
type Review struct {
	ID           string    `json:"id"`
	DoctorID     string    `json:"doctorId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

// RatingSummary is the computed overlay for a doctor's displayed rating.
type RatingSummary struct {
	Average float64
	Count   int
}

// SummarizeReviews averages the ratings rounded half-up to one decimal.
// ok is false when there is nothing to summarize.
func SummarizeReviews(reviews []Review) (summary RatingSummary, ok bool) {
	if len(reviews) == 0 {
		return RatingSummary{}, false
	}

	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}
	avg := decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(len(reviews))), 1)
	return RatingSummary{Average: avg.InexactFloat64(), Count: len(reviews)}, true
}

// ApplyTo overrides the doctor's displayed rating and review count. The
// stored base record is not touched.
func (s RatingSummary) ApplyTo(d Doctor) Doctor {
	d.Rating = s.Average
	d.Reviews = s.Count
	return d
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_IsUpcoming(t *testing.T) {
	today := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		appt   Appointment
		expect bool
	}{
		{"today pending", Appointment{Date: "2026-10-17", Status: AppointmentStatusPending}, true},
		{"future confirmed", Appointment{Date: "2026-11-01", Status: AppointmentStatusConfirmed}, true},
		{"yesterday", Appointment{Date: "2026-10-16", Status: AppointmentStatusPending}, false},
		{"future cancelled", Appointment{Date: "2026-12-01", Status: AppointmentStatusCancelled}, false},
		{"unparseable date", Appointment{Date: "soon", Status: AppointmentStatusPending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.appt.IsUpcoming(today))
		})
	}
}

func TestAppointment_StatusTransitions(t *testing.T) {
	a := Appointment{Status: AppointmentStatusPending}
	assert.True(t, a.IsPending())

	a.Confirm()
	assert.True(t, a.IsConfirmed())

	a.Cancel()
	assert.True(t, a.IsCancelled())

	a.Confirm()
	assert.True(t, a.IsConfirmed())
}

func TestMedicine_DerivedStock(t *testing.T) {
	m := Medicine{Availability: []Availability{
		{PharmacyID: "a", PharmacyName: "Apollo", Stock: 0},
		{PharmacyID: "b", PharmacyName: "MedPlus", Stock: 40},
		{PharmacyID: "c", PharmacyName: "Trust", Stock: 5},
	}}

	assert.Equal(t, 45, m.TotalStock())
	assert.Equal(t, 2, m.InStockPharmacies())
	assert.Equal(t, "MedPlus", m.NearestAvailable().PharmacyName)
	assert.Nil(t, m.FindAvailability("zzz"))
	assert.Equal(t, 5, m.FindAvailability("c").Stock)
}

func TestSession_OnboardingStep(t *testing.T) {
	s := Session{}
	assert.Equal(t, OnboardingStepLogin, s.OnboardingStep())

	s.Profile = &UserProfile{Name: "Asha"}
	assert.Equal(t, OnboardingStepHealthDetails, s.OnboardingStep())

	s.Profile.HealthDetailsProvided = true
	assert.Equal(t, OnboardingStepComplete, s.OnboardingStep())
}

func TestSummarizeReviews(t *testing.T) {
	_, ok := SummarizeReviews(nil)
	assert.False(t, ok)

	tests := []struct {
		name    string
		ratings []int
		avg     float64
	}{
		{"single", []int{5}, 5.0},
		{"half", []int{4, 5}, 4.5},
		{"rounds half up", []int{4, 4, 4, 5}, 4.3},
		{"thirds", []int{5, 5, 4}, 4.7},
		{"low thirds", []int{1, 1, 2}, 1.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = Review{Rating: r}
			}
			summary, ok := SummarizeReviews(reviews)
			assert.True(t, ok)
			assert.Equal(t, tt.avg, summary.Average)
			assert.Equal(t, len(tt.ratings), summary.Count)
		})
	}
}

func TestRatingSummary_ApplyTo(t *testing.T) {
	base := Doctor{ID: "doc_k_001", Rating: 4.8, Reviews: 152}
	shown := RatingSummary{Average: 5.0, Count: 1}.ApplyTo(base)

	assert.Equal(t, 5.0, shown.Rating)
	assert.Equal(t, 1, shown.Reviews)
	assert.Equal(t, 4.8, base.Rating)
}

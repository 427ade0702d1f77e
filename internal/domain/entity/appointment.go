package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

// Appointment is a booking request. DoctorName is captured when the doctor
// is chosen and is not re-resolved afterwards.
type Appointment struct {
	ID             string            `json:"id"`
	DoctorID       string            `json:"doctorId"`
	DoctorName     string            `json:"doctorName"`
	Date           string            `json:"date"`
	Time           string            `json:"time"`
	PatientName    string            `json:"patientName"`
	PatientContact string            `json:"patientContact"`
	Status         AppointmentStatus `json:"status"`
}

// IsPending checks if appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// IsUpcoming reports whether the appointment falls on or after today and has
// not been cancelled. Cancelled future appointments are not upcoming.
func (a *Appointment) IsUpcoming(today time.Time) bool {
	if a.IsCancelled() {
		return false
	}
	day, err := time.Parse(AppointmentDateLayout, a.Date)
	if err != nil {
		return false
	}
	y, m, d := today.Date()
	return !day.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

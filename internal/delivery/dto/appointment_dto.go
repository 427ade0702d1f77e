package dto

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID       string `json:"doctor_id" validate:"notblank"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	PatientName    string `json:"patient_name" validate:"notblank"`
	PatientContact string `json:"patient_contact" validate:"notblank"`
}

// UpdateAppointmentRequest replaces the editable fields. Status is kept.
type UpdateAppointmentRequest struct {
	DoctorID       string `json:"doctor_id" validate:"notblank"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Time           string `json:"time" validate:"required,datetime=15:04"`
	PatientName    string `json:"patient_name" validate:"notblank"`
	PatientContact string `json:"patient_contact" validate:"notblank"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             string `json:"id"`
	DoctorID       string `json:"doctor_id"`
	DoctorName     string `json:"doctor_name"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	PatientName    string `json:"patient_name"`
	PatientContact string `json:"patient_contact"`
	Status         string `json:"status"`
}

// AppointmentListResponse splits the sorted list into upcoming and the
// rest. Cancelled appointments always fall in Past, even future ones.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Upcoming     []AppointmentResponse `json:"upcoming"`
	Past         []AppointmentResponse `json:"past"`
	Total        int                   `json:"total"`
}

// AppointmentMutationResponse is returned by create, update and status
// changes. Found is false when the id did not resolve and nothing changed.
type AppointmentMutationResponse struct {
	Appointment *AppointmentResponse `json:"appointment,omitempty"`
	Found       bool                 `json:"found"`
	Persisted   bool                 `json:"persisted"`
}

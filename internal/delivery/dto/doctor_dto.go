package dto

// Request DTOs

type DoctorFilterRequest struct {
	Search    string
	Specialty string
}

// Response DTOs

// DoctorResponse shows the displayed rating: the review average when the
// doctor has reviews, the base rating otherwise.
type DoctorResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Specialty         string   `json:"specialty"`
	Rating            float64  `json:"rating"`
	Reviews           int      `json:"reviews"`
	Location          string   `json:"location"`
	Image             string   `json:"image,omitempty"`
	Available         bool     `json:"available"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	Bio               string   `json:"bio,omitempty"`
	Qualifications    []string `json:"qualifications"`
	WorkingHours      string   `json:"working_hours,omitempty"`
	Services          []string `json:"services"`
	InsuranceAccepted []string `json:"insurance_accepted"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}

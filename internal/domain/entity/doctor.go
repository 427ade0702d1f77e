package entity

// SpecialtyGeneralPhysician is the fallback specialty when no symptom maps
// to anything more specific.
const SpecialtyGeneralPhysician = "General Physician"

// Doctor is a directory entry. Rating and Reviews hold the seed statistics;
// the displayed values are overlaid from stored reviews at read time.
type Doctor struct {
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
	WorkingHours      string   `json:"workingHours,omitempty"`
	Services          []string `json:"services"`
	InsuranceAccepted []string `json:"insuranceAccepted"`
}

// DoctorFilter narrows a doctor listing. Empty fields match everything.
type DoctorFilter struct {
	Search    string
	Specialty string
}

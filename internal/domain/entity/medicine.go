package entity

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Availability is the stock of one medicine at one pharmacy.
type Availability struct {
	PharmacyID   string       `json:"pharmacyId"`
	PharmacyName string       `json:"pharmacyName"`
	Stock        int          `json:"stock"`
	Location     string       `json:"location"`
	Distance     string       `json:"distance"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

type Medicine struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Image        string         `json:"image,omitempty"`
	Description  string         `json:"description"`
	Manufacturer string         `json:"manufacturer"`
	Dosage       string         `json:"dosage"`
	SideEffects  string         `json:"sideEffects"`
	Storage      string         `json:"storage"`
	Availability []Availability `json:"availability"`
}

// TotalStock sums stock over every pharmacy.
func (m *Medicine) TotalStock() int {
	total := 0
	for _, a := range m.Availability {
		total += a.Stock
	}
	return total
}

// InStockPharmacies counts pharmacies holding at least one unit.
func (m *Medicine) InStockPharmacies() int {
	count := 0
	for _, a := range m.Availability {
		if a.Stock > 0 {
			count++
		}
	}
	return count
}

// NearestAvailable returns the first listed pharmacy with stock, or nil.
func (m *Medicine) NearestAvailable() *Availability {
	for i := range m.Availability {
		if m.Availability[i].Stock > 0 {
			return &m.Availability[i]
		}
	}
	return nil
}

// FindAvailability returns the entry for pharmacyID, or nil.
func (m *Medicine) FindAvailability(pharmacyID string) *Availability {
	for i := range m.Availability {
		if m.Availability[i].PharmacyID == pharmacyID {
			return &m.Availability[i]
		}
	}
	return nil
}

// MedicineFilter narrows a medicine listing. Empty fields match everything.
type MedicineFilter struct {
	Search   string
	Category string
}

package dto

// Request DTOs

type MedicineFilterRequest struct {
	Search   string
	Category string
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// Response DTOs

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type AvailabilityResponse struct {
	PharmacyID   string               `json:"pharmacy_id"`
	PharmacyName string               `json:"pharmacy_name"`
	Stock        int                  `json:"stock"`
	Location     string               `json:"location"`
	Distance     string               `json:"distance"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	Coordinates  *CoordinatesResponse `json:"coordinates,omitempty"`
}

type MedicineResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Category          string                 `json:"category"`
	Image             string                 `json:"image,omitempty"`
	Description       string                 `json:"description"`
	Manufacturer      string                 `json:"manufacturer"`
	Dosage            string                 `json:"dosage"`
	SideEffects       string                 `json:"side_effects"`
	Storage           string                 `json:"storage"`
	Availability      []AvailabilityResponse `json:"availability"`
	TotalStock        int                    `json:"total_stock"`
	InStockPharmacies int                    `json:"in_stock_pharmacies"`
	NearestAvailable  *AvailabilityResponse  `json:"nearest_available,omitempty"`
}

type MedicineListResponse struct {
	Medicines []MedicineResponse `json:"medicines"`
	Total     int                `json:"total"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

type UpdateStockResponse struct {
	Medicine  *MedicineResponse `json:"medicine"`
	Persisted bool              `json:"persisted"`
}

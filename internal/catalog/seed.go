package catalog

import "medifind/internal/domain/entity"

// Doctors returns a fresh copy of the built-in doctor directory.
func Doctors() []entity.Doctor {
	out := make([]entity.Doctor, len(seedDoctors))
	for i, d := range seedDoctors {
		d.Qualifications = append([]string(nil), d.Qualifications...)
		d.Services = append([]string(nil), d.Services...)
		d.InsuranceAccepted = append([]string(nil), d.InsuranceAccepted...)
		out[i] = d
	}
	return out
}

// Medicines returns a fresh copy of the built-in medicine catalog.
func Medicines() []entity.Medicine {
	out := make([]entity.Medicine, len(seedMedicines))
	for i, m := range seedMedicines {
		avail := make([]entity.Availability, len(m.Availability))
		for j, a := range m.Availability {
			if a.Coordinates != nil {
				c := *a.Coordinates
				a.Coordinates = &c
			}
			avail[j] = a
		}
		m.Availability = avail
		out[i] = m
	}
	return out
}

package repository

import (
	"strings"

	"github.com/google/uuid"
)

// Storage keys. These names are shared with existing persisted data and
// must not change.
const (
	KeyUser          = "medifind_user"
	KeyDoctors       = "doctorsData_k"
	KeyMedicines     = "medicinesData_k"
	KeyAppointments  = "appointments"
	keyReviewsPrefix = "reviews_"
)

func ReviewsKey(doctorID string) string {
	return keyReviewsPrefix + doctorID
}

var backfillNamespace = uuid.MustParse("5b0c6a8e-3f1d-5e27-9a4c-8d2e7f1b6c30")

// stableID derives the same id from the same record contents, so a
// backfill repeated on another run or process agrees with the first.
func stableID(parts ...string) string {
	return uuid.NewSHA1(backfillNamespace, []byte(strings.Join(parts, "|"))).String()
}

package model

// Enquiry represents one customer contact request about a listing.
//
// CarName and CarID are denormalized snapshots taken at submission time,
// not foreign keys. If the car is later renamed or deleted the enquiry
// keeps the stale values.
type Enquiry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	CarName     string `json:"carName"`
	CarID       string `json:"carId"`
	SubmittedAt string `json:"submittedAt"` // RFC 3339, stamped by the repository
}

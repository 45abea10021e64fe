package model

// Car represents one inventory listing.
type Car struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	Year         int     `json:"year"`
	Mileage      string  `json:"mileage"` // free text: "23 MPG", "405 miles range"
	FuelType     string  `json:"fuelType"`
	Transmission string  `json:"transmission"`
	Image        string  `json:"image"` // URL or data URI
	Badge        string  `json:"badge,omitempty"`
	Featured     bool    `json:"featured,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"` // RFC 3339, stamped at creation
}

// CarUpdate carries a partial set of Car fields for an update.
// Nil pointers mean "leave the current value alone".
type CarUpdate struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	Year         *int     `json:"year"`
	Mileage      *string  `json:"mileage"`
	FuelType     *string  `json:"fuelType"`
	Transmission *string  `json:"transmission"`
	Image        *string  `json:"image"`
	Badge        *string  `json:"badge"`
	Featured     *bool    `json:"featured"`
}

// Apply returns a copy of car with the non-nil fields of the update merged in.
func (u CarUpdate) Apply(car Car) Car {
	if u.Name != nil {
		car.Name = *u.Name
	}
	if u.Price != nil {
		car.Price = *u.Price
	}
	if u.Description != nil {
		car.Description = *u.Description
	}
	if u.Year != nil {
		car.Year = *u.Year
	}
	if u.Mileage != nil {
		car.Mileage = *u.Mileage
	}
	if u.FuelType != nil {
		car.FuelType = *u.FuelType
	}
	if u.Transmission != nil {
		car.Transmission = *u.Transmission
	}
	if u.Image != nil {
		car.Image = *u.Image
	}
	if u.Badge != nil {
		car.Badge = *u.Badge
	}
	if u.Featured != nil {
		car.Featured = *u.Featured
	}
	return car
}

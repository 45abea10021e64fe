package repository

import "dealerdrive-api/internal/model"

// DefaultCars returns the showroom catalog used to seed an empty store.
// A fresh slice is returned on every call so callers can mutate it freely.
func DefaultCars() []model.Car {
	return []model.Car{
		{
			ID:           1,
			Name:         "Tesla Model S Plaid",
			Price:        129990,
			Description:  "Experience the pinnacle of electric performance with ludicrous acceleration and cutting-edge autopilot technology.",
			Year:         2024,
			Mileage:      "405 miles range",
			FuelType:     "Electric",
			Transmission: "Automatic",
			Image:        "https://images.unsplash.com/photo-1617788138017-80ad40651399?w=800&h=600&fit=crop",
			Badge:        "New",
			Featured:     true,
		},
		{
			ID:           2,
			Name:         "BMW M4 Competition",
			Price:        74900,
			Description:  "Pure driving dynamics meet luxury in this track-bred performance coupe with twin-turbo power.",
			Year:         2024,
			Mileage:      "23 MPG",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Image:        "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&h=600&fit=crop",
			Badge:        "Sport",
			Featured:     true,
		},
		{
			ID:           3,
			Name:         "Porsche 911 Turbo S",
			Price:        207000,
			Description:  "The ultimate expression of 911 performance with all-wheel drive and breathtaking acceleration.",
			Year:         2024,
			Mileage:      "20 MPG",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Image:        "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&h=600&fit=crop",
			Badge:        "Premium",
			Featured:     true,
		},
		{
			ID:           4,
			Name:         "Mercedes-AMG GT 63 S",
			Price:        159000,
			Description:  "Four-door coupe combining AMG performance with luxury comfort and advanced technology.",
			Year:         2024,
			Mileage:      "21 MPG",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Image:        "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&h=600&fit=crop",
			Badge:        "Luxury",
		},
		{
			ID:           5,
			Name:         "Audi RS e-tron GT",
			Price:        142400,
			Description:  "Electric grand tourer delivering stunning performance with sustainable luxury and innovative design.",
			Year:         2024,
			Mileage:      "238 miles range",
			FuelType:     "Electric",
			Transmission: "Automatic",
			Image:        "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
			Badge:        "Electric",
		},
		{
			ID:           6,
			Name:         "Lamborghini Huracán EVO",
			Price:        248295,
			Description:  "Italian supercar excellence with naturally aspirated V10 power and track-focused dynamics.",
			Year:         2024,
			Mileage:      "18 MPG",
			FuelType:     "Gasoline",
			Transmission: "Automatic",
			Image:        "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800&h=600&fit=crop",
			Badge:        "Supercar",
		},
	}
}

// nextCarID returns max(existing ids)+1, or 1 for an empty collection.
// This is the single id-assignment policy for every backend; timestamp ids
// are deliberately not supported.
func nextCarID(cars []model.Car) int {
	next := 1
	for _, c := range cars {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

func nextEnquiryID(enquiries []model.Enquiry) int {
	next := 1
	for _, e := range enquiries {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

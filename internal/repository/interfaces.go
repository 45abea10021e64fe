package repository

import (
	"context"
	"errors"

	"dealerdrive-api/internal/model"
)

// ErrNotFound is returned when an update or delete names an id that is not
// in the collection.
var ErrNotFound = errors.New("record not found")

// CarRepository defines car inventory data access methods.
type CarRepository interface {
	// List returns the full car collection. An empty backing store is
	// seeded with the default catalog on first access.
	List(ctx context.Context) ([]model.Car, error)

	// Create stores a new car, assigning its id and createdAt. Any id on
	// the input is ignored.
	Create(ctx context.Context, car model.Car) (model.Car, error)

	// Update shallow-merges the non-nil fields onto the car with the given
	// id and returns the result. Returns ErrNotFound if the id is absent.
	Update(ctx context.Context, id int, updates model.CarUpdate) (model.Car, error)

	// Delete removes the car with the given id. Returns ErrNotFound if the
	// id is absent.
	Delete(ctx context.Context, id int) error

	// Close releases any resources held by the repository.
	Close() error
}

// EnquiryRepository defines enquiry data access methods. Enquiries are
// never updated, only created, listed and deleted.
type EnquiryRepository interface {
	List(ctx context.Context) ([]model.Enquiry, error)

	// Create stores a new enquiry, assigning its id and submittedAt. Any
	// id or submittedAt on the input is ignored.
	Create(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error)

	Delete(ctx context.Context, id int) error

	Close() error
}

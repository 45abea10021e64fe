package repository

import (
	"context"
	"sync"
	"time"

	"dealerdrive-api/internal/model"
)

// MemoryCarRepository implements CarRepository with an in-process
// collection. It replaces the old browser-local storage path: same
// contract, same seeding, same max+1 id policy, selected by deployment
// target instead of living as a divergent second implementation. It is
// also the repository used by tests.
type MemoryCarRepository struct {
	mu     sync.RWMutex
	cars   []model.Car
	seeded bool
}

// NewMemoryCarRepository creates an empty in-memory car repository. The
// default catalog is seeded on first access.
func NewMemoryCarRepository() *MemoryCarRepository {
	return &MemoryCarRepository{}
}

// ensureSeeded populates the collection on first access. Callers must hold
// the write lock.
func (r *MemoryCarRepository) ensureSeeded() {
	if !r.seeded {
		r.cars = DefaultCars()
		r.seeded = true
	}
}

func (r *MemoryCarRepository) List(ctx context.Context) ([]model.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSeeded()

	out := make([]model.Car, len(r.cars))
	copy(out, r.cars)
	return out, nil
}

func (r *MemoryCarRepository) Create(ctx context.Context, car model.Car) (model.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSeeded()

	car.ID = nextCarID(r.cars)
	car.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.cars = append(r.cars, car)
	return car, nil
}

func (r *MemoryCarRepository) Update(ctx context.Context, id int, updates model.CarUpdate) (model.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSeeded()

	for i, c := range r.cars {
		if c.ID == id {
			r.cars[i] = updates.Apply(c)
			return r.cars[i], nil
		}
	}
	return model.Car{}, ErrNotFound
}

func (r *MemoryCarRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureSeeded()

	for i, c := range r.cars {
		if c.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryCarRepository) Close() error { return nil }

// MemoryEnquiryRepository implements EnquiryRepository in process memory.
type MemoryEnquiryRepository struct {
	mu        sync.RWMutex
	enquiries []model.Enquiry
}

// NewMemoryEnquiryRepository creates an empty in-memory enquiry repository.
func NewMemoryEnquiryRepository() *MemoryEnquiryRepository {
	return &MemoryEnquiryRepository{}
}

func (r *MemoryEnquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Enquiry, len(r.enquiries))
	copy(out, r.enquiries)
	return out, nil
}

func (r *MemoryEnquiryRepository) Create(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enquiry.ID = nextEnquiryID(r.enquiries)
	enquiry.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	r.enquiries = append(r.enquiries, enquiry)
	return enquiry, nil
}

func (r *MemoryEnquiryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.enquiries {
		if e.ID == id {
			r.enquiries = append(r.enquiries[:i], r.enquiries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryEnquiryRepository) Close() error { return nil }

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dealerdrive-api/internal/model"
)

const (
	carsFileName      = "cars.json"
	enquiriesFileName = "enquiries.json"
)

// FileCarRepository implements CarRepository on top of a single
// pretty-printed JSON array file. Every mutation rewrites the whole file.
// Operations are serialized with a mutex so concurrent read-modify-write
// cycles cannot drop each other's changes.
type FileCarRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileCarRepository creates a file-backed car repository under dataDir,
// creating the directory if needed.
func NewFileCarRepository(dataDir string) (*FileCarRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileCarRepository{path: filepath.Join(dataDir, carsFileName)}, nil
}

// load reads the backing file. A missing file is seeded with the default
// catalog; an unreadable or corrupt file fails soft by returning the
// defaults without touching the file.
func (r *FileCarRepository) load() []model.Car {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		cars := DefaultCars()
		if err := writeJSONFile(r.path, cars); err != nil {
			log.Printf("[FileCarRepository] failed to seed %s: %v", r.path, err)
		}
		return cars
	}
	if err != nil {
		log.Printf("[FileCarRepository] failed to read %s: %v", r.path, err)
		return DefaultCars()
	}

	var cars []model.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		// Leave the corrupt file in place for inspection.
		log.Printf("[FileCarRepository] failed to parse %s: %v", r.path, err)
		return DefaultCars()
	}
	return cars
}

func (r *FileCarRepository) List(ctx context.Context) ([]model.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileCarRepository) Create(ctx context.Context, car model.Car) (model.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars := r.load()
	car.ID = nextCarID(cars)
	car.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	cars = append(cars, car)

	if err := writeJSONFile(r.path, cars); err != nil {
		return model.Car{}, fmt.Errorf("failed to save cars: %w", err)
	}
	return car, nil
}

func (r *FileCarRepository) Update(ctx context.Context, id int, updates model.CarUpdate) (model.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars := r.load()
	for i, c := range cars {
		if c.ID == id {
			cars[i] = updates.Apply(c)
			if err := writeJSONFile(r.path, cars); err != nil {
				return model.Car{}, fmt.Errorf("failed to save cars: %w", err)
			}
			return cars[i], nil
		}
	}
	return model.Car{}, ErrNotFound
}

func (r *FileCarRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cars := r.load()
	filtered := cars[:0:0]
	for _, c := range cars {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == len(cars) {
		return ErrNotFound
	}
	if err := writeJSONFile(r.path, filtered); err != nil {
		return fmt.Errorf("failed to save cars: %w", err)
	}
	return nil
}

func (r *FileCarRepository) Close() error { return nil }

// FileEnquiryRepository implements EnquiryRepository on a JSON array file,
// with the same whole-file rewrite strategy as FileCarRepository. A missing
// file is seeded with an empty collection.
type FileEnquiryRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileEnquiryRepository creates a file-backed enquiry repository under
// dataDir, creating the directory if needed.
func NewFileEnquiryRepository(dataDir string) (*FileEnquiryRepository, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileEnquiryRepository{path: filepath.Join(dataDir, enquiriesFileName)}, nil
}

func (r *FileEnquiryRepository) load() []model.Enquiry {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		if err := writeJSONFile(r.path, []model.Enquiry{}); err != nil {
			log.Printf("[FileEnquiryRepository] failed to seed %s: %v", r.path, err)
		}
		return []model.Enquiry{}
	}
	if err != nil {
		log.Printf("[FileEnquiryRepository] failed to read %s: %v", r.path, err)
		return []model.Enquiry{}
	}

	var enquiries []model.Enquiry
	if err := json.Unmarshal(data, &enquiries); err != nil {
		log.Printf("[FileEnquiryRepository] failed to parse %s: %v", r.path, err)
		return []model.Enquiry{}
	}
	return enquiries
}

func (r *FileEnquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(), nil
}

func (r *FileEnquiryRepository) Create(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	enquiries := r.load()
	enquiry.ID = nextEnquiryID(enquiries)
	enquiry.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	enquiries = append(enquiries, enquiry)

	if err := writeJSONFile(r.path, enquiries); err != nil {
		return model.Enquiry{}, fmt.Errorf("failed to save enquiries: %w", err)
	}
	return enquiry, nil
}

func (r *FileEnquiryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enquiries := r.load()
	filtered := enquiries[:0:0]
	for _, e := range enquiries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == len(enquiries) {
		return ErrNotFound
	}
	if err := writeJSONFile(r.path, filtered); err != nil {
		return fmt.Errorf("failed to save enquiries: %w", err)
	}
	return nil
}

func (r *FileEnquiryRepository) Close() error { return nil }

// writeJSONFile rewrites path with v as a pretty-printed JSON document.
func writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

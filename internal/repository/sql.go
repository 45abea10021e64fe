package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dealerdrive-api/internal/model"
)

// SQLCarRepository implements CarRepository over a database/sql handle.
// It works unchanged against the SQLite and MySQL schemas created by
// OpenSQLite and OpenMySQL; id assignment is delegated to the database's
// auto-increment column, which preserves the max+1 contract.
type SQLCarRepository struct {
	db *sql.DB
}

// NewSQLCarRepository creates a car repository over db. The handle is owned
// by the caller and is not closed by the repository.
func NewSQLCarRepository(db *sql.DB) *SQLCarRepository {
	return &SQLCarRepository{db: db}
}

const carColumns = "id, name, price, description, year, mileage, fuel_type, transmission, image, badge, featured, created_at"

func scanCar(row interface{ Scan(...interface{}) error }) (model.Car, error) {
	var c model.Car
	err := row.Scan(&c.ID, &c.Name, &c.Price, &c.Description, &c.Year,
		&c.Mileage, &c.FuelType, &c.Transmission, &c.Image, &c.Badge,
		&c.Featured, &c.CreatedAt)
	return c, err
}

func (r *SQLCarRepository) List(ctx context.Context) ([]model.Car, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+carColumns+" FROM cars ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query cars: %w", err)
	}
	defer rows.Close()

	cars := []model.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *SQLCarRepository) get(ctx context.Context, id int) (model.Car, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+carColumns+" FROM cars WHERE id = ?", id)
	c, err := scanCar(row)
	if err == sql.ErrNoRows {
		return model.Car{}, ErrNotFound
	}
	if err != nil {
		return model.Car{}, fmt.Errorf("failed to get car: %w", err)
	}
	return c, nil
}

func (r *SQLCarRepository) Create(ctx context.Context, car model.Car) (model.Car, error) {
	car.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO cars (name, price, description, year, mileage, fuel_type, transmission, image, badge, featured, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		car.Name, car.Price, car.Description, car.Year, car.Mileage,
		car.FuelType, car.Transmission, car.Image, car.Badge, car.Featured,
		car.CreatedAt)
	if err != nil {
		return model.Car{}, fmt.Errorf("failed to insert car: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Car{}, fmt.Errorf("failed to get inserted car id: %w", err)
	}
	car.ID = int(id)
	return car, nil
}

func (r *SQLCarRepository) Update(ctx context.Context, id int, updates model.CarUpdate) (model.Car, error) {
	car, err := r.get(ctx, id)
	if err != nil {
		return model.Car{}, err
	}

	merged := updates.Apply(car)
	_, err = r.db.ExecContext(ctx, `
		UPDATE cars
		SET name = ?, price = ?, description = ?, year = ?, mileage = ?,
		    fuel_type = ?, transmission = ?, image = ?, badge = ?, featured = ?
		WHERE id = ?`,
		merged.Name, merged.Price, merged.Description, merged.Year,
		merged.Mileage, merged.FuelType, merged.Transmission, merged.Image,
		merged.Badge, merged.Featured, id)
	if err != nil {
		return model.Car{}, fmt.Errorf("failed to update car: %w", err)
	}
	return merged, nil
}

func (r *SQLCarRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM cars WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close is a no-op; the database handle is shared with the enquiry
// repository and closed by the caller.
func (r *SQLCarRepository) Close() error { return nil }

// SQLEnquiryRepository implements EnquiryRepository over a database/sql
// handle, sharing the connection with SQLCarRepository.
type SQLEnquiryRepository struct {
	db *sql.DB
}

// NewSQLEnquiryRepository creates an enquiry repository over db. The handle
// is owned by the caller.
func NewSQLEnquiryRepository(db *sql.DB) *SQLEnquiryRepository {
	return &SQLEnquiryRepository{db: db}
}

func (r *SQLEnquiryRepository) List(ctx context.Context) ([]model.Enquiry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, message, car_name, car_id, submitted_at
		FROM enquiries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := []model.Enquiry{}
	for rows.Next() {
		var e model.Enquiry
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message,
			&e.CarName, &e.CarID, &e.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan enquiry: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

func (r *SQLEnquiryRepository) Create(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error) {
	enquiry.SubmittedAt = time.Now().UTC().Format(time.RFC3339)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO enquiries (name, email, phone, message, car_name, car_id, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		enquiry.Name, enquiry.Email, enquiry.Phone, enquiry.Message,
		enquiry.CarName, enquiry.CarID, enquiry.SubmittedAt)
	if err != nil {
		return model.Enquiry{}, fmt.Errorf("failed to insert enquiry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Enquiry{}, fmt.Errorf("failed to get inserted enquiry id: %w", err)
	}
	enquiry.ID = int(id)
	return enquiry, nil
}

func (r *SQLEnquiryRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM enquiries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Close is a no-op; see SQLCarRepository.Close.
func (r *SQLEnquiryRepository) Close() error { return nil }

// seedCars inserts the default catalog if the cars table is empty. The seed
// rows keep their fixed ids so the auto-increment sequence continues at 7.
func seedCars(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM cars").Scan(&count); err != nil {
		return fmt.Errorf("failed to count cars: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range DefaultCars() {
		_, err := db.Exec(`
			INSERT INTO cars (id, name, price, description, year, mileage, fuel_type, transmission, image, badge, featured, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Name, c.Price, c.Description, c.Year, c.Mileage,
			c.FuelType, c.Transmission, c.Image, c.Badge, c.Featured, c.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to seed car %d: %w", c.ID, err)
		}
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
)

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(20),
		password VARCHAR(255) NOT NULL,
		role ENUM('USER', 'ADMIN') DEFAULT 'USER',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS cars (
		id INT AUTO_INCREMENT PRIMARY KEY,
		model VARCHAR(255) NOT NULL,
		brand VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		price_per_day DECIMAL(10,2) NOT NULL,
		car_type VARCHAR(50) NOT NULL,
		description TEXT,
		seating_capacity INT NOT NULL,
		available_cars INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS flights (
		id INT AUTO_INCREMENT PRIMARY KEY,
		airline VARCHAR(255) NOT NULL,
		flight_number VARCHAR(20) NOT NULL,
		origin VARCHAR(255) NOT NULL,
		destination VARCHAR(255) NOT NULL,
		departure_time DATETIME NOT NULL,
		arrival_time DATETIME NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		available_seats INT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS hotels (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL,
		rating DECIMAL(3,2),
		price_per_night DECIMAL(10,2) NOT NULL,
		description TEXT,
		image VARCHAR(500),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(36) NOT NULL,
		type ENUM('CAR', 'FLIGHT', 'HOTEL') NOT NULL,
		item_id INT NOT NULL,
		num_persons INT DEFAULT 1,
		total_amount DECIMAL(10,2) NOT NULL,
		booking_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		status ENUM('CONFIRMED', 'CANCELLED', 'PENDING') DEFAULT 'PENDING',
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id VARCHAR(36) PRIMARY KEY,
		booking_id VARCHAR(36) NOT NULL,
		user_id VARCHAR(36) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		payment_method VARCHAR(50) NOT NULL,
		payment_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		status ENUM('SUCCESS', 'FAILED', 'PENDING') DEFAULT 'PENDING',
		FOREIGN KEY (booking_id) REFERENCES bookings(id) ON DELETE CASCADE,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
}

// InitSchema creates the seven tables when absent and seeds the reference
// rows. Re-running is idempotent: each catalog table is only seeded while
// still empty.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return seedSampleData(ctx, db)
}

func seedSampleData(ctx context.Context, db *sql.DB) error {
	if empty, err := tableEmpty(ctx, db, "locations"); err != nil {
		return err
	} else if empty {
		for _, name := range seedLocationNames[:16] {
			if _, err := db.ExecContext(ctx, "INSERT INTO locations (name) VALUES (?)", name); err != nil {
				return err
			}
		}
	}

	if empty, err := tableEmpty(ctx, db, "cars"); err != nil {
		return err
	} else if empty {
		cars := [][]any{
			{"Camry", "Toyota", "New York", 45.00, "Sedan", "Comfortable sedan for city driving", 5, 10},
			{"Civic", "Honda", "Los Angeles", 42.00, "Sedan", "Reliable and fuel-efficient", 5, 8},
			{"Mustang", "Ford", "Chicago", 85.00, "Sports", "Powerful sports car", 4, 3},
			{"Explorer", "Ford", "Houston", 75.00, "SUV", "Spacious family SUV", 7, 5},
			{"Accord", "Honda", "Phoenix", 48.00, "Sedan", "Luxury sedan with advanced features", 5, 7},
		}
		for _, car := range cars {
			if _, err := db.ExecContext(ctx, `INSERT INTO cars (model, brand, location, price_per_day, car_type, description, seating_capacity, available_cars)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, car...); err != nil {
				return err
			}
		}
	}

	if empty, err := tableEmpty(ctx, db, "flights"); err != nil {
		return err
	} else if empty {
		flights := [][]any{
			{"American Airlines", "AA101", "New York", "Los Angeles", "2025-12-15 08:00:00", "2025-12-15 11:30:00", 299.99, 150},
			{"Delta Airlines", "DL202", "Chicago", "Miami", "2025-12-20 14:00:00", "2025-12-20 18:00:00", 189.99, 120},
			{"United Airlines", "UA303", "Los Angeles", "Seattle", "2025-12-18 09:00:00", "2025-12-18 11:30:00", 159.99, 180},
			{"Southwest Airlines", "SW404", "Dallas", "Las Vegas", "2025-12-22 16:00:00", "2025-12-22 17:30:00", 89.99, 200},
		}
		for _, flight := range flights {
			if _, err := db.ExecContext(ctx, `INSERT INTO flights (airline, flight_number, origin, destination, departure_time, arrival_time, price, available_seats)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, flight...); err != nil {
				return err
			}
		}
	}

	if empty, err := tableEmpty(ctx, db, "hotels"); err != nil {
		return err
	} else if empty {
		hotels := [][]any{
			{"Grand Plaza Hotel", "New York", 4.5, 199.99, "Luxury hotel in the heart of Manhattan", "/images/hotels/grand-plaza.jpg"},
			{"Sunset Beach Resort", "Los Angeles", 4.2, 249.99, "Beachfront resort with ocean views", "/images/hotels/sunset-beach.jpg"},
			{"Downtown Business Hotel", "Chicago", 4.0, 179.99, "Modern hotel perfect for business travelers", "/images/hotels/downtown-business.jpg"},
			{"Mountain View Lodge", "Denver", 4.3, 159.99, "Cozy lodge with mountain views", "/images/hotels/mountain-view.jpg"},
			{"City Center Inn", "Miami", 3.8, 129.99, "Affordable hotel in the city center", "/images/hotels/city-center.jpg"},
		}
		for _, hotel := range hotels {
			if _, err := db.ExecContext(ctx, `INSERT INTO hotels (name, location, rating, price_per_night, description, image)
				VALUES (?, ?, ?, ?, ?, ?)`, hotel...); err != nil {
				return err
			}
		}
	}

	return nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

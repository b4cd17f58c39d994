package store

// seedLocationNames is the reference list of cities. Read-only through the
// API; seeded into both backends.
var seedLocationNames = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Boston",
}

// seedRecords returns the fallback-mode sample collections. Keys are column
// names so responses look the same in either storage mode.
func seedRecords() map[string][]Record {
	locations := make([]Record, 0, len(seedLocationNames))
	for i, name := range seedLocationNames {
		locations = append(locations, Record{"id": int64(i + 1), "name": name})
	}

	return map[string][]Record{
		"locations": locations,
		"cars": {
			{"id": int64(1), "model": "Camry", "brand": "Toyota", "location": "New York", "price_per_day": 45.00, "car_type": "Sedan", "description": "Comfortable sedan for city driving", "seating_capacity": int64(5), "available_cars": int64(10)},
			{"id": int64(2), "model": "Civic", "brand": "Honda", "location": "Los Angeles", "price_per_day": 42.00, "car_type": "Sedan", "description": "Reliable and fuel-efficient", "seating_capacity": int64(5), "available_cars": int64(8)},
			{"id": int64(3), "model": "Mustang", "brand": "Ford", "location": "Chicago", "price_per_day": 85.00, "car_type": "Sports", "description": "Powerful sports car", "seating_capacity": int64(4), "available_cars": int64(3)},
			{"id": int64(4), "model": "Explorer", "brand": "Ford", "location": "Houston", "price_per_day": 75.00, "car_type": "SUV", "description": "Spacious family SUV", "seating_capacity": int64(7), "available_cars": int64(5)},
			{"id": int64(5), "model": "Model 3", "brand": "Tesla", "location": "Phoenix", "price_per_day": 65.00, "car_type": "Electric", "description": "Electric vehicle with autopilot", "seating_capacity": int64(5), "available_cars": int64(7)},
		},
		"flights": {
			{"id": int64(1), "airline": "American Airlines", "flight_number": "AA101", "origin": "New York", "destination": "Los Angeles", "departure_time": "2025-12-15T08:00:00Z", "arrival_time": "2025-12-15T11:30:00Z", "price": 299.99, "available_seats": int64(150)},
			{"id": int64(2), "airline": "Delta Airlines", "flight_number": "DL202", "origin": "Chicago", "destination": "Miami", "departure_time": "2025-12-20T14:00:00Z", "arrival_time": "2025-12-20T18:00:00Z", "price": 189.99, "available_seats": int64(120)},
			{"id": int64(3), "airline": "United Airlines", "flight_number": "UA303", "origin": "Los Angeles", "destination": "Seattle", "departure_time": "2025-12-18T09:00:00Z", "arrival_time": "2025-12-18T11:30:00Z", "price": 159.99, "available_seats": int64(180)},
			{"id": int64(4), "airline": "Southwest Airlines", "flight_number": "SW404", "origin": "Dallas", "destination": "Las Vegas", "departure_time": "2025-12-22T16:00:00Z", "arrival_time": "2025-12-22T17:30:00Z", "price": 89.99, "available_seats": int64(200)},
		},
		"hotels": {
			{"id": int64(1), "name": "Grand Plaza Hotel", "location": "New York", "rating": 4.5, "price_per_night": 199.99, "description": "Luxury hotel in the heart of Manhattan", "image": "/images/hotels/grand-plaza.jpg"},
			{"id": int64(2), "name": "Sunset Beach Resort", "location": "Los Angeles", "rating": 4.2, "price_per_night": 249.99, "description": "Beachfront resort with ocean views", "image": "/images/hotels/sunset-beach.jpg"},
			{"id": int64(3), "name": "Downtown Business Hotel", "location": "Chicago", "rating": 4.0, "price_per_night": 179.99, "description": "Modern hotel perfect for business travelers", "image": "/images/hotels/downtown-business.jpg"},
			{"id": int64(4), "name": "Mountain View Lodge", "location": "Denver", "rating": 4.3, "price_per_night": 159.99, "description": "Cozy lodge with mountain views", "image": "/images/hotels/mountain-view.jpg"},
			{"id": int64(5), "name": "City Center Inn", "location": "Miami", "rating": 3.8, "price_per_night": 129.99, "description": "Affordable hotel in the city center", "image": "/images/hotels/city-center.jpg"},
		},
	}
}

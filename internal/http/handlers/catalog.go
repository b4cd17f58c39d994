package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelsathi/internal/store"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the car/flight/hotel catalog: public browse and
// search, admin create and delete. No update route is exposed for catalog
// items; Update exists only on the store interface.
type CatalogHandler struct {
	Store store.Store
}

// GET /api/cars
func (h CatalogHandler) ListCars(c *gin.Context) { h.list(c, "cars", "cars") }

// GET /api/flights
func (h CatalogHandler) ListFlights(c *gin.Context) { h.list(c, "flights", "flights") }

// GET /api/hotels
func (h CatalogHandler) ListHotels(c *gin.Context) { h.list(c, "hotels", "hotels") }

// GET /api/cars/:id
func (h CatalogHandler) GetCar(c *gin.Context) { h.getByID(c, "cars", "Car") }

// GET /api/flights/:id
func (h CatalogHandler) GetFlight(c *gin.Context) { h.getByID(c, "flights", "Flight") }

// GET /api/hotels/:id
func (h CatalogHandler) GetHotel(c *gin.Context) { h.getByID(c, "hotels", "Hotel") }

// POST /api/cars (admin)
func (h CatalogHandler) CreateCar(c *gin.Context) { h.create(c, "cars", "car") }

// POST /api/flights (admin)
func (h CatalogHandler) CreateFlight(c *gin.Context) { h.create(c, "flights", "flight") }

// POST /api/hotels (admin)
func (h CatalogHandler) CreateHotel(c *gin.Context) { h.create(c, "hotels", "hotel") }

// DELETE /api/cars/:id (admin)
func (h CatalogHandler) DeleteCar(c *gin.Context) { h.delete(c, "cars", "Car") }

// DELETE /api/flights/:id (admin)
func (h CatalogHandler) DeleteFlight(c *gin.Context) { h.delete(c, "flights", "Flight") }

// DELETE /api/hotels/:id (admin)
func (h CatalogHandler) DeleteHotel(c *gin.Context) { h.delete(c, "hotels", "Hotel") }

// GET /api/cars/search?location=&maxPrice=
func (h CatalogHandler) SearchCars(c *gin.Context) {
	q := store.Query{Like: map[string]string{}}
	if location := c.Query("location"); location != "" {
		q.Like["location"] = location
	}

	cars, err := h.Store.FindWhere(c.Request.Context(), "cars", q)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search cars", err)
		return
	}
	c.JSON(http.StatusOK, filterMaxPrice(cars, c.Query("maxPrice"), "price_per_day"))
}

// GET /api/flights/search?origin=&destination=&date=
func (h CatalogHandler) SearchFlights(c *gin.Context) {
	q := store.Query{Like: map[string]string{}, OrderBy: "departure_time"}
	if origin := c.Query("origin"); origin != "" {
		q.Like["origin"] = origin
	}
	if destination := c.Query("destination"); destination != "" {
		q.Like["destination"] = destination
	}

	flights, err := h.Store.FindWhere(c.Request.Context(), "flights", q)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search flights", err)
		return
	}

	// The generic store has no DATE() expression, so the day filter compares
	// the date portion of departure_time after retrieval.
	if date := c.Query("date"); date != "" {
		matched := []store.Record{}
		for _, f := range flights {
			if datePortion(f["departure_time"]) == date {
				matched = append(matched, f)
			}
		}
		flights = matched
	}
	c.JSON(http.StatusOK, flights)
}

// GET /api/hotels/search?location=&maxPrice=
func (h CatalogHandler) SearchHotels(c *gin.Context) {
	q := store.Query{Like: map[string]string{}, OrderBy: "price_per_night"}
	if location := c.Query("location"); location != "" {
		q.Like["location"] = location
	}

	hotels, err := h.Store.FindWhere(c.Request.Context(), "hotels", q)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to search hotels", err)
		return
	}
	c.JSON(http.StatusOK, filterMaxPrice(hotels, c.Query("maxPrice"), "price_per_night"))
}

func (h CatalogHandler) list(c *gin.Context, table, noun string) {
	records, err := h.Store.FindAll(c.Request.Context(), table)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch "+noun, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h CatalogHandler) getByID(c *gin.Context, table, noun string) {
	record, err := h.Store.FindByID(c.Request.Context(), table, c.Param("id"))
	if err != nil {
		respondStoreError(c, noun+" not found", "Failed to fetch "+strings.ToLower(noun), err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h CatalogHandler) create(c *gin.Context, table, noun string) {
	var data store.Record
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.Store.Insert(c.Request.Context(), table, data)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to create "+noun, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h CatalogHandler) delete(c *gin.Context, table, noun string) {
	err := h.Store.Delete(c.Request.Context(), table, c.Param("id"))
	if err != nil {
		respondStoreError(c, noun+" not found", "Failed to delete "+strings.ToLower(noun), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": noun + " deleted successfully"})
}

// filterMaxPrice keeps records whose price field does not exceed maxPrice.
// Applied after retrieval rather than pushed down as a range filter.
func filterMaxPrice(records []store.Record, maxPrice, field string) []store.Record {
	if maxPrice == "" {
		return records
	}
	limit, err := strconv.ParseFloat(maxPrice, 64)
	if err != nil {
		return records
	}
	out := []store.Record{}
	for _, rec := range records {
		if price, ok := store.AsFloat(rec[field]); ok && price <= limit {
			out = append(out, rec)
		}
	}
	return out
}

// datePortion extracts the YYYY-MM-DD part of a departure timestamp, which
// is a time.Time in backed mode and a string in fallback mode.
func datePortion(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format("2006-01-02")
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC().Format("2006-01-02")
		}
		if len(t) >= 10 {
			return t[:10]
		}
		return t
	default:
		return ""
	}
}

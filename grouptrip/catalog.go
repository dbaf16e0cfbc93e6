package grouptrip

import (
	"context"

	"github.com/hoplytravel/hoply-api/models"
)

// StaticCatalog serves a fixed destination set from memory. It is the
// default catalog when no database is configured and the one tests use.
type StaticCatalog struct {
	byID    map[string]models.Destination
	ordered []models.Destination
}

// NewStaticCatalog builds a catalog over the given destinations
func NewStaticCatalog(destinations []models.Destination) *StaticCatalog {
	c := &StaticCatalog{
		byID:    make(map[string]models.Destination, len(destinations)),
		ordered: append([]models.Destination(nil), destinations...),
	}
	for _, d := range destinations {
		c.byID[d.ID] = d
	}
	return c
}

// Exists reports whether destID is in the catalog
func (c *StaticCatalog) Exists(_ context.Context, destID string) (bool, error) {
	_, ok := c.byID[destID]
	return ok, nil
}

// Lookup returns the destination stored under destID
func (c *StaticCatalog) Lookup(_ context.Context, destID string) (models.Destination, error) {
	d, ok := c.byID[destID]
	if !ok {
		return models.Destination{}, ErrDestinationNotFound
	}
	return d, nil
}

// List returns all destinations in catalog order
func (c *StaticCatalog) List(_ context.Context) ([]models.Destination, error) {
	return append([]models.Destination(nil), c.ordered...), nil
}

// DefaultDestinations is the built-in Argentine destination set the
// product ships with. The origin city is listed but never votable from
// the UI.
func DefaultDestinations() []models.Destination {
	return []models.Destination{
		{ID: "buenos-aires", Name: "Buenos Aires", IATA: "EZE", Lat: -34.6037, Lng: -58.3816, Image: "https://images.unsplash.com/photo-1589909202802-8f4aadce1849?w=600&q=80", IsOrigin: true, FlightEstimate: 0},
		{ID: "bariloche", Name: "San Carlos de Bariloche", IATA: "BRC", Lat: -41.1335, Lng: -71.3103, Image: "https://images.unsplash.com/photo-1597479052352-3fba4f46f5f6?w=600&q=80", FlightEstimate: 650000},
		{ID: "mendoza", Name: "Mendoza", IATA: "MDZ", Lat: -32.8895, Lng: -68.8458, Image: "https://images.unsplash.com/photo-1600618528240-fb9fc964b853?w=600&q=80", FlightEstimate: 420000},
		{ID: "iguazu", Name: "Puerto Iguazú", IATA: "IGR", Lat: -25.5972, Lng: -54.5786, Image: "https://images.unsplash.com/photo-1540174401473-df5f1c06c716?w=600&q=80", FlightEstimate: 340000},
		{ID: "ushuaia", Name: "Ushuaia", IATA: "USH", Lat: -54.8019, Lng: -68.3030, Image: "https://images.unsplash.com/photo-1551627059-1ceff5c55a1e?w=600&q=80", FlightEstimate: 950000},
		{ID: "salta", Name: "Salta", IATA: "SLA", Lat: -24.7829, Lng: -65.4232, Image: "https://images.unsplash.com/photo-1591378603223-e15b45a81640?w=600&q=80", FlightEstimate: 380000},
		{ID: "calafate", Name: "El Calafate", IATA: "FTE", Lat: -50.3403, Lng: -72.2648, Image: "https://images.unsplash.com/photo-1589128777073-263566ae5e4d?w=600&q=80", FlightEstimate: 880000},
		{ID: "cordoba", Name: "Córdoba", IATA: "COR", Lat: -31.4201, Lng: -64.1888, Image: "https://images.unsplash.com/photo-1617724613498-3f8fed3b3670?w=600&q=80", FlightEstimate: 280000},
		{ID: "puerto-madryn", Name: "Puerto Madryn", IATA: "PMY", Lat: -42.7692, Lng: -65.0385, Image: "https://images.unsplash.com/photo-1598534659089-dcb85e145f6c?w=600&q=80", FlightEstimate: 720000},
		{ID: "jujuy", Name: "San Salvador de Jujuy", IATA: "JUJ", Lat: -24.1858, Lng: -65.2995, Image: "https://images.unsplash.com/photo-1609863539586-ee50e2e73e50?w=600&q=80", FlightEstimate: 390000},
	}
}

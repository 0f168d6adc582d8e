package repository

// TimezoneRepository defines the interface for timezone lookups by coordinates
type TimezoneRepository interface {
	GetTimezoneName(lat, lon float64) (string, error)
}

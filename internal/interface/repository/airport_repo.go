package repository

import (
	"context"
	"time"

	"travel-agent-service/internal/domain/entity"
	"travel-agent-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID          uint           `gorm:"primaryKey"`
	AirportCode string         `gorm:"column:airportcode;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityName    string         `gorm:"column:cityname"`
	CountryCode string         `gorm:"column:countrycode"`
	Latitude    float64        `gorm:"column:latitude"`
	Longitude   float64        `gorm:"column:longitude"`
	TzName      string         `gorm:"column:tzname"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// LoadAll reads every non-deleted airport ordered by code
func (r *GormAirportRepository) LoadAll(ctx context.Context) ([]entity.Airport, error) {
	var rows []Airports
	result := r.db.WithContext(ctx).Order("airportcode").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	airports := make([]entity.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, entity.Airport{
			Code:      row.AirportCode,
			Name:      row.AirportName,
			City:      row.CityName,
			Country:   row.CountryCode,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			TzName:    row.TzName,
		})
	}
	return airports, nil
}

package fetchlog

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LogFetch(fetch *Fetch) error
	GetRecentFetch(latitude, longitude string) (*Fetch, error)
}

type FetchSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &FetchSQLRepository{db: db}
}

func (r *FetchSQLRepository) LogFetch(fetch *Fetch) error {
	if fetch.CreatedAt.IsZero() {
		fetch.CreatedAt = time.Now()
	}

	return r.db.Create(fetch).Error
}

func (r *FetchSQLRepository) GetRecentFetch(latitude, longitude string) (*Fetch, error) {
	var fetch Fetch
	err := r.db.Where("latitude = ? AND longitude = ?", latitude, longitude).Order("created_at DESC").First(&fetch).Error
	if err != nil {
		return nil, err
	}
	return &fetch, nil
}

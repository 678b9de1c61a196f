package fetchlog

import (
	"time"
)

// Fetch is one forecast API call made by the service.
type Fetch struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Latitude     string    `json:"latitude" gorm:"index:idx_coordinates_created_at,priority:1"`
	Longitude    string    `json:"longitude" gorm:"index:idx_coordinates_created_at,priority:2"`
	Time         string    `json:"time,omitempty" gorm:"column:forecast_time"`
	StatusCode   int       `json:"status_code" gorm:"column:status_code"`
	APICalls     int       `json:"api_calls" gorm:"column:api_calls"`
	ResponseTime string    `json:"response_time,omitempty" gorm:"column:response_time"`
	CacheControl string    `json:"cache_control,omitempty" gorm:"column:cache_control"`
	Expires      string    `json:"expires,omitempty" gorm:"column:expires"`
	Sections     string    `json:"sections,omitempty" gorm:"column:sections"`
	Error        string    `json:"error,omitempty" gorm:"column:error"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_coordinates_created_at,priority:3"`
}

func (Fetch) TableName() string {
	return "forecast_fetches"
}

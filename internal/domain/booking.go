package domain

import "time"

type Booking struct {
	ID          int32     `json:"id"`
	UserID      int32     `json:"user_id"`
	VehicleID   int32     `json:"vehicle_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

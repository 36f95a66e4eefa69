package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile guest profile, exactly one per identity
type Profile struct {
	UserID      uuid.UUID
	FullName    string
	Email       string
	IsAdmin     bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DashboardStats aggregate numbers for the admin dashboard
type DashboardStats struct {
	TotalRooms    int64
	TotalBookings int64
	TotalProfiles int64
	Revenue       int64
}

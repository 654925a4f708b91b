package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"index;size:100;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:50;not null" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// Well represents wells table
type Well struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Location  string    `gorm:"size:255;not null" json:"location"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Well) TableName() string {
	return "wells"
}

// Report represents reports table.
// CreatedByID and WellID are plain columns: the referenced rows may be gone,
// in which case Creator and Well load as nil.
type Report struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	Pressure    float64   `json:"pressure"`
	WellStatus  string    `gorm:"size:100" json:"wellStatus"`
	Temperature float64   `json:"temperature"`
	CreatedByID uint      `gorm:"index" json:"-"`
	WellID      uint      `gorm:"index" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	Creator     *User     `gorm:"foreignKey:CreatedByID" json:"-"`
	Well        *Well     `gorm:"foreignKey:WellID" json:"-"`
}

func (Report) TableName() string {
	return "reports"
}

// UserRef is the populated createdBy reference
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// WellRef is the populated well reference
type WellRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ReportResponse DTO with references resolved
type ReportResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Pressure    float64   `json:"pressure"`
	WellStatus  string    `json:"wellStatus"`
	Temperature float64   `json:"temperature"`
	CreatedBy   *UserRef  `json:"createdBy"`
	Well        *WellRef  `json:"well"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *Report) ToResponse() *ReportResponse {
	resp := &ReportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		Pressure:    r.Pressure,
		WellStatus:  r.WellStatus,
		Temperature: r.Temperature,
		CreatedAt:   r.CreatedAt,
	}
	if r.Creator != nil {
		resp.CreatedBy = &UserRef{ID: r.Creator.ID, Username: r.Creator.Username}
	}
	if r.Well != nil {
		resp.Well = &WellRef{ID: r.Well.ID, Name: r.Well.Name}
	}
	return resp
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// AutoMigrate creates missing tables and columns
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Well{},
		&Report{},
	)
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// ServicePackage is immutable reference data. ID 1 is reserved for the
// permanently free tier.
const FreePackageID uint = 1

type ServicePackage struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description  string         `gorm:"size:500" json:"description"`
	Price        int64          `gorm:"not null" json:"price"`
	DurationDays int            `gorm:"column:duration;not null" json:"duration"`
	Tier         PackageTier    `gorm:"column:package_type;not null;size:20" json:"packageType"`
	Position     int            `gorm:"not null;default:0" json:"position"`
	Features     datatypes.JSON `json:"features"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (ServicePackage) TableName() string {
	return "service_packages"
}

// IsFree reports whether the package is the reserved free tier.
func (p *ServicePackage) IsFree() bool {
	return p.ID == FreePackageID
}

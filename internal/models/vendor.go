package models

import (
	"gorm.io/gorm"
)

const (
	VendorStatusActive   = "active"
	VendorStatusInactive = "inactive"
)

// Vendor is a trader (pedagang) renting one or more stalls. Vendor codes
// are minted with the CUST prefix.
type Vendor struct {
	gorm.Model
	VendorCode string `gorm:"uniqueIndex;not null"`
	Name       string `gorm:"not null"`
	Phone      string
	Address    string
	Status     string `gorm:"not null;default:'active'"`

	Stalls []Stall `gorm:"foreignKey:VendorID"`
}

// ActiveStalls filters the preloaded stalls down to the ones billing
// should consider.
func (v *Vendor) ActiveStalls() []Stall {
	out := make([]Stall, 0, len(v.Stalls))
	for _, s := range v.Stalls {
		if s.Status == StallStatusActive {
			out = append(out, s)
		}
	}
	return out
}

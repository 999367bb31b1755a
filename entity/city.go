package entity

import (
	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	State    string `gorm:"not null" json:"state"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Restaurants []Restaurant `json:"-"`
}

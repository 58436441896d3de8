package models

import "gorm.io/gorm"

type Comment struct {
	gorm.Model

	Content      string `gorm:"not null"`
	DiscussionID uint   `gorm:"not null;index"`
	AuthorID     uint   `gorm:"not null;index"`

	// Relationships
	Discussion Discussion `gorm:"foreignKey:DiscussionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Author     User       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

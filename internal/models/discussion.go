package models

import "gorm.io/gorm"

type Discussion struct {
	gorm.Model

	Title     string `gorm:"not null"`
	Content   string
	ProjectID uint `gorm:"not null;index"`
	AuthorID  uint `gorm:"not null;index"`

	// Relationships
	Project  Project   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:DiscussionID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Canonical project status vocabulary. The legacy client displayed
// "Active|On Hold|Completed"; the persisted set below is authoritative and
// the client vocabulary is the side being migrated.
const (
	ProjectStatusTodo       = "TODO"
	ProjectStatusInProgress = "IN_PROGRESS"
	ProjectStatusDone       = "DONE"
)

const (
	ProjectPriorityLow    = "LOW"
	ProjectPriorityMedium = "MEDIUM"
	ProjectPriorityHigh   = "HIGH"
)

func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusTodo, ProjectStatusInProgress, ProjectStatusDone:
		return true
	}
	return false
}

func ValidProjectPriority(priority string) bool {
	switch priority {
	case ProjectPriorityLow, ProjectPriorityMedium, ProjectPriorityHigh:
		return true
	}
	return false
}

type Project struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	Status      string `gorm:"not null"`
	Priority    string `gorm:"not null;default:MEDIUM"`
	DueDate     *time.Time
	OwnerID     uint  `gorm:"not null;index"`
	ManagerID   *uint `gorm:"index"`

	// Relationships
	Owner       User         `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Manager     *User        `gorm:"foreignKey:ManagerID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Tasks       []Task       `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Discussions []Discussion `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

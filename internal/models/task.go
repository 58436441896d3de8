package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TaskStatusTodo       = "To-Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

func ValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

func ValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	gorm.Model

	Title       string `gorm:"not null"`
	Description *string
	Status      string         `gorm:"not null;default:To-Do"`
	Priority    string         `gorm:"not null;default:Medium"`
	Tags        datatypes.JSON `gorm:"type:jsonb"`
	DueDate     *time.Time
	ProjectID   uint `gorm:"not null;index"`
	AssigneeID  uint `gorm:"not null;index"`

	// Relationships
	Project  Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignee User    `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

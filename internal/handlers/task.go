package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/db"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/types"
	"gorm.io/datatypes"
)

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required"`
	ProjectID   uint     `json:"projectId" binding:"required"`
	AssigneeID  uint     `json:"assigneeId" binding:"required"`
	Description *string  `json:"description"`
	Deadline    string   `json:"deadline"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
}

type TaskProjectSummary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type TaskResponse struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
	Tags        []string            `json:"tags"`
	DueDate     *time.Time          `json:"dueDate"`
	ProjectID   uint                `json:"projectId"`
	AssigneeID  uint                `json:"assigneeId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Project     *TaskProjectSummary `json:"project,omitempty"`
	Assignee    *types.UserResponse `json:"assignee,omitempty"`
}

func decodeTags(raw datatypes.JSON) []string {
	tags := []string{}

	if len(raw) == 0 {
		return tags
	}

	if err := json.Unmarshal(raw, &tags); err != nil {
		return []string{}
	}

	return tags
}

func toTaskResponse(task models.Task) TaskResponse {
	response := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		Tags:        decodeTags(task.Tags),
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.Project.ID != 0 {
		response.Project = &TaskProjectSummary{
			ID:     task.Project.ID,
			Name:   task.Project.Name,
			Status: task.Project.Status,
		}
	}

	if task.Assignee.ID != 0 {
		assignee := toUserResponse(task.Assignee)
		response.Assignee = &assignee
	}

	return response
}

func CreateTask(ctx *gin.Context) {
	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title, projectId and assigneeId are required"})
		return
	}

	if req.Status == "" {
		req.Status = models.TaskStatusTodo
	}

	if !models.ValidTaskStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of To-Do, In Progress, Done"})
		return
	}

	if req.Priority == "" {
		req.Priority = models.TaskPriorityMedium
	}

	if !models.ValidTaskPriority(req.Priority) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Priority must be one of Low, Medium, High"})
		return
	}

	dueDate, err := parseDeadline(req.Deadline)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must be an RFC3339 timestamp or YYYY-MM-DD date"})
		return
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}

	tagsJSON, err := json.Marshal(req.Tags)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tags format"})
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Tags:        datatypes.JSON(tagsJSON),
		DueDate:     dueDate,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
	}

	if err := db.DB.Create(&task).Error; err != nil {
		log.Printf("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	if err := db.DB.Preload("Project").Preload("Assignee").First(&task, task.ID).Error; err != nil {
		log.Printf("Failed to load created task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created task"})
		return
	}

	ctx.JSON(http.StatusCreated, toTaskResponse(task))
}

func ListTasks(ctx *gin.Context) {
	var tasks []models.Task

	err := db.DB.
		Preload("Project").
		Preload("Assignee").
		Find(&tasks).Error

	if err != nil {
		log.Printf("Failed to list tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		response = append(response, toTaskResponse(task))
	}

	ctx.JSON(http.StatusOK, response)
}

package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/db"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/types"
	"github.com/synergysphere/synergysphere/internal/utils"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Status      string `json:"status" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	ManagerID   *uint  `json:"managerId"`
}

type ProjectResponse struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
	DueDate     *time.Time          `json:"dueDate"`
	CreatedAt   time.Time           `json:"createdAt"`
	Owner       types.UserResponse  `json:"owner"`
	Manager     *types.UserResponse `json:"manager,omitempty"`
	Tasks       []TaskResponse      `json:"tasks"`
}

// parseDeadline accepts either a full RFC3339 timestamp or a bare date.
func parseDeadline(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", raw)

	if err != nil {
		return nil, err
	}

	return &t, nil
}

func toProjectResponse(project models.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Status:      project.Status,
		Priority:    project.Priority,
		DueDate:     project.DueDate,
		CreatedAt:   project.CreatedAt,
		Owner:       toUserResponse(project.Owner),
		Tasks:       make([]TaskResponse, 0, len(project.Tasks)),
	}

	if project.Manager != nil {
		manager := toUserResponse(*project.Manager)
		response.Manager = &manager
	}

	for _, task := range project.Tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(task))
	}

	return response
}

func CreateProject(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name and status are required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !models.ValidProjectStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status must be one of TODO, IN_PROGRESS, DONE"})
		return
	}

	if req.Priority == "" {
		req.Priority = models.ProjectPriorityMedium
	}

	if !models.ValidProjectPriority(req.Priority) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Priority must be one of LOW, MEDIUM, HIGH"})
		return
	}

	dueDate, err := parseDeadline(req.Deadline)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Deadline must be an RFC3339 timestamp or YYYY-MM-DD date"})
		return
	}

	// Owner is always the authenticated caller, never a caller-supplied value.
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     dueDate,
		OwnerID:     userID,
		ManagerID:   req.ManagerID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	if err := db.DB.Preload("Owner").Preload("Manager").First(&project, project.ID).Error; err != nil {
		log.Printf("Failed to load created project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created project"})
		return
	}

	ctx.JSON(http.StatusCreated, toProjectResponse(project))
}

func ListProjects(ctx *gin.Context) {
	var projects []models.Project

	err := db.DB.
		Preload("Tasks").
		Preload("Owner").
		Preload("Manager").
		Find(&projects).Error

	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, toProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

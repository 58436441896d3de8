package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere/db"
	"github.com/synergysphere/synergysphere/internal/models"
	"github.com/synergysphere/synergysphere/internal/types"
	"github.com/synergysphere/synergysphere/internal/utils"
	"gorm.io/gorm"
)

type CreateDiscussionRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type DiscussionResponse struct {
	ID           uint               `json:"id"`
	Title        string             `json:"title"`
	Content      string             `json:"content"`
	ProjectID    uint               `json:"projectId"`
	Author       types.UserResponse `json:"author"`
	CommentCount int                `json:"commentCount"`
	CreatedAt    time.Time          `json:"createdAt"`
}

type CommentResponse struct {
	ID           uint               `json:"id"`
	Content      string             `json:"content"`
	DiscussionID uint               `json:"discussionId"`
	Author       types.UserResponse `json:"author"`
	CreatedAt    time.Time          `json:"createdAt"`
}

func toDiscussionResponse(discussion models.Discussion) DiscussionResponse {
	return DiscussionResponse{
		ID:           discussion.ID,
		Title:        discussion.Title,
		Content:      discussion.Content,
		ProjectID:    discussion.ProjectID,
		Author:       toUserResponse(discussion.Author),
		CommentCount: len(discussion.Comments),
		CreatedAt:    discussion.CreatedAt,
	}
}

func toCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:           comment.ID,
		Content:      comment.Content,
		DiscussionID: comment.DiscussionID,
		Author:       toUserResponse(comment.Author),
		CreatedAt:    comment.CreatedAt,
	}
}

func CreateDiscussion(ctx *gin.Context) {
	var req CreateDiscussionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	discussion := models.Discussion{
		Title:     req.Title,
		Content:   req.Content,
		ProjectID: project.ID,
		AuthorID:  userID,
	}

	if err := db.DB.Create(&discussion).Error; err != nil {
		log.Printf("Failed to create discussion: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discussion"})
		return
	}

	if err := db.DB.Preload("Author").First(&discussion, discussion.ID).Error; err != nil {
		log.Printf("Failed to load created discussion: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created discussion"})
		return
	}

	BroadcastRefresh(strconv.FormatUint(uint64(project.ID), 10))

	ctx.JSON(http.StatusCreated, toDiscussionResponse(discussion))
}

func ListDiscussions(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var discussions []models.Discussion

	err = db.DB.
		Preload("Author").
		Preload("Comments").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&discussions).Error

	if err != nil {
		log.Printf("Failed to list discussions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve discussions"})
		return
	}

	response := make([]DiscussionResponse, 0, len(discussions))

	for _, discussion := range discussions {
		response = append(response, toDiscussionResponse(discussion))
	}

	ctx.JSON(http.StatusOK, response)
}

func CreateComment(ctx *gin.Context) {
	var req CreateCommentRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	discussionID, err := utils.GetDiscussionID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var discussion models.Discussion

	if err := db.DB.First(&discussion, discussionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		} else {
			log.Printf("Failed to fetch discussion: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve discussion"})
		}
		return
	}

	comment := models.Comment{
		Content:      req.Content,
		DiscussionID: discussion.ID,
		AuthorID:     userID,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	if err := db.DB.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		log.Printf("Failed to load created comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created comment"})
		return
	}

	BroadcastRefresh(strconv.FormatUint(uint64(discussion.ProjectID), 10))

	ctx.JSON(http.StatusCreated, toCommentResponse(comment))
}

func ListComments(ctx *gin.Context) {
	discussionID, err := utils.GetDiscussionID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var discussion models.Discussion

	if err := db.DB.First(&discussion, discussionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Discussion not found"})
		} else {
			log.Printf("Failed to fetch discussion: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve discussion"})
		}
		return
	}

	var comments []models.Comment

	err = db.DB.
		Preload("Author").
		Where("discussion_id = ?", discussionID).
		Order("created_at ASC").
		Find(&comments).Error

	if err != nil {
		log.Printf("Failed to list comments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]CommentResponse, 0, len(comments))

	for _, comment := range comments {
		response = append(response, toCommentResponse(comment))
	}

	ctx.JSON(http.StatusOK, response)
}

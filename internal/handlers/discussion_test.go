package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/synergysphere/synergysphere/db"
	"github.com/synergysphere/synergysphere/internal/models"
)

func TestCreateDiscussion(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)

	path := fmt.Sprintf("/projects/%d/discussions", project.ID)
	w := performRequest(router, "POST", path, map[string]interface{}{
		"title":   "Kickoff",
		"content": "Agenda for the first sprint",
	}, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)

	if body["title"] != "Kickoff" {
		t.Errorf("title = %v, expected Kickoff", body["title"])
	}

	author, ok := body["author"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected an author object, got %v", body)
	}
	if uint(author["id"].(float64)) != user.ID {
		t.Errorf("author id = %v, expected the authenticated caller %d", author["id"], user.ID)
	}
}

func TestCreateDiscussion_MissingTitle(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)

	path := fmt.Sprintf("/projects/%d/discussions", project.ID)
	w := performRequest(router, "POST", path, map[string]interface{}{
		"content": "no title",
	}, token)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestCreateDiscussion_ProjectNotFound(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, token := createTestUser(t, "author@example.com")

	w := performRequest(router, "POST", "/projects/9999/discussions", map[string]interface{}{
		"title": "Orphan",
	}, token)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestListDiscussions_NewestFirst(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"Oldest", "Middle", "Newest"} {
		discussion := models.Discussion{
			Title:     title,
			ProjectID: project.ID,
			AuthorID:  user.ID,
		}
		discussion.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.DB.Create(&discussion).Error; err != nil {
			t.Fatalf("failed to create discussion: %v", err)
		}
	}

	path := fmt.Sprintf("/projects/%d/discussions", project.ID)
	w := performRequest(router, "GET", path, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	list := decodeListBody(t, w)
	if len(list) != 3 {
		t.Fatalf("expected 3 discussions, got %d", len(list))
	}
	if list[0]["title"] != "Newest" || list[2]["title"] != "Oldest" {
		t.Errorf("expected newest-first ordering, got %v, %v, %v", list[0]["title"], list[1]["title"], list[2]["title"])
	}
}

func TestListDiscussions_ProjectNotFound(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, token := createTestUser(t, "author@example.com")

	w := performRequest(router, "GET", "/projects/9999/discussions", nil, token)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func createTestDiscussion(t *testing.T, projectID, authorID uint) models.Discussion {
	t.Helper()

	discussion := models.Discussion{
		Title:     "Thread",
		ProjectID: projectID,
		AuthorID:  authorID,
	}

	if err := db.DB.Create(&discussion).Error; err != nil {
		t.Fatalf("failed to create discussion: %v", err)
	}

	return discussion
}

func TestCreateComment(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)
	discussion := createTestDiscussion(t, project.ID, user.ID)

	path := fmt.Sprintf("/discussions/%d/comments", discussion.ID)
	w := performRequest(router, "POST", path, map[string]interface{}{
		"content": "First!",
	}, token)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["content"] != "First!" {
		t.Errorf("content = %v, expected First!", body["content"])
	}
	if uint(body["discussionId"].(float64)) != discussion.ID {
		t.Errorf("discussionId = %v, expected %d", body["discussionId"], discussion.ID)
	}
}

func TestCreateComment_DiscussionNotFound(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	_, token := createTestUser(t, "author@example.com")

	w := performRequest(router, "POST", "/discussions/9999/comments", map[string]interface{}{
		"content": "Lost",
	}, token)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestCreateComment_MissingContent(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)
	discussion := createTestDiscussion(t, project.ID, user.ID)

	path := fmt.Sprintf("/discussions/%d/comments", discussion.ID)
	w := performRequest(router, "POST", path, map[string]interface{}{}, token)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestListComments_OldestFirst(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)
	discussion := createTestDiscussion(t, project.ID, user.ID)

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		comment := models.Comment{
			Content:      content,
			DiscussionID: discussion.ID,
			AuthorID:     user.ID,
		}
		comment.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.DB.Create(&comment).Error; err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}

	path := fmt.Sprintf("/discussions/%d/comments", discussion.ID)
	w := performRequest(router, "GET", path, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	list := decodeListBody(t, w)
	if len(list) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(list))
	}
	if list[0]["content"] != "first" || list[2]["content"] != "third" {
		t.Errorf("expected oldest-first ordering, got %v, %v, %v", list[0]["content"], list[1]["content"], list[2]["content"])
	}

	if _, ok := list[0]["author"].(map[string]interface{}); !ok {
		t.Error("expected eagerly loaded author")
	}
}

func TestDiscussionCommentCount(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	user, token := createTestUser(t, "author@example.com")
	project := createTestProject(t, user.ID)
	discussion := createTestDiscussion(t, project.ID, user.ID)

	for i := 0; i < 2; i++ {
		comment := models.Comment{
			Content:      "reply",
			DiscussionID: discussion.ID,
			AuthorID:     user.ID,
		}
		if err := db.DB.Create(&comment).Error; err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}

	path := fmt.Sprintf("/projects/%d/discussions", project.ID)
	w := performRequest(router, "GET", path, nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	list := decodeListBody(t, w)
	if len(list) != 1 {
		t.Fatalf("expected 1 discussion, got %d", len(list))
	}
	if count := list[0]["commentCount"].(float64); count != 2 {
		t.Errorf("commentCount = %v, expected 2", count)
	}
}

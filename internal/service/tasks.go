package service

import (
	"errors"                       // Error matching
	"strings"                      // String manipulation
	"task_tracker/internal/domain" // Importing domain models
	"time"                         // Date parsing

	"gorm.io/gorm" // GORM ORM library
)

// DefaultPriority is used when a task is created without one
const DefaultPriority = "Medium"

// dueDateLayout is the boundary format for due dates
const dueDateLayout = "2006-01-02"

// TaskService performs all task operations on behalf of an explicit
// acting user. Every mutating operation enforces the ownership
// invariant: a task is only visible to the user referenced by its
// UserID.
type TaskService struct {
	db *gorm.DB // Database handle
}

// NewTaskService creates a TaskService backed by the given database
func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// parseDueDate parses an optional YYYY-MM-DD form value. An empty
// string means no due date (nil).
func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return nil, ErrInvalidDate // Malformed or impossible calendar date
	}
	return &t, nil
}

// find loads a task and checks it belongs to the acting user
func (s *TaskService) find(userID, taskID uint) (*domain.Task, error) {
	var task domain.Task
	if err := s.db.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound // No such task
		}
		return nil, err
	}
	// Ownership check
	if task.UserID != userID {
		return nil, ErrNotOwner
	}
	return &task, nil
}

// List returns the acting user's tasks in insertion order. A non-empty
// search term filters by case-insensitive substring match on content.
func (s *TaskService) List(userID uint, search string) ([]domain.Task, error) {
	query := s.db.Where("user_id = ?", userID).Order("id asc")
	if search != "" {
		// Case-insensitive contains; works on both MySQL and SQLite
		query = query.Where("LOWER(content) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	var tasks []domain.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create adds a new task owned by the acting user. Content is
// required; priority defaults to Medium; the due date, when present,
// must be a valid YYYY-MM-DD literal.
func (s *TaskService) Create(userID uint, content, priority, dueDate string) (*domain.Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if priority == "" {
		priority = DefaultPriority
	}
	due, err := parseDueDate(dueDate)
	if err != nil {
		return nil, err
	}
	task := domain.Task{
		Content:  content,  // Task description
		UserID:   userID,   // Owner, immutable from here on
		Priority: priority, // Free text, no enum enforcement
		DueDate:  due,      // Nil when absent
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Get returns a single task for the update form. Same ownership rules
// as the mutating operations.
func (s *TaskService) Get(userID, taskID uint) (*domain.Task, error) {
	return s.find(userID, taskID)
}

// Update overwrites content, priority and due date of an owned task.
// An empty due date clears it to null. Completion state, creation time
// and ownership are never touched.
func (s *TaskService) Update(userID, taskID uint, content, priority, dueDate string) (*domain.Task, error) {
	task, err := s.find(userID, taskID)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if priority == "" {
		priority = DefaultPriority
	}
	due, err := parseDueDate(dueDate)
	if err != nil {
		return nil, err
	}
	// Map update so a nil due date is written as NULL
	updates := map[string]any{
		"content":  content,
		"priority": priority,
		"due_date": due,
	}
	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips the completion flag of an owned task
func (s *TaskService) Toggle(userID, taskID uint) (*domain.Task, error) {
	task, err := s.find(userID, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(task).Update("is_completed", !task.IsCompleted).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes an owned task. Terminal from any state.
func (s *TaskService) Delete(userID, taskID uint) error {
	task, err := s.find(userID, taskID)
	if err != nil {
		return err
	}
	return s.db.Delete(task).Error
}

// ClearAll deletes every task owned by the acting user in a single
// statement. No-op when the user has no tasks.
func (s *TaskService) ClearAll(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&domain.Task{}).Error
}

package api

import (
	"context"                       // Context for Redis operations
	"errors"                        // Error matching
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion
	"task_tracker/internal/domain"  // Importing domain models
	"task_tracker/internal/service" // Task service
	"task_tracker/internal/utils"   // Cache and flash helpers
	"time"                          // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// taskCacheTTL is how long an unfiltered task list stays cached
const taskCacheTTL = 60 * time.Second

// taskCacheKey builds the per-user cache key for the task list
func taskCacheKey(userID uint) string {
	return "tasks:user:" + strconv.Itoa(int(userID))
}

// invalidateTaskCache drops the cached task list after a mutation
func invalidateTaskCache(rdb *redis.Client, userID uint) {
	if rdb == nil {
		return // Caching disabled
	}
	_ = utils.DeleteCache(context.Background(), rdb, taskCacheKey(userID))
}

// taskIDParam parses the :id route parameter
func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// redirectDashboard is the common landing after every task mutation.
// Ownership violations and missing tasks end up here with no message,
// so nothing about other users' tasks is revealed.
func redirectDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, "/dashboard")
}

// DashboardHandler renders the acting user's task list, optionally
// filtered by a search term. Unfiltered lists are served from Redis
// when possible.
func DashboardHandler(svc *service.TaskService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Acting identity, set by the session middleware
		search := c.Query("search")   // Optional search term
		username := c.GetString("username")
		ctx := context.Background() // Context for Redis operations
		cacheKey := taskCacheKey(userID)

		var tasks []domain.Task
		cached := false
		// Only unfiltered lists are cached
		if search == "" && rdb != nil {
			if found, err := utils.GetCache(ctx, rdb, cacheKey, &tasks); err == nil && found {
				cached = true
			}
		}
		if !cached {
			var err error
			tasks, err = svc.List(userID, search)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": userID,
					"error":   err.Error(),
				}).Error("Failed to list tasks")
				c.String(http.StatusInternalServerError, "Failed to load tasks")
				return
			}
			if search == "" && rdb != nil {
				_ = utils.SetCache(ctx, rdb, cacheKey, tasks, taskCacheTTL) // Cache the full list
			}
		}
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"username": username,          // Current user for the header
			"tasks":    tasks,             // Task list to render
			"search":   search,            // Echo the search term into the form
			"flash":    utils.GetFlash(c), // Pending flash message, if any
		})
	}
}

// AddTaskHandler creates a task from the dashboard form
func AddTaskHandler(svc *service.TaskService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")      // Acting identity
		content := c.PostForm("content")   // Required task text
		priority := c.PostForm("priority") // Optional, defaults to Medium
		dueDate := c.PostForm("due_date")  // Optional YYYY-MM-DD literal
		task, err := svc.Create(userID, content, priority, dueDate)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyContent):
				utils.SetFlash(c, "Task content is required!")
			case errors.Is(err, service.ErrInvalidDate):
				utils.SetFlash(c, "Due date must be in YYYY-MM-DD format!")
			default:
				logrus.WithFields(logrus.Fields{
					"user_id": userID,
					"error":   err.Error(),
				}).Error("Failed to create task")
				utils.SetFlash(c, "Something went wrong, please try again.")
			}
			redirectDashboard(c)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,  // Owner
			"task_id": task.ID, // New task
		}).Info("Task created")
		invalidateTaskCache(rdb, userID)
		redirectDashboard(c)
	}
}

// UpdateTaskPageHandler renders the edit form for an owned task.
// Foreign or missing tasks redirect silently to the dashboard.
func UpdateTaskPageHandler(svc *service.TaskService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Acting identity
		taskID, ok := taskIDParam(c)
		if !ok {
			redirectDashboard(c)
			return
		}
		task, err := svc.Get(userID, taskID)
		if err != nil {
			// Not found and not owned are indistinguishable here
			redirectDashboard(c)
			return
		}
		dueValue := "" // Prefill for the date input
		if task.DueDate != nil {
			dueValue = task.DueDate.Format("2006-01-02")
		}
		c.HTML(http.StatusOK, "update.html", gin.H{
			"task":  task,              // Task being edited
			"due":   dueValue,          // Due date as a form literal
			"flash": utils.GetFlash(c), // Pending flash message, if any
		})
	}
}

// UpdateTaskHandler applies the edit form to an owned task
func UpdateTaskHandler(svc *service.TaskService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Acting identity
		taskID, ok := taskIDParam(c)
		if !ok {
			redirectDashboard(c)
			return
		}
		content := c.PostForm("content")   // Required task text
		priority := c.PostForm("priority") // Optional, defaults to Medium
		dueDate := c.PostForm("due_date")  // Empty clears the due date
		if _, err := svc.Update(userID, taskID, content, priority, dueDate); err != nil {
			switch {
			case errors.Is(err, service.ErrEmptyContent):
				utils.SetFlash(c, "Task content is required!")
				c.Redirect(http.StatusFound, "/update/"+c.Param("id"))
			case errors.Is(err, service.ErrInvalidDate):
				utils.SetFlash(c, "Due date must be in YYYY-MM-DD format!")
				c.Redirect(http.StatusFound, "/update/"+c.Param("id"))
			default:
				// Not found, not owned, or a database failure
				redirectDashboard(c)
			}
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"task_id": taskID,
		}).Info("Task updated")
		invalidateTaskCache(rdb, userID)
		redirectDashboard(c)
	}
}

// ToggleTaskHandler flips the completion flag of an owned task
func ToggleTaskHandler(svc *service.TaskService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Acting identity
		taskID, ok := taskIDParam(c)
		if !ok {
			redirectDashboard(c)
			return
		}
		if task, err := svc.Toggle(userID, taskID); err == nil {
			logrus.WithFields(logrus.Fields{
				"user_id":      userID,
				"task_id":      taskID,
				"is_completed": task.IsCompleted,
			}).Info("Task toggled")
			invalidateTaskCache(rdb, userID)
		}
		// Failures redirect silently
		redirectDashboard(c)
	}
}

// DeleteTaskHandler removes an owned task. Deleting a foreign or
// missing task is a silent no-op.
func DeleteTaskHandler(svc *service.TaskService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Acting identity
		taskID, ok := taskIDParam(c)
		if !ok {
			redirectDashboard(c)
			return
		}
		if err := svc.Delete(userID, taskID); err == nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"task_id": taskID,
			}).Info("Task deleted")
			invalidateTaskCache(rdb, userID)
		}
		redirectDashboard(c)
	}
}

// ClearAllHandler deletes every task owned by the acting user
func ClearAllHandler(svc *service.TaskService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID") // Acting identity
		if err := svc.ClearAll(userID); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Failed to clear tasks")
		} else {
			logrus.WithField("user_id", userID).Info("All tasks cleared")
			invalidateTaskCache(rdb, userID)
		}
		redirectDashboard(c)
	}
}

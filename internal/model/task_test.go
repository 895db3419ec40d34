package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFillsDefaults(t *testing.T) {
	task := New(1, "  Buy milk  ", " 2 liters ", "")

	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 liters", task.Description)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.CreatedAt)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestFromRecordDefaultsMissingFields(t *testing.T) {
	task := FromRecord(map[string]any{"title": "x"})

	assert.Equal(t, 0, task.ID)
	assert.Equal(t, "x", task.Title)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.False(t, task.Completed)
	assert.NotEmpty(t, task.CreatedAt)
	assert.NotEmpty(t, task.UpdatedAt)
}

func TestFromRecordKeepsStoredValues(t *testing.T) {
	task := FromRecord(map[string]any{
		"id":          float64(7),
		"title":       " pay rent ",
		"description": "before the 5th",
		"category":    "Home",
		"completed":   true,
		"created_at":  "2024-01-02 10:00:00",
		"updated_at":  "2024-01-03 11:30:00",
	})

	assert.Equal(t, 7, task.ID)
	assert.Equal(t, "pay rent", task.Title)
	assert.Equal(t, "before the 5th", task.Description)
	assert.Equal(t, "Home", task.Category)
	assert.True(t, task.Completed)
	assert.Equal(t, "2024-01-02 10:00:00", task.CreatedAt)
	assert.Equal(t, "2024-01-03 11:30:00", task.UpdatedAt)
}

func TestFromRecordCoercesWrongShapes(t *testing.T) {
	task := FromRecord(map[string]any{
		"id":        "not a number",
		"title":     42,
		"category":  "   ",
		"completed": "yes",
	})

	assert.Equal(t, 0, task.ID)
	assert.Equal(t, "", task.Title)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.False(t, task.Completed)
}

func TestMarkCompletedIsIdempotent(t *testing.T) {
	task := New(1, "a", "b", "Work")
	task.UpdatedAt = "2020-01-01 00:00:00"

	task.MarkCompleted()
	assert.True(t, task.Completed)
	assert.NotEqual(t, "2020-01-01 00:00:00", task.UpdatedAt)

	task.MarkCompleted()
	assert.True(t, task.Completed)

	task.MarkUncompleted()
	assert.False(t, task.Completed)
	task.MarkUncompleted()
	assert.False(t, task.Completed)
}

package model

import (
	"strings"
	"time"
)

// TimeLayout is the storage format for task timestamps. Timestamps are
// carried as formatted local-time strings end to end so that saved files and
// exports compare byte-for-byte.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultCategory replaces a blank category at load/construction time.
const DefaultCategory = "Uncategorized"

// Now returns the current local time in TimeLayout.
func Now() string {
	return time.Now().Format(TimeLayout)
}

type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func New(id int, title, description, category string) Task {
	now := Now()
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	return Task{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Category:    category,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (t *Task) touch() {
	t.UpdatedAt = Now()
}

// MarkCompleted is idempotent.
func (t *Task) MarkCompleted() {
	t.Completed = true
	t.touch()
}

// MarkUncompleted is idempotent.
func (t *Task) MarkUncompleted() {
	t.Completed = false
	t.touch()
}

// FromRecord builds a Task from a decoded but untyped storage record. Every
// field is defaulted independently so records written by older or newer
// versions still load; it never fails.
func FromRecord(rec map[string]any) Task {
	t := Task{
		ID:          intField(rec, "id"),
		Title:       stringField(rec, "title"),
		Description: stringField(rec, "description"),
		Category:    stringField(rec, "category"),
		Completed:   boolField(rec, "completed"),
		CreatedAt:   stringField(rec, "created_at"),
		UpdatedAt:   stringField(rec, "updated_at"),
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if t.CreatedAt == "" {
		t.CreatedAt = Now()
	}
	if t.UpdatedAt == "" {
		t.UpdatedAt = Now()
	}
	return t
}

func intField(rec map[string]any, key string) int {
	switch v := rec[key].(type) {
	case float64:
		// encoding/json decodes every JSON number into float64.
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func stringField(rec map[string]any, key string) string {
	if v, ok := rec[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func boolField(rec map[string]any, key string) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return false
}

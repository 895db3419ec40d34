package task

import (
	"strings"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/model"
)

// Patch represents a partial update.
// nil pointer or blank value => "no change"
type Patch struct {
	Title       *string
	Description *string
	Category    *string
}

// Service implements the query and mutation API over the Store's
// collection. Every mutating call persists before returning, so the backing
// file mirrors memory after each operation.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Tasks returns the full collection in insertion order.
func (s *Service) Tasks() []model.Task {
	return s.store.Tasks()
}

// Save rewrites the backing file from the current collection. Mutating
// operations already persist; this is for the collaborator's save-on-exit.
func (s *Service) Save() error {
	return s.store.Save()
}

// Add validates, appends a new task with the next free id and persists.
// Defaulting applies only to stored data; new input must carry a title and
// description.
func (s *Service) Add(title, description, category string) (model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return model.Task{}, ErrTitleRequired
	}
	if strings.TrimSpace(description) == "" {
		return model.Task{}, ErrDescriptionRequired
	}

	t := model.New(s.store.NextID(), title, description, category)
	s.store.tasks = append(s.store.tasks, t)
	if err := s.store.Save(); err != nil {
		// keep memory consistent with the file when the save fails
		s.store.tasks = s.store.tasks[:len(s.store.tasks)-1]
		return model.Task{}, err
	}
	return t, nil
}

// ByIndex returns the task at a 1-based display position.
func (s *Service) ByIndex(pos int) (model.Task, error) {
	if pos < 1 || pos > len(s.store.tasks) {
		return model.Task{}, ErrNotFound
	}
	return s.store.tasks[pos-1], nil
}

// ByCategory returns the tasks with exactly this category, in collection
// order.
func (s *Service) ByCategory(category string) []model.Task {
	out := []model.Task{}
	for _, t := range s.store.tasks {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the tasks whose title, description or category contains the
// keyword, case-insensitively, in collection order.
func (s *Service) Search(keyword string) []model.Task {
	q := strings.ToLower(strings.TrimSpace(keyword))
	out := []model.Task{}
	for _, t := range s.store.tasks {
		if strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct categories currently in use, first-seen
// order.
func (s *Service) Categories() []string {
	cats := make([]string, 0, len(s.store.tasks))
	for _, t := range s.store.tasks {
		cats = append(cats, t.Category)
	}
	return DistinctCategories(cats)
}

// DistinctCategories returns the non-empty trimmed categories in first-seen
// order, without duplicates.
func DistinctCategories(categories []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// Edit applies the patch to the task at a 1-based display position and
// persists. Blank patch values keep the current field; updated_at is
// refreshed whenever an edit is performed, changed values or not.
func (s *Service) Edit(pos int, p Patch) (model.Task, error) {
	if pos < 1 || pos > len(s.store.tasks) {
		return model.Task{}, ErrNotFound
	}
	prev := s.store.tasks[pos-1]

	t := prev
	if v := patchValue(p.Title); v != "" {
		t.Title = v
	}
	if v := patchValue(p.Description); v != "" {
		t.Description = v
	}
	if v := patchValue(p.Category); v != "" {
		t.Category = v
	}
	t.UpdatedAt = model.Now()

	s.store.tasks[pos-1] = t
	if err := s.store.Save(); err != nil {
		s.store.tasks[pos-1] = prev
		return model.Task{}, err
	}
	return t, nil
}

func patchValue(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// Toggle flips the completion flag of the task at a 1-based display
// position and persists.
func (s *Service) Toggle(pos int) (model.Task, error) {
	if pos < 1 || pos > len(s.store.tasks) {
		return model.Task{}, ErrNotFound
	}
	prev := s.store.tasks[pos-1]

	t := prev
	if t.Completed {
		t.MarkUncompleted()
	} else {
		t.MarkCompleted()
	}

	s.store.tasks[pos-1] = t
	if err := s.store.Save(); err != nil {
		s.store.tasks[pos-1] = prev
		return model.Task{}, err
	}
	return t, nil
}

// Delete removes the first task structurally equal to t and persists.
func (s *Service) Delete(t model.Task) error {
	idx := -1
	for i, have := range s.store.tasks {
		if have == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	prev := s.store.tasks
	next := make([]model.Task, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)

	s.store.tasks = next
	if err := s.store.Save(); err != nil {
		s.store.tasks = prev
		return err
	}
	return nil
}

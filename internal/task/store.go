package task

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/model"
)

// Store owns the canonical in-memory task collection and its JSON backing
// file. Single process, single writer; no file locking.
type Store struct {
	path      string
	logger    *log.Logger
	tasks     []model.Task
	recovered bool
}

// Open ensures the backing file exists and loads the collection from it.
// A file that cannot be parsed as a task list is reset to an empty
// collection; only real I/O failures are returned.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		path:   path,
		logger: logger,
		tasks:  []model.Task{},
	}
	if err := s.ensureExists(); err != nil {
		return nil, fmt.Errorf("create task file: %w", err)
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("load task file: %w", err)
	}
	return s, nil
}

func (s *Store) ensureExists() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(s.path, []byte("[]"), 0o644)
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var raw []any
	if err := json.Unmarshal(b, &raw); err != nil {
		s.logger.Printf("tasks: backing file %s is not a task list, starting empty: %v", s.path, err)
		s.tasks = []model.Task{}
		s.recovered = true
		return nil
	}

	tasks := make([]model.Task, 0, len(raw))
	skipped := 0
	for _, item := range raw {
		rec, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		tasks = append(tasks, model.FromRecord(rec))
	}
	if skipped > 0 {
		s.logger.Printf("tasks: skipped %d non-object records in %s", skipped, s.path)
	}
	s.tasks = tasks
	return nil
}

// Save rewrites the whole backing file from the in-memory collection.
// I/O failures propagate to the caller.
func (s *Store) Save() error {
	tasks := s.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("save task file: %w", err)
	}
	return nil
}

// NextID returns 1 for an empty collection, max(id)+1 otherwise. Deleting
// the highest-numbered task and adding afterwards reuses its number.
func (s *Store) NextID() int {
	max := 0
	for _, t := range s.tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Tasks returns a copy of the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len reports the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Recovered reports whether the last load reset a corrupt backing file.
func (s *Store) Recovered() bool {
	return s.recovered
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

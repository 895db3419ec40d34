package task

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/model"
)

var csvHeader = []string{"id", "title", "description", "category", "completed", "created_at", "updated_at"}

// WriteCSV writes the collection to w in collection order, header first.
// Timestamps are emitted exactly as stored, so exporting twice yields
// identical bytes.
func WriteCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Description,
			t.Category,
			yesNo(t.Completed),
			t.CreatedAt,
			t.UpdatedAt,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the current collection to path, overwriting any existing
// file. I/O failures propagate.
func (s *Service) ExportCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, s.store.tasks); err != nil {
		f.Close()
		return fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

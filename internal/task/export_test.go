package task

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/model"
)

func exportFixture() []model.Task {
	return []model.Task{
		{
			ID: 1, Title: "a", Description: "plain", Category: "Work",
			Completed: true, CreatedAt: "2024-01-01 09:00:00", UpdatedAt: "2024-01-02 09:00:00",
		},
		{
			ID: 2, Title: "b, with comma", Description: `say "hi"`, Category: "Home",
			Completed: false, CreatedAt: "2024-01-03 09:00:00", UpdatedAt: "2024-01-03 09:00:00",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	want := "id,title,description,category,completed,created_at,updated_at\n" +
		"1,a,plain,Work,Yes,2024-01-01 09:00:00,2024-01-02 09:00:00\n" +
		"2,\"b, with comma\",\"say \"\"hi\"\"\",Home,No,2024-01-03 09:00:00,2024-01-03 09:00:00\n"
	assert.Equal(t, want, buf.String())
}

func TestExportCSVIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	svc.store.tasks = exportFixture()

	dest := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, svc.ExportCSV(dest))
	first, err := os.ReadFile(dest)
	require.NoError(t, err)

	require.NoError(t, svc.ExportCSV(dest))
	second, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportCSVOverwritesDestination(t *testing.T) {
	svc := newTestService(t)
	svc.store.tasks = exportFixture()[:1]

	dest := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(dest, []byte("stale content\n"), 0o644))

	require.NoError(t, svc.ExportCSV(dest))
	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale content")
	assert.Contains(t, string(b), "1,a,plain,Work,Yes")
}

func TestExportCSVPropagatesIOFailure(t *testing.T) {
	svc := newTestService(t)
	err := svc.ExportCSV(filepath.Join(t.TempDir(), "missing", "out.csv"))
	assert.Error(t, err)
}

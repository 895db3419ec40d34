package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agarwalharshit2050-bit/To-Do-List/internal/task"
)

// menu is the interactive presentation layer. It only prompts and renders;
// every task operation goes through the service.
type menu struct {
	app *app
	p   *prompter
}

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	m := &menu{
		app: a,
		p:   newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
	return m.loop()
}

func (m *menu) loop() error {
	for {
		m.p.header("Personal To-Do List")
		fmt.Fprintln(m.p.out, "1. Add task")
		fmt.Fprintln(m.p.out, "2. View all tasks")
		fmt.Fprintln(m.p.out, "3. View by category")
		fmt.Fprintln(m.p.out, "4. Search tasks")
		fmt.Fprintln(m.p.out, "5. Edit a task")
		fmt.Fprintln(m.p.out, "6. Mark completed/uncompleted")
		fmt.Fprintln(m.p.out, "7. Delete a task")
		fmt.Fprintln(m.p.out, "8. Show stats")
		fmt.Fprintln(m.p.out, "9. Export to CSV")
		fmt.Fprintln(m.p.out, "0. Exit")

		choice, err := m.p.readLine("Choose an option: ")
		if err != nil {
			return m.exit()
		}

		switch choice {
		case "1":
			err = m.addTask()
		case "2":
			m.p.header("All tasks")
			writeTaskTable(m.p.out, m.app.svc.Tasks())
		case "3":
			err = m.viewByCategory()
		case "4":
			err = m.searchTasks()
		case "5":
			err = m.editTask()
		case "6":
			err = m.toggleTask()
		case "7":
			err = m.deleteTask()
		case "8":
			m.showStats()
		case "9":
			err = m.exportTasks()
		case "0":
			return m.exit()
		default:
			fmt.Fprintln(m.p.out, "Invalid choice. Please try again.")
		}
		if errors.Is(err, errInputClosed) {
			return m.exit()
		}
		if err != nil {
			fmt.Fprintln(m.p.out, "Error:", err)
		}
		if err := m.p.pause(); err != nil {
			return m.exit()
		}
	}
}

// exit performs the collaborator's save-on-exit.
func (m *menu) exit() error {
	fmt.Fprintln(m.p.out, "\nSaving and exiting... Bye!")
	return m.app.svc.Save()
}

func (m *menu) addTask() error {
	m.p.header("Add a new task")
	title, err := m.p.nonEmpty("Title: ")
	if err != nil {
		return err
	}
	description, err := m.p.nonEmpty("Description: ")
	if err != nil {
		return err
	}
	category, err := m.chooseCategory()
	if err != nil {
		return err
	}

	if _, err := m.app.svc.Add(title, description, category); err != nil {
		return err
	}
	fmt.Fprintln(m.p.out, "\nTask added successfully.")
	return nil
}

// chooseCategory offers the categories already in use merged with the
// configured defaults, plus a "create new" option.
func (m *menu) chooseCategory() (string, error) {
	m.p.header("Choose a category")
	cats := task.DistinctCategories(append(m.categoriesInUse(), m.app.cfg.DefaultCategories...))
	for i, c := range cats {
		fmt.Fprintf(m.p.out, "%d. %s\n", i+1, c)
	}
	fmt.Fprintf(m.p.out, "%d. Create new category\n", len(cats)+1)

	choice, err := m.p.intInRange(fmt.Sprintf("Select 1-%d: ", len(cats)+1), 1, len(cats)+1)
	if err != nil {
		return "", err
	}
	if choice == len(cats)+1 {
		return m.p.nonEmpty("Enter new category name: ")
	}
	return cats[choice-1], nil
}

func (m *menu) categoriesInUse() []string {
	tasks := m.app.svc.Tasks()
	cats := make([]string, 0, len(tasks))
	for _, t := range tasks {
		cats = append(cats, t.Category)
	}
	return cats
}

func (m *menu) viewByCategory() error {
	m.p.header("View tasks by category")
	cats := m.app.svc.Categories()
	if len(cats) == 0 {
		cats = []string{"Uncategorized"}
	}
	for i, c := range cats {
		fmt.Fprintf(m.p.out, "%d. %s\n", i+1, c)
	}
	choice, err := m.p.intInRange(fmt.Sprintf("Select 1-%d: ", len(cats)), 1, len(cats))
	if err != nil {
		return err
	}
	chosen := cats[choice-1]

	m.p.header("Category: " + chosen)
	writeTaskTable(m.p.out, m.app.svc.ByCategory(chosen))
	return nil
}

func (m *menu) searchTasks() error {
	m.p.header("Search tasks")
	query, err := m.p.nonEmpty("Enter keyword (title/description/category): ")
	if err != nil {
		return err
	}
	m.p.header("Results for: " + query)
	writeTaskTable(m.p.out, m.app.svc.Search(query))
	return nil
}

// selectTask shows the table and asks for a display position. Returns 0 when
// there is nothing to select.
func (m *menu) selectTask(prompt string) (int, error) {
	tasks := m.app.svc.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(m.p.out, "No tasks available.")
		return 0, nil
	}
	writeTaskTable(m.p.out, tasks)
	return m.p.intInRange(fmt.Sprintf("%s (1-%d): ", prompt, len(tasks)), 1, len(tasks))
}

func (m *menu) editTask() error {
	m.p.header("Edit a task")
	pos, err := m.selectTask("Choose a task to edit")
	if err != nil || pos == 0 {
		return err
	}
	current, err := m.app.svc.ByIndex(pos)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.p.out, "\nLeave a field empty to keep the current value.")
	newTitle, err := m.p.optional(fmt.Sprintf("New title [%s]: ", current.Title), "")
	if err != nil {
		return err
	}
	newDesc, err := m.p.optional(fmt.Sprintf("New description [%s]: ", current.Description), "")
	if err != nil {
		return err
	}
	newCat, err := m.chooseCategoryForEdit(current.Category)
	if err != nil {
		return err
	}

	p := task.Patch{}
	if newTitle != "" {
		p.Title = &newTitle
	}
	if newDesc != "" {
		p.Description = &newDesc
	}
	if newCat != "" {
		p.Category = &newCat
	}

	if _, err := m.app.svc.Edit(pos, p); err != nil {
		return err
	}
	fmt.Fprintln(m.p.out, "\nTask updated successfully.")
	return nil
}

// chooseCategoryForEdit adds "keep current" on top of the quick-pick.
// Returns "" when the current category should be kept.
func (m *menu) chooseCategoryForEdit(current string) (string, error) {
	fmt.Fprintln(m.p.out, "\nCategory options:")
	cats := task.DistinctCategories(append(m.categoriesInUse(), m.app.cfg.DefaultCategories...))
	for i, c := range cats {
		fmt.Fprintf(m.p.out, "%d. %s\n", i+1, c)
	}
	fmt.Fprintf(m.p.out, "%d. Keep current (%s)\n", len(cats)+1, current)
	fmt.Fprintf(m.p.out, "%d. Create new category\n", len(cats)+2)

	choice, err := m.p.intInRange(fmt.Sprintf("Select 1-%d: ", len(cats)+2), 1, len(cats)+2)
	if err != nil {
		return "", err
	}
	switch choice {
	case len(cats) + 1:
		return "", nil
	case len(cats) + 2:
		return m.p.nonEmpty("Enter new category name: ")
	default:
		return cats[choice-1], nil
	}
}

func (m *menu) toggleTask() error {
	m.p.header("Mark task completed/uncompleted")
	pos, err := m.selectTask("Choose a task to toggle status")
	if err != nil || pos == 0 {
		return err
	}
	t, err := m.app.svc.Toggle(pos)
	if err != nil {
		return err
	}
	if t.Completed {
		fmt.Fprintf(m.p.out, "\nMarked as completed: %s\n", t.Title)
	} else {
		fmt.Fprintf(m.p.out, "\nMarked as NOT completed: %s\n", t.Title)
	}
	return nil
}

func (m *menu) deleteTask() error {
	m.p.header("Delete a task")
	pos, err := m.selectTask("Choose a task to delete")
	if err != nil || pos == 0 {
		return err
	}
	t, err := m.app.svc.ByIndex(pos)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.p.out, "\nYou are about to delete: '%s' (Category: %s)\n", t.Title, t.Category)
	ok, err := m.p.confirm("Are you sure")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.p.out, "Deletion cancelled.")
		return nil
	}
	if err := m.app.svc.Delete(t); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			fmt.Fprintln(m.p.out, "Task is already gone.")
			return nil
		}
		return err
	}
	fmt.Fprintln(m.p.out, "Task deleted.")
	return nil
}

func (m *menu) showStats() {
	m.p.header("Task stats")
	st := m.app.svc.Stats()
	fmt.Fprintf(m.p.out, "Total tasks: %d\n", st.Total)
	fmt.Fprintf(m.p.out, "Completed: %d\n", st.Completed)
	fmt.Fprintf(m.p.out, "Pending: %d\n", st.Pending)
	fmt.Fprintln(m.p.out, "\nBy category:")
	if len(st.Categories) == 0 {
		fmt.Fprintln(m.p.out, "- None")
		return
	}
	for _, c := range st.Categories {
		cc := st.PerCategory[c]
		fmt.Fprintf(m.p.out, "- %s: %d/%d done\n", c, cc.Completed, cc.Total)
	}
}

func (m *menu) exportTasks() error {
	m.p.header("Export tasks to CSV")
	dest, err := m.p.optional(fmt.Sprintf("Filename [%s]: ", m.app.cfg.ExportFile), m.app.cfg.ExportFile)
	if err != nil {
		return err
	}
	if err := m.app.svc.ExportCSV(dest); err != nil {
		return err
	}
	fmt.Fprintf(m.p.out, "\nExported to '%s' successfully.\n", dest)
	return nil
}

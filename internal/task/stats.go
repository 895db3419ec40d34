package task

// CategoryCount holds the completed/total split for one category.
type CategoryCount struct {
	Completed int
	Total     int
}

// Stats aggregates the collection. Categories keeps first-seen order so
// callers can render PerCategory deterministically.
type Stats struct {
	Total       int
	Completed   int
	Pending     int
	Categories  []string
	PerCategory map[string]CategoryCount
}

// Stats computes totals and a per-category breakdown over the current
// collection.
func (s *Service) Stats() Stats {
	st := Stats{
		Categories:  s.Categories(),
		PerCategory: map[string]CategoryCount{},
	}
	for _, t := range s.store.tasks {
		st.Total++
		if t.Completed {
			st.Completed++
		}

		cc := st.PerCategory[t.Category]
		cc.Total++
		if t.Completed {
			cc.Completed++
		}
		st.PerCategory[t.Category] = cc
	}
	st.Pending = st.Total - st.Completed
	return st
}

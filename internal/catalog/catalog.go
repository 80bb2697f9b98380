// Package catalog holds the immutable universe of known questions, the
// configured lists, and the configured list intersections. A Catalog is
// built once at startup and is read-only afterwards, so no locking is
// needed anywhere in this package.
package catalog

import (
	"fmt"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// Catalog is the fixed set of questions, lists, and intersections for one
// server run.
type Catalog struct {
	questions  map[int]domain.Question
	lists      map[string]domain.List
	listOrder  []string
	inters     map[string]domain.Intersection
	interOrder []string
}

// New validates and assembles a Catalog.
//
// Invariants enforced here:
//   - question numbers are positive and unique, problems are non-empty
//   - every list references only catalog questions, at most once each
//   - intersections reference two distinct existing lists, ids are unique
func New(questions []domain.Question, lists []domain.List, inters []domain.Intersection) (*Catalog, error) {
	c := &Catalog{
		questions: make(map[int]domain.Question, len(questions)),
		lists:     make(map[string]domain.List, len(lists)),
		inters:    make(map[string]domain.Intersection, len(inters)),
	}

	for _, q := range questions {
		if q.Number <= 0 {
			return nil, fmt.Errorf("catalog: question number %d must be positive", q.Number)
		}
		if q.Problem == "" {
			return nil, fmt.Errorf("catalog: question %d has an empty problem title", q.Number)
		}
		if _, dup := c.questions[q.Number]; dup {
			return nil, fmt.Errorf("catalog: duplicate question number %d", q.Number)
		}
		c.questions[q.Number] = q
	}

	for _, l := range lists {
		if l.Name == "" {
			return nil, fmt.Errorf("catalog: list with empty name")
		}
		if _, dup := c.lists[l.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate list %q", l.Name)
		}
		seen := make(map[int]bool, len(l.Numbers))
		for _, n := range l.Numbers {
			if _, ok := c.questions[n]; !ok {
				return nil, fmt.Errorf("catalog: list %q references unknown question %d", l.Name, n)
			}
			if seen[n] {
				return nil, fmt.Errorf("catalog: list %q references question %d twice", l.Name, n)
			}
			seen[n] = true
		}
		c.lists[l.Name] = l
		c.listOrder = append(c.listOrder, l.Name)
	}

	for _, in := range inters {
		if in.ID == "" {
			return nil, fmt.Errorf("catalog: intersection with empty id")
		}
		if _, dup := c.inters[in.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate intersection %q", in.ID)
		}
		if in.List1 == in.List2 {
			return nil, fmt.Errorf("catalog: intersection %q uses the same list twice", in.ID)
		}
		if _, ok := c.lists[in.List1]; !ok {
			return nil, fmt.Errorf("catalog: intersection %q references unknown list %q", in.ID, in.List1)
		}
		if _, ok := c.lists[in.List2]; !ok {
			return nil, fmt.Errorf("catalog: intersection %q references unknown list %q", in.ID, in.List2)
		}
		c.inters[in.ID] = in
		c.interOrder = append(c.interOrder, in.ID)
	}

	return c, nil
}

// Question returns a catalog question by number.
func (c *Catalog) Question(number int) (domain.Question, error) {
	q, ok := c.questions[number]
	if !ok {
		return domain.Question{}, fmt.Errorf("question %d: %w", number, domain.ErrNotFound)
	}
	return q, nil
}

// HasQuestion reports whether the number belongs to the catalog.
func (c *Catalog) HasQuestion(number int) bool {
	_, ok := c.questions[number]
	return ok
}

// List returns a list by name.
func (c *Catalog) List(name string) (domain.List, error) {
	l, ok := c.lists[name]
	if !ok {
		return domain.List{}, fmt.Errorf("list %q: %w", name, domain.ErrNotFound)
	}
	return l, nil
}

// Lists returns summaries of all lists in configuration order.
func (c *Catalog) Lists() []domain.ListInfo {
	infos := make([]domain.ListInfo, 0, len(c.listOrder))
	for _, name := range c.listOrder {
		l := c.lists[name]
		infos = append(infos, domain.ListInfo{
			Name:           l.Name,
			DisplayName:    l.DisplayName,
			TotalQuestions: len(l.Numbers),
		})
	}
	return infos
}

// Intersections returns all configured intersections in configuration order.
func (c *Catalog) Intersections() []domain.Intersection {
	out := make([]domain.Intersection, 0, len(c.interOrder))
	for _, id := range c.interOrder {
		out = append(out, c.inters[id])
	}
	return out
}

// Intersection returns a configured intersection by id.
func (c *Catalog) Intersection(id string) (domain.Intersection, error) {
	in, ok := c.inters[id]
	if !ok {
		return domain.Intersection{}, fmt.Errorf("intersection %q: %w", id, domain.ErrNotFound)
	}
	return in, nil
}

// IntersectionNumbers computes the question numbers common to the
// intersection's two lists. Ordering policy: list1's original order,
// filtered to membership in list2. Deterministic across calls since the
// catalog is immutable.
func (c *Catalog) IntersectionNumbers(id string) ([]int, error) {
	in, err := c.Intersection(id)
	if err != nil {
		return nil, err
	}

	// Both lists exist: New validated the references.
	l1 := c.lists[in.List1]
	l2 := c.lists[in.List2]

	members := make(map[int]bool, len(l2.Numbers))
	for _, n := range l2.Numbers {
		members[n] = true
	}

	common := make([]int, 0, min(len(l1.Numbers), len(l2.Numbers)))
	for _, n := range l1.Numbers {
		if members[n] {
			common = append(common, n)
		}
	}
	return common, nil
}

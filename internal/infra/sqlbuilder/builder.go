// Package sqlbuilder assembles dynamic WHERE and SET clauses from fragments
// that use "?" placeholders, renumbering them to PostgreSQL "$n" parameters.
// Values always travel as arguments; only fragments written in code become SQL.
package sqlbuilder

import (
	"strconv"
	"strings"
)

// Args is a shared, ordered parameter list. Clauses built on the same Args
// number their placeholders consecutively.
type Args struct {
	values []any
}

func NewArgs(initial ...any) *Args {
	return &Args{values: append([]any(nil), initial...)}
}

func (a *Args) Values() []any { return a.values }
func (a *Args) Len() int      { return len(a.values) }

// Bind appends v and returns its placeholder.
func (a *Args) Bind(v any) string {
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

// render replaces each "?" in fragment with the next bound placeholder.
func (a *Args) render(fragment string, vals []any) string {
	var b strings.Builder
	i := 0
	for _, r := range fragment {
		if r == '?' && i < len(vals) {
			b.WriteString(a.Bind(vals[i]))
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Where is a conjunction of predicates.
type Where struct {
	args  *Args
	preds []string
}

func NewWhere(args *Args) *Where {
	return &Where{args: args}
}

// And adds a predicate. The number of "?" in fragment must match vals.
func (w *Where) And(fragment string, vals ...any) *Where {
	w.preds = append(w.preds, w.args.render(fragment, vals))
	return w
}

// AndIf adds the predicate only when cond holds.
func (w *Where) AndIf(cond bool, fragment string, vals ...any) *Where {
	if cond {
		w.And(fragment, vals...)
	}
	return w
}

func (w *Where) Empty() bool { return len(w.preds) == 0 }

// SQL renders "WHERE a AND b", or "" when there are no predicates.
func (w *Where) SQL() string {
	if w.Empty() {
		return ""
	}
	return "WHERE " + strings.Join(w.preds, " AND ")
}

// Conditions renders the predicates without the WHERE keyword.
func (w *Where) Conditions() string {
	return strings.Join(w.preds, " AND ")
}

// Set collects column assignments for a partial UPDATE.
type Set struct {
	args    *Args
	assigns []string
}

func NewSet(args *Args) *Set {
	return &Set{args: args}
}

func (s *Set) Add(column string, v any) *Set {
	s.assigns = append(s.assigns, column+" = "+s.args.Bind(v))
	return s
}

// Raw adds an assignment that takes no parameter, e.g. "updated_at = NOW()".
func (s *Set) Raw(assignment string) *Set {
	s.assigns = append(s.assigns, assignment)
	return s
}

func (s *Set) Empty() bool { return len(s.assigns) == 0 }

func (s *Set) SQL() string {
	return "SET " + strings.Join(s.assigns, ", ")
}

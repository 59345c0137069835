// Package querybuilder composes parameterized SELECT statements from a base
// query and a list of optional predicates. Placeholders are numbered in the
// order arguments are added, continuing after any arguments bound by the base.
package querybuilder

import (
	"fmt"
	"strings"
)

// Filter is a single "column op $n" predicate that is only emitted when
// IncludeIf is true.
type Filter struct {
	Column    string
	Op        string // defaults to "="
	Value     interface{}
	IncludeIf bool
}

// Eq builds an equality filter.
func Eq(column string, value interface{}, includeIf bool) Filter {
	return Filter{Column: column, Op: "=", Value: value, IncludeIf: includeIf}
}

type Builder struct {
	base   string
	conds  []string
	args   []interface{}
	suffix []string
}

// New starts a builder. args are the values already referenced by base as
// $1..$len(args).
func New(base string, args ...interface{}) *Builder {
	return &Builder{
		base: strings.TrimSpace(base),
		args: append([]interface{}{}, args...),
	}
}

// Arg binds a value and returns its placeholder.
func (b *Builder) Arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// Where appends every filter whose IncludeIf is set.
func (b *Builder) Where(filters ...Filter) *Builder {
	for _, f := range filters {
		if !f.IncludeIf {
			continue
		}
		op := f.Op
		if op == "" {
			op = "="
		}
		b.conds = append(b.conds, fmt.Sprintf("%s %s %s", f.Column, op, b.Arg(f.Value)))
	}
	return b
}

// WhereRaw appends an expression. Each "?" in expr is replaced by the
// placeholder of the matching value in args.
func (b *Builder) WhereRaw(expr string, args ...interface{}) *Builder {
	var sb strings.Builder
	i := 0
	for _, r := range expr {
		if r == '?' && i < len(args) {
			sb.WriteString(b.Arg(args[i]))
			i++
			continue
		}
		sb.WriteRune(r)
	}
	b.conds = append(b.conds, sb.String())
	return b
}

// Suffix appends a trailing clause such as GROUP BY or ORDER BY.
func (b *Builder) Suffix(clause string) *Builder {
	b.suffix = append(b.suffix, strings.TrimSpace(clause))
	return b
}

// Build returns the final statement and its arguments.
func (b *Builder) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(b.base)
	if len(b.conds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(b.conds, "\n  AND "))
	}
	for _, s := range b.suffix {
		sb.WriteString("\n")
		sb.WriteString(s)
	}
	return sb.String(), b.args
}

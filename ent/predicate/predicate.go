// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssistEvent is the predicate function for assistevent builders.
type AssistEvent func(*sql.Selector)

// PlanSnapshot is the predicate function for plansnapshot builders.
type PlanSnapshot func(*sql.Selector)

// ResultEvent is the predicate function for resultevent builders.
type ResultEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

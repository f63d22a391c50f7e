// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Board is the predicate function for board builders.
type Board func(*sql.Selector)

// Diagnosis is the predicate function for diagnosis builders.
type Diagnosis func(*sql.Selector)

// Member is the predicate function for member builders.
type Member func(*sql.Selector)

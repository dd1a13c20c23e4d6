// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Slot is the predicate function for slot builders.
type Slot func(*sql.Selector)

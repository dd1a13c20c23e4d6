// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/prepnova/prepnova/ent/schema"
	"github.com/prepnova/prepnova/ent/slot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	slotFields := schema.Slot{}.Fields()
	_ = slotFields
	// slotDescUpdatedAt is the schema descriptor for updated_at field.
	slotDescUpdatedAt := slotFields[2].Descriptor()
	// slot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	slot.DefaultUpdatedAt = slotDescUpdatedAt.Default.(func() time.Time)
	// slot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	slot.UpdateDefaultUpdatedAt = slotDescUpdatedAt.UpdateDefault.(func() time.Time)
}

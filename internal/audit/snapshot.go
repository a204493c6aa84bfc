// Package audit computes field-level change sets between entity snapshots.
package audit

import (
	"encoding/json"
	"reflect"
)

// Columns every entity carries that must never show up in a diff.
var bookkeepingFields = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"updated_at": {},
	"deleted_at": {},
}

// Snapshot flattens an entity into its canonical JSON form, one map key
// per serialized field. Returns nil if the value cannot round-trip.
func Snapshot(entity any) map[string]any {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil
	}
	var snap map[string]any
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	return snap
}

// DiffSnapshots compares two snapshots and returns the changed subset of
// each. Bookkeeping fields are skipped even when they differ. Values are
// compared structurally over their decoded form, so key order inside
// nested objects does not produce false positives, while a number and the
// string spelling of that number still count as different.
//
// A nil oldSnap degrades to "every field is new": all of newSnap lands in
// newValues and oldValues stays empty.
func DiffSnapshots(oldSnap, newSnap map[string]any) (oldValues, newValues map[string]any) {
	oldValues = map[string]any{}
	newValues = map[string]any{}

	for key, oldVal := range oldSnap {
		if _, skip := bookkeepingFields[key]; skip {
			continue
		}
		newVal, inNew := newSnap[key]
		if !inNew {
			// field removed
			oldValues[key] = oldVal
			continue
		}
		if !reflect.DeepEqual(oldVal, newVal) {
			oldValues[key] = oldVal
			newValues[key] = newVal
		}
	}

	for key, newVal := range newSnap {
		if _, skip := bookkeepingFields[key]; skip {
			continue
		}
		if _, inOld := oldSnap[key]; !inOld {
			// field added
			newValues[key] = newVal
		}
	}

	return oldValues, newValues
}

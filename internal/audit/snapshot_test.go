package audit

import (
	"testing"
	"time"
)

func TestDiffSnapshotsIdenticalSnapshots(t *testing.T) {
	snap := map[string]any{"name": "foo", "seats": 5, "notes": ""}

	oldValues, newValues := DiffSnapshots(snap, snap)

	if len(oldValues) != 0 {
		t.Errorf("expected empty oldValues, got %v", oldValues)
	}
	if len(newValues) != 0 {
		t.Errorf("expected empty newValues, got %v", newValues)
	}
}

func TestDiffSnapshotsSingleFieldChange(t *testing.T) {
	oldSnap := map[string]any{"a": 1, "b": 2}
	newSnap := map[string]any{"a": 1, "b": 3}

	oldValues, newValues := DiffSnapshots(oldSnap, newSnap)

	if len(oldValues) != 1 || oldValues["b"] != 2 {
		t.Errorf("expected oldValues {b: 2}, got %v", oldValues)
	}
	if len(newValues) != 1 || newValues["b"] != 3 {
		t.Errorf("expected newValues {b: 3}, got %v", newValues)
	}
	if _, ok := oldValues["a"]; ok {
		t.Error("unchanged field a must not appear in oldValues")
	}
	if _, ok := newValues["a"]; ok {
		t.Error("unchanged field a must not appear in newValues")
	}
}

func TestDiffSnapshotsSkipsBookkeepingFields(t *testing.T) {
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	t2 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)

	oldSnap := map[string]any{"id": "x", "created_at": t1, "updated_at": t1, "name": "foo"}
	newSnap := map[string]any{"id": "x", "created_at": t2, "updated_at": t2, "name": "bar"}

	oldValues, newValues := DiffSnapshots(oldSnap, newSnap)

	if oldValues["name"] != "foo" || newValues["name"] != "bar" {
		t.Errorf("expected name change recorded, got old=%v new=%v", oldValues, newValues)
	}
	for _, key := range []string{"id", "created_at", "updated_at"} {
		if _, ok := oldValues[key]; ok {
			t.Errorf("bookkeeping field %q leaked into oldValues", key)
		}
		if _, ok := newValues[key]; ok {
			t.Errorf("bookkeeping field %q leaked into newValues", key)
		}
	}
}

func TestDiffSnapshotsAddedField(t *testing.T) {
	oldSnap := map[string]any{"a": 1}
	newSnap := map[string]any{"a": 1, "b": 2}

	oldValues, newValues := DiffSnapshots(oldSnap, newSnap)

	if newValues["b"] != 2 {
		t.Errorf("added field b must be reported as changed, got %v", newValues)
	}
	if _, ok := oldValues["b"]; ok {
		t.Errorf("field b had no previous value, got oldValues %v", oldValues)
	}
}

func TestDiffSnapshotsRemovedField(t *testing.T) {
	oldSnap := map[string]any{"a": 1, "b": 2}
	newSnap := map[string]any{"a": 1}

	oldValues, newValues := DiffSnapshots(oldSnap, newSnap)

	if oldValues["b"] != 2 {
		t.Errorf("removed field b must keep its old value, got %v", oldValues)
	}
	if _, ok := newValues["b"]; ok {
		t.Errorf("removed field b must not appear in newValues, got %v", newValues)
	}
}

func TestDiffSnapshotsNilOldTreatsEverythingAsNew(t *testing.T) {
	newSnap := map[string]any{"a": 1, "b": 2}

	oldValues, newValues := DiffSnapshots(nil, newSnap)

	if len(oldValues) != 0 {
		t.Errorf("expected empty oldValues, got %v", oldValues)
	}
	if len(newValues) != 2 || newValues["a"] != 1 || newValues["b"] != 2 {
		t.Errorf("expected every field of newSnap, got %v", newValues)
	}
}

func TestDiffSnapshotsStructuralComparison(t *testing.T) {
	// equal nested values built separately must not count as changed
	oldSnap := map[string]any{"meta": map[string]any{"x": 1.0, "y": "z"}}
	newSnap := map[string]any{"meta": map[string]any{"y": "z", "x": 1.0}}

	oldValues, newValues := DiffSnapshots(oldSnap, newSnap)
	if len(oldValues) != 0 || len(newValues) != 0 {
		t.Errorf("structurally equal nested values reported as changed: old=%v new=%v", oldValues, newValues)
	}

	// a number and its string spelling are different values
	oldValues, newValues = DiffSnapshots(
		map[string]any{"v": 5.0},
		map[string]any{"v": "5"},
	)
	if len(oldValues) != 1 || len(newValues) != 1 {
		t.Errorf("type change must be reported: old=%v new=%v", oldValues, newValues)
	}
}

func TestSnapshotUsesSerializedFieldNames(t *testing.T) {
	entity := struct {
		Name  string `json:"name"`
		Seats int    `json:"seats"`
		Note  string `json:"note,omitempty"`
	}{Name: "Office Suite", Seats: 10}

	snap := Snapshot(entity)
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap["name"] != "Office Suite" {
		t.Errorf("expected serialized field name, got %v", snap)
	}
	if snap["seats"] != float64(10) {
		t.Errorf("expected canonical JSON number, got %T %v", snap["seats"], snap["seats"])
	}
	if _, ok := snap["note"]; ok {
		t.Error("omitempty field must not appear in the snapshot")
	}
}

package level

import (
	"errors"
	"fmt"
)

// NoObject is the index used when no object is referenced.
const NoObject = -1

// DefaultCapacity is the slot count used when a level does not set one.
const DefaultCapacity = 32

var (
	ErrArenaFull = errors.New("level: arena full")
	ErrBadIndex  = errors.New("level: index out of range")
)

type slot struct {
	occupied bool
	obj      Object
}

// Arena is a fixed-capacity table of level objects. Indices are stable for
// the lifetime of the arena and may be held as weak references; a cleared
// slot keeps its index but no longer takes part in iteration.
type Arena struct {
	slots []slot
	count int
}

func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Arena{slots: make([]slot, capacity)}
}

func (a *Arena) Cap() int { return len(a.slots) }

// Len returns the number of occupied slots.
func (a *Arena) Len() int { return a.count }

// Add places o in the first free slot and returns its index.
func (a *Arena) Add(o Object) (int, error) {
	for i := range a.slots {
		if a.slots[i].occupied {
			continue
		}
		a.slots[i] = slot{occupied: true, obj: o}
		a.count++
		return i, nil
	}
	return NoObject, fmt.Errorf("%w: capacity %d", ErrArenaFull, len(a.slots))
}

// Get returns the object in slot i. The pointer stays valid until the slot
// is cleared.
func (a *Arena) Get(i int) (*Object, bool) {
	if !a.Occupied(i) {
		return nil, false
	}
	return &a.slots[i].obj, true
}

func (a *Arena) Occupied(i int) bool {
	return i >= 0 && i < len(a.slots) && a.slots[i].occupied
}

// Clear zeroes slot i. Clearing a free slot is a no-op.
func (a *Arena) Clear(i int) error {
	if i < 0 || i >= len(a.slots) {
		return fmt.Errorf("%w: %d", ErrBadIndex, i)
	}
	if a.slots[i].occupied {
		a.count--
	}
	a.slots[i] = slot{}
	return nil
}

// Tagged lists the occupied indices whose tag equals tag, in index order.
func (a *Arena) Tagged(tag string) []int {
	var out []int
	for i := range a.slots {
		if a.slots[i].occupied && a.slots[i].obj.Tag == tag {
			out = append(out, i)
		}
	}
	return out
}

// ClearTag clears every object carrying tag and returns the cleared indices.
func (a *Arena) ClearTag(tag string) []int {
	idx := a.Tagged(tag)
	for _, i := range idx {
		_ = a.Clear(i)
	}
	return idx
}

// Each visits occupied slots in index order until fn returns false.
func (a *Arena) Each(fn func(i int, o *Object) bool) {
	for i := range a.slots {
		if !a.slots[i].occupied {
			continue
		}
		if !fn(i, &a.slots[i].obj) {
			return
		}
	}
}

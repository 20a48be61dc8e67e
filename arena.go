package kitty

// DefaultBlockSlots is the arena's allocation granularity in object slots.
// 65536 slots of 16-byte object handles correspond to the original engine's
// 1 MiB allocation blocks.
const DefaultBlockSlots = 65536

// Arena is the growable backing store holding all active scene objects.
// Insertion order is render order. Capacity is managed in whole blocks with
// an asymmetric grow/shrink policy: grow one block when full, shrink one
// block only once utilization drops under a quarter of capacity, and never
// below a single block. The asymmetry keeps insert/remove sequences that
// hover near a block boundary from thrashing.
//
// Arena is not safe for concurrent use.
type Arena struct {
	block   int
	objects []Object // len(objects) is the reserved capacity in slots
	count   int
}

// NewArena creates an arena with one block of capacity. blockSlots values
// below 1 fall back to DefaultBlockSlots.
func NewArena(blockSlots int) *Arena {
	if blockSlots < 1 {
		blockSlots = DefaultBlockSlots
	}
	return &Arena{
		block:   blockSlots,
		objects: make([]Object, blockSlots),
	}
}

// Len returns the number of stored objects.
func (a *Arena) Len() int {
	return a.count
}

// Cap returns the reserved capacity in object slots. It is always a multiple
// of the block size and never less than one block while the arena is live.
func (a *Arena) Cap() int {
	return len(a.objects)
}

// Insert appends an object and returns its index.
func (a *Arena) Insert(obj Object) (int, error) {
	if a.objects == nil {
		return 0, ErrNotInitialized
	}
	a.rebalance()
	i := a.count
	a.objects[i] = obj
	a.count++
	return i, nil
}

// Remove deletes the object at index, shifting all subsequent objects down by
// one so render order is preserved. O(n) per removal; scenes are small enough
// that simplicity wins over a free list.
func (a *Arena) Remove(index int) error {
	if a.objects == nil {
		return ErrNotInitialized
	}
	if index < 0 || index >= a.count {
		return ErrInvalidIndex
	}
	copy(a.objects[index:], a.objects[index+1:a.count])
	a.count--
	a.objects[a.count] = nil
	a.rebalance()
	return nil
}

// Get returns the object stored at index.
func (a *Arena) Get(index int) (Object, error) {
	if a.objects == nil {
		return nil, ErrNotInitialized
	}
	if index < 0 || index >= a.count {
		return nil, ErrInvalidIndex
	}
	return a.objects[index], nil
}

// Clear drops every object and resets the arena to a fresh single-block
// backing store. Unlike Destroy, the arena remains usable afterwards.
func (a *Arena) Clear() error {
	if a.objects == nil {
		return ErrNotInitialized
	}
	a.objects = make([]Object, a.block)
	a.count = 0
	return nil
}

// Destroy releases the backing store entirely. The arena self-cleans: any
// remaining objects are dropped. After Destroy every operation returns
// ErrNotInitialized.
func (a *Arena) Destroy() {
	a.objects = nil
	a.count = 0
}

// rebalance applies the capacity policy: grow one block when the next insert
// would not fit, shrink one block when utilization has fallen under 25% and
// capacity is above the single-block floor. The >= / <25% asymmetry is the
// hysteresis that prevents resize thrash near a boundary.
func (a *Arena) rebalance() {
	switch {
	case a.count >= len(a.objects):
		next := make([]Object, len(a.objects)+a.block)
		copy(next, a.objects[:a.count])
		a.objects = next
	case a.count < len(a.objects)/4 && len(a.objects) > a.block:
		next := make([]Object, len(a.objects)-a.block)
		copy(next, a.objects[:a.count])
		a.objects = next
	}
}

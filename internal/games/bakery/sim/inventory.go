package sim

// AddOutcome tells why Inventory.Add did or did not take an item.
type AddOutcome int

const (
	AddOK AddOutcome = iota
	AddDuplicate
	AddFull
)

// Inventory is the player's ingredient slots plus one cake slot.
//
// Slots are filled left to right. Each item type occupies at most one slot.
type Inventory struct {
	slots []ItemType
	cake  CakeType
}

// NewInventory creates an empty inventory with the given number of slots.
func NewInventory(capacity int) *Inventory {
	return &Inventory{slots: make([]ItemType, capacity)}
}

// Capacity returns the number of ingredient slots.
func (inv *Inventory) Capacity() int {
	return len(inv.slots)
}

// Slots returns a copy of the slots; empty slots hold ItemNone.
func (inv *Inventory) Slots() []ItemType {
	out := make([]ItemType, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Contains reports whether some slot holds t.
func (inv *Inventory) Contains(t ItemType) bool {
	for _, s := range inv.slots {
		if s == t {
			return true
		}
	}
	return false
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for _, s := range inv.slots {
		if s != ItemNone {
			n++
		}
	}
	return n
}

// Full reports whether no slot is empty.
func (inv *Inventory) Full() bool {
	return inv.Count() == len(inv.slots)
}

// Add stores t in the first empty slot. A type already carried is refused
// with AddDuplicate, a full inventory with AddFull.
func (inv *Inventory) Add(t ItemType) (int, AddOutcome) {
	if inv.Contains(t) {
		return -1, AddDuplicate
	}
	for i, s := range inv.slots {
		if s == ItemNone {
			inv.slots[i] = t
			return i, AddOK
		}
	}
	return -1, AddFull
}

// Clear empties every slot and returns the items that were held, in slot
// order.
func (inv *Inventory) Clear() []ItemType {
	var cleared []ItemType
	for i, s := range inv.slots {
		if s != ItemNone {
			cleared = append(cleared, s)
		}
		inv.slots[i] = ItemNone
	}
	return cleared
}

// Cake returns the carried cake, or CakeNone.
func (inv *Inventory) Cake() CakeType {
	return inv.cake
}

// SetCake replaces the carried cake.
func (inv *Inventory) SetCake(c CakeType) {
	inv.cake = c
}

// TakeCake empties the cake slot and returns what it held.
func (inv *Inventory) TakeCake() CakeType {
	c := inv.cake
	inv.cake = CakeNone
	return c
}

// Package sim is the frame-by-frame simulation behind the bakery game:
// fixed-step physics, AABB collision with ground contacts, jump locking,
// trigger zones, the ingredient inventory with recipe matching, and the
// scored, timed session.
//
// The package draws nothing. Entities it wants to be visible are created and
// moved through the World interface, which the caller implements.
package sim

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	// ErrContainment means an actor ended up fully inside an obstacle, a
	// state the collision resolver cannot push out of.
	ErrContainment = errors.New("actor contained in obstacle")

	// ErrMissingSingleton means the layout lacks an entity the session
	// needs exactly one of (player, customer, counter, table, bin).
	ErrMissingSingleton = errors.New("required singleton missing")

	// ErrUnknownName is returned when parsing an item or cake name fails.
	ErrUnknownName = errors.New("unknown name")
)

// ItemType is an ingredient. The zero value marks an empty inventory slot.
type ItemType uint8

const (
	ItemNone ItemType = iota
	ItemEggs
	ItemFlour
	ItemChocolate
	ItemMilk
	ItemStrawberry
	itemEnd
)

var itemNames = [...]string{
	ItemNone:       "none",
	ItemEggs:       "eggs",
	ItemFlour:      "flour",
	ItemChocolate:  "chocolate",
	ItemMilk:       "milk",
	ItemStrawberry: "strawberry",
}

// AllItems returns every ingredient type in declaration order.
func AllItems() []ItemType {
	items := make([]ItemType, 0, itemEnd-1)
	for t := ItemEggs; t < itemEnd; t++ {
		items = append(items, t)
	}
	return items
}

func (t ItemType) String() string {
	if t < itemEnd {
		return itemNames[t]
	}
	return fmt.Sprintf("item(%d)", uint8(t))
}

// ParseItem maps a config name such as "eggs" to its ItemType.
func ParseItem(name string) (ItemType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t := ItemEggs; t < itemEnd; t++ {
		if itemNames[t] == name {
			return t, nil
		}
	}
	return ItemNone, fmt.Errorf("item %q: %w", name, ErrUnknownName)
}

// CakeType is a crafted result. The zero value means "no cake".
type CakeType uint8

const (
	CakeNone CakeType = iota
	CakeChocolate
	CakeFraisier
	cakeEnd
)

var cakeNames = [...]string{
	CakeNone:      "none",
	CakeChocolate: "chocolate",
	CakeFraisier:  "fraisier",
}

// AllCakes returns every cake type in declaration order.
func AllCakes() []CakeType {
	cakes := make([]CakeType, 0, cakeEnd-1)
	for c := CakeChocolate; c < cakeEnd; c++ {
		cakes = append(cakes, c)
	}
	return cakes
}

func (c CakeType) String() string {
	if c < cakeEnd {
		return cakeNames[c]
	}
	return fmt.Sprintf("cake(%d)", uint8(c))
}

// ParseCake maps a config name such as "fraisier" to its CakeType.
func ParseCake(name string) (CakeType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c := CakeChocolate; c < cakeEnd; c++ {
		if cakeNames[c] == name {
			return c, nil
		}
	}
	return CakeNone, fmt.Errorf("cake %q: %w", name, ErrUnknownName)
}

// ItemSet is an unordered set of ingredient types.
type ItemSet uint32

// NewItemSet builds a set from the given items. Duplicates collapse.
func NewItemSet(items ...ItemType) ItemSet {
	var s ItemSet
	for _, t := range items {
		if t != ItemNone {
			s |= 1 << t
		}
	}
	return s
}

// Has reports whether t is a member of the set.
func (s ItemSet) Has(t ItemType) bool {
	return t != ItemNone && s&(1<<t) != 0
}

// Len returns the number of members.
func (s ItemSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Items lists the members in declaration order.
func (s ItemSet) Items() []ItemType {
	var out []ItemType
	for t := ItemEggs; t < itemEnd; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s ItemSet) String() string {
	items := s.Items()
	names := make([]string, len(items))
	for i, t := range items {
		names[i] = t.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}

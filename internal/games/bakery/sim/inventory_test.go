package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddSkipsDuplicates(t *testing.T) {
	inv := NewInventory(4)

	steps := []struct {
		item    ItemType
		slot    int
		outcome AddOutcome
	}{
		{ItemEggs, 0, AddOK},
		{ItemFlour, 1, AddOK},
		{ItemEggs, -1, AddDuplicate},
		{ItemMilk, 2, AddOK},
	}
	for _, st := range steps {
		slot, outcome := inv.Add(st.item)
		assert.Equal(t, st.slot, slot, "add %s", st.item)
		assert.Equal(t, st.outcome, outcome, "add %s", st.item)
	}

	assert.Equal(t, []ItemType{ItemEggs, ItemFlour, ItemMilk, ItemNone}, inv.Slots())
	assert.Equal(t, 3, inv.Count())
	assert.False(t, inv.Full())
}

func TestInventoryFull(t *testing.T) {
	inv := NewInventory(3)
	for _, it := range []ItemType{ItemEggs, ItemFlour, ItemMilk} {
		_, outcome := inv.Add(it)
		require.Equal(t, AddOK, outcome)
	}
	require.True(t, inv.Full())

	slot, outcome := inv.Add(ItemChocolate)
	assert.Equal(t, -1, slot)
	assert.Equal(t, AddFull, outcome)
	assert.False(t, inv.Contains(ItemChocolate))
}

func TestInventoryClearKeepsSlotOrder(t *testing.T) {
	inv := NewInventory(4)
	inv.Add(ItemMilk)
	inv.Add(ItemEggs)
	inv.SetCake(CakeFraisier)

	assert.Equal(t, []ItemType{ItemMilk, ItemEggs}, inv.Clear())
	assert.Zero(t, inv.Count())
	assert.Equal(t, CakeFraisier, inv.Cake(), "clearing slots keeps the cake")

	assert.Equal(t, CakeFraisier, inv.TakeCake())
	assert.Equal(t, CakeNone, inv.Cake())
	assert.Nil(t, inv.Clear())
}

func TestInventorySlotsIsACopy(t *testing.T) {
	inv := NewInventory(2)
	inv.Add(ItemEggs)
	slots := inv.Slots()
	slots[0] = ItemMilk
	assert.True(t, inv.Contains(ItemEggs))
}

func bakeryRecipes(t *testing.T) *RecipeTable {
	t.Helper()
	table, err := NewRecipeTable(testLayout().Recipes...)
	require.NoError(t, err)
	return table
}

func TestRecipeMatchIgnoresOrder(t *testing.T) {
	table := bakeryRecipes(t)

	orders := [][]ItemType{
		{ItemEggs, ItemFlour, ItemChocolate, ItemMilk},
		{ItemMilk, ItemChocolate, ItemFlour, ItemEggs},
		{ItemFlour, ItemMilk, ItemEggs, ItemChocolate},
	}
	for _, slots := range orders {
		cake, ok := table.Match(slots)
		require.True(t, ok, "%v", slots)
		assert.Equal(t, CakeChocolate, cake)
	}

	cake, ok := table.Match([]ItemType{ItemStrawberry, ItemMilk, ItemEggs, ItemFlour})
	require.True(t, ok)
	assert.Equal(t, CakeFraisier, cake)
}

func TestRecipeMatch(t *testing.T) {
	tests := []struct {
		name  string
		slots []ItemType
		cake  CakeType
		ok    bool
	}{
		{"empty slot blocks a match", []ItemType{ItemEggs, ItemFlour, ItemMilk, ItemNone}, CakeNone, false},
		{"all empty", []ItemType{ItemNone, ItemNone, ItemNone, ItemNone}, CakeNone, false},
		{"mixed ingredients", []ItemType{ItemEggs, ItemChocolate, ItemStrawberry, ItemMilk}, CakeNone, false},
		{"full smaller inventory matches a subset", []ItemType{ItemEggs, ItemFlour, ItemMilk}, CakeChocolate, true},
		{"subset unique to the second recipe", []ItemType{ItemStrawberry, ItemEggs}, CakeFraisier, true},
	}

	table := bakeryRecipes(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cake, ok := table.Match(tc.slots)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.cake, cake)
		})
	}
}

func TestNewRecipeTableRejects(t *testing.T) {
	eggsFlour := NewItemSet(ItemEggs, ItemFlour)

	tests := []struct {
		name    string
		recipes []Recipe
	}{
		{"no ingredients", []Recipe{{Result: CakeChocolate}}},
		{"no result", []Recipe{{Ingredients: eggsFlour}}},
		{"same set twice", []Recipe{
			{Ingredients: eggsFlour, Result: CakeChocolate},
			{Ingredients: NewItemSet(ItemFlour, ItemEggs), Result: CakeFraisier},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecipeTable(tc.recipes...)
			assert.Error(t, err)
		})
	}
}

func TestRecipeTableProduces(t *testing.T) {
	table, err := NewRecipeTable(Recipe{Ingredients: NewItemSet(ItemEggs), Result: CakeFraisier})
	require.NoError(t, err)
	assert.True(t, table.Produces(CakeFraisier))
	assert.False(t, table.Produces(CakeChocolate))
	assert.Equal(t, 1, table.Len())
}

func TestItemSet(t *testing.T) {
	s := NewItemSet(ItemMilk, ItemEggs, ItemMilk, ItemNone)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(ItemEggs))
	assert.False(t, s.Has(ItemNone))
	assert.Equal(t, []ItemType{ItemEggs, ItemMilk}, s.Items())
	assert.Equal(t, "{eggs, milk}", s.String())
}

func TestParseNames(t *testing.T) {
	item, err := ParseItem(" Strawberry ")
	require.NoError(t, err)
	assert.Equal(t, ItemStrawberry, item)

	cake, err := ParseCake("FRAISIER")
	require.NoError(t, err)
	assert.Equal(t, CakeFraisier, cake)

	_, err = ParseItem("butter")
	assert.True(t, errors.Is(err, ErrUnknownName))
	_, err = ParseItem("none")
	assert.True(t, errors.Is(err, ErrUnknownName), "the empty slot marker is not an ingredient")
	_, err = ParseCake("cheesecake")
	assert.True(t, errors.Is(err, ErrUnknownName))
}

package sim

// RandSource is the randomness the simulation needs. *math/rand.Rand
// satisfies it; tests plug in fixed sequences.
type RandSource interface {
	Intn(n int) int
}

// Demand is the cake a customer is waiting for and the entity showing it.
type Demand struct {
	Want    CakeType
	Display EntityID
}

// RollDemand picks a cake uniformly from AllCakes.
func RollDemand(r RandSource) CakeType {
	cakes := AllCakes()
	return cakes[r.Intn(len(cakes))]
}

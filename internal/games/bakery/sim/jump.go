package sim

// JumpController gates jumping on ground contact.
//
// An actor holding the jump lock is airborne. The lock is released by a
// ground event and taken again by the next jump.
type JumpController struct {
	Impulse float64
}

// Update first releases the lock of every actor that touched ground this
// frame, then applies the jump impulse to jumper if jumpPressed and it is
// not locked. It reports whether an impulse was applied.
func (j JumpController) Update(actors []*Actor, ground []GroundEvent, jumper *Actor, jumpPressed bool) bool {
	for _, ev := range ground {
		for _, a := range actors {
			if a.ID == ev.Actor {
				a.JumpLock = false
			}
		}
	}

	if jumper == nil || !jumpPressed || jumper.JumpLock {
		return false
	}
	jumper.Acc.Y += j.Impulse
	jumper.JumpLock = true
	return true
}

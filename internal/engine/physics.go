package engine

// Integrate advances every entity by dt seconds and splits the result into
// entities still on screen and entities that left the playfield.
//
// The update is semi-implicit Euler: velocity picks up gravity first, then
// position moves by the new velocity. Non-alive entities are dropped
// silently; they were already accounted for when they were hit.
func Integrate(entities []Entity, dt, gravity float64, b Bounds) (kept, culled []Entity) {
	kept = entities[:0:0]
	for _, e := range entities {
		if !e.Alive {
			continue
		}
		e.Vel.Y += gravity * dt
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
		e.Rotation += e.Spin * dt

		if offscreen(e, gravity, b) {
			culled = append(culled, e)
			continue
		}
		kept = append(kept, e)
	}
	return kept, culled
}

// offscreen reports whether e has fully left the playfield in the direction
// it is travelling. Entities thrown upward under positive gravity are never
// culled on the way up; they will come back down.
func offscreen(e Entity, gravity float64, b Bounds) bool {
	switch {
	case e.Vel.Y >= 0 && e.Pos.Y-e.Size > b.H:
		return true
	case e.Vel.Y < 0 && gravity <= 0 && e.Pos.Y+e.Size < 0:
		return true
	case e.Pos.X+e.Size < 0 || e.Pos.X-e.Size > b.W:
		return true
	}
	return false
}

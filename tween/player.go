package tween

// Player owns the live tweens and advances them each frame.
type Player struct {
	active []*Tween
}

// Play starts t. Fields t animates are taken from any live tween; a tween
// left with no fields is dropped without completing.
func (p *Player) Play(t *Tween) *Tween {
	if len(t.tracks) > 0 {
		fields := make(map[*float64]struct{}, len(t.tracks))
		for _, tr := range t.tracks {
			fields[tr.field] = struct{}{}
		}
		kept := p.active[:0]
		for _, old := range p.active {
			if len(old.tracks) > 0 && old.release(fields) {
				old.Done = true
				continue
			}
			kept = append(kept, old)
		}
		p.active = kept
	}
	p.active = append(p.active, t)
	return t
}

// Stagger plays one tween per field, each starting each seconds after the
// previous one. The first starts after delay.
func (p *Player) Stagger(fields []*float64, to float64, duration float32, fn Func, delay, each float32) []*Tween {
	out := make([]*Tween, 0, len(fields))
	for i, f := range fields {
		out = append(out, p.Play(New(duration, fn, To(f, to)).Delay(delay+each*float32(i))))
	}
	return out
}

// DelayedCall runs fn after delay seconds.
func (p *Player) DelayedCall(delay float32, fn func()) *Tween {
	return p.Play(New(0, nil).Delay(delay).OnComplete(fn))
}

// Set writes values immediately and cancels tweens on the same fields.
func (p *Player) Set(props ...Prop) {
	for _, pr := range props {
		p.Kill(pr.Field)
		*pr.Field = pr.To
	}
}

// Kill stops every live tween animating field without completing it.
func (p *Player) Kill(field *float64) {
	kept := p.active[:0]
	for _, t := range p.active {
		if t.Animates(field) && t.release(map[*float64]struct{}{field: {}}) {
			t.Done = true
			continue
		}
		kept = append(kept, t)
	}
	p.active = kept
}

// Update advances every live tween by dt seconds. Tweens started from a
// completion callback first advance on the next frame.
func (p *Player) Update(dt float32) {
	snapshot := append([]*Tween(nil), p.active...)
	for _, t := range snapshot {
		if !t.Done {
			t.Update(dt)
		}
	}
	kept := p.active[:0]
	for _, t := range p.active {
		if !t.Done {
			kept = append(kept, t)
		}
	}
	p.active = kept
}

// Len returns the number of live tweens.
func (p *Player) Len() int {
	return len(p.active)
}

// Busy reports whether any live tween animates field.
func (p *Player) Busy(field *float64) bool {
	for _, t := range p.active {
		if !t.Done && t.Animates(field) {
			return true
		}
	}
	return false
}

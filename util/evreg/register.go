package evreg

// The zero register is empty and ready for use.
type Register struct {
	m       map[int][]*Callback
	running int // callbacks being run, removals are compacted after
}

//----------

// Remove is done via *Regist.Unregister().
func (reg *Register) Add(evId int, fn func(interface{})) *Regist {
	return reg.AddCallback(evId, &Callback{fn})
}

func (reg *Register) AddCallback(evId int, cb *Callback) *Regist {
	if reg.m == nil {
		reg.m = map[int][]*Callback{}
	}
	reg.m[evId] = append(reg.m[evId], cb)
	return &Regist{reg, evId, cb}
}

// Removes all occurrences of the callback at the event id.
func (reg *Register) RemoveCallback(evId int, cb *Callback) {
	u, ok := reg.m[evId]
	if !ok {
		return
	}
	if reg.running > 0 {
		// callbacks are being iterated: nil the slot, compacted later
		for i, cb2 := range u {
			if cb2 == cb {
				u[i] = nil
			}
		}
		return
	}
	w := u[:0]
	for _, cb2 := range u {
		if cb2 != cb && cb2 != nil {
			w = append(w, cb2)
		}
	}
	if len(w) == 0 {
		delete(reg.m, evId)
		return
	}
	reg.m[evId] = w
}

//----------

// Returns number of callbacks done. Callbacks added while running are not called in this run.
func (reg *Register) RunCallbacks(evId int, ev interface{}) int {
	u, ok := reg.m[evId]
	if !ok {
		return 0
	}
	reg.running++
	c := 0
	for _, cb := range u {
		if cb == nil {
			continue // removed while running
		}
		cb.F(ev)
		c++
	}
	reg.running--
	if reg.running == 0 {
		reg.compact(evId)
	}
	return c
}

func (reg *Register) compact(evId int) {
	u, ok := reg.m[evId]
	if !ok {
		return
	}
	w := u[:0]
	for _, cb := range u {
		if cb != nil {
			w = append(w, cb)
		}
	}
	if len(w) == 0 {
		delete(reg.m, evId)
		return
	}
	reg.m[evId] = w
}

// Number of registered callbacks for an event id.
func (reg *Register) NCallbacks(evId int) int {
	n := 0
	for _, cb := range reg.m[evId] {
		if cb != nil {
			n++
		}
	}
	return n
}

//----------

type Callback struct {
	F func(ev interface{})
}

//----------

type Regist struct {
	evReg *Register
	id    int
	cb    *Callback
}

func (reg *Regist) Unregister() {
	reg.evReg.RemoveCallback(reg.id, reg.cb)
}

//----------

// Utility to unregister big number of regists.
type Unregister struct {
	v []*Regist
}

func (unr *Unregister) Add(u ...*Regist) {
	unr.v = append(unr.v, u...)
}
func (unr *Unregister) UnregisterAll() {
	for _, e := range unr.v {
		e.Unregister()
	}
	unr.v = nil
}
func (unr *Unregister) Len() int {
	return len(unr.v)
}

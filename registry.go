// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"slices"
	"weak"
)

// registry tracks instances without keeping them alive.
type registry struct {
	entries []weak.Pointer[Instance]
}

func (r *registry) add(inst *Instance) {
	r.entries = append(r.entries, weak.Make(inst))
}

func (r *registry) len() int { return len(r.entries) }

// each calls fn for every instance that is still reachable.
func (r *registry) each(fn func(*Instance)) {
	for _, p := range r.entries {
		if inst := p.Value(); inst != nil {
			fn(inst)
		}
	}
}

// prune drops collected and closed instances and reports how many were
// removed.
func (r *registry) prune() int {
	before := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(p weak.Pointer[Instance]) bool {
		inst := p.Value()
		return inst == nil || inst.isClosed()
	})

	return before - len(r.entries)
}

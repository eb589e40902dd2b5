package transition

import "segue/pkg/tui/animation"

// handle owns every cancelable resource of one in-flight transition: the
// animation frame subscription and the generation token that guards its
// scheduled messages. Timer and frame messages carry the generation they
// were scheduled under; once the handle moves on, stale messages no longer
// match and are dropped, which cancels them without tracking individual
// timers.
type handle struct {
	gen int
	sub animation.Subscription
}

// next invalidates everything scheduled so far and returns the generation
// for the transition that is about to start.
func (h *handle) next() int {
	h.gen++
	return h.gen
}

// owns reports whether a scheduled message belongs to the current
// transition.
func (h *handle) owns(gen int) bool {
	return gen == h.gen
}

// dispose tears the current transition down: scheduled messages become
// stale and the frame subscription is released.
func (h *handle) dispose() {
	h.gen++
	h.sub.Stop()
}

package slingshot

import "sort"

type scheduledEvent struct {
	at   float64
	gen  uint64
	name string
	fn   func()
}

// Scheduler holds delayed state transitions on the simulation clock.
// Cancel invalidates everything queued so far, including entries that are
// already due in the RunDue call currently executing, so a callback from an
// old round can never touch a newer one.
//
// Not safe for concurrent use; the owning engine serializes access.
type Scheduler struct {
	events []scheduledEvent
	gen    uint64
}

// Schedule queues fn to run once the clock reaches at.
func (s *Scheduler) Schedule(at float64, name string, fn func()) {
	s.events = append(s.events, scheduledEvent{at: at, gen: s.gen, name: name, fn: fn})
}

// Cancel drops all pending transitions.
func (s *Scheduler) Cancel() {
	s.gen++
	s.events = s.events[:0]
}

// RunDue fires every transition due at now, earliest first, and returns
// how many ran.
func (s *Scheduler) RunDue(now float64) int {
	var due []scheduledEvent
	keep := s.events[:0]
	for _, ev := range s.events {
		if ev.at <= now {
			due = append(due, ev)
		} else {
			keep = append(keep, ev)
		}
	}
	s.events = keep

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })

	fired := 0
	for _, ev := range due {
		if ev.gen != s.gen {
			continue
		}
		ev.fn()
		fired++
	}
	return fired
}

// Pending returns the names of queued transitions in queue order.
func (s *Scheduler) Pending() []string {
	names := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		names = append(names, ev.name)
	}
	return names
}

// Next returns the earliest deadline, if any.
func (s *Scheduler) Next() (float64, bool) {
	if len(s.events) == 0 {
		return 0, false
	}
	next := s.events[0].at
	for _, ev := range s.events[1:] {
		next = min(next, ev.at)
	}
	return next, true
}

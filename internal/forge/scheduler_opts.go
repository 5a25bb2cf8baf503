package forge

import "time"

type SchedulerOpt func(*Scheduler)

// WithTickInterval sets how often the scheduler visits tracked games.
func WithTickInterval(d time.Duration) SchedulerOpt {
	return func(s *Scheduler) {
		if d > 0 {
			s.tickInterval = d
		}
	}
}

// WithStalenessWindow sets how recently-written a record must be for the
// scheduler to skip it.
func WithStalenessWindow(d time.Duration) SchedulerOpt {
	return func(s *Scheduler) {
		if d > 0 {
			s.stalenessWindow = d
		}
	}
}

// WithTrackTTL sets how long a game stays tracked after its last
// registration.
func WithTrackTTL(d time.Duration) SchedulerOpt {
	return func(s *Scheduler) {
		if d > 0 {
			s.trackTTL = d
		}
	}
}

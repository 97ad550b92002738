package container

import "sync"

// cellState tracks a singleton's materialization progress.
type cellState uint8

const (
	cellEmpty cellState = iota
	cellBuilding
	cellReady
)

// cell memoizes one singleton instance. Construction runs exactly once even
// under concurrent first resolution: the first caller builds while later
// callers block on done, then re-examine the state. A failed construction
// resets the cell so a later resolution can retry.
//
// Reentrant construction of the same key never reaches the cell; the
// resolution chain rejects it as a cycle first. That check is per chain:
// two singletons that cycle through each other and are first resolved
// concurrently from both ends can each mark their own cell Building and
// block on the other's done channel. A cyclic registration is a defect in
// the composition root either way; single-threaded resolution reports it.
type cell struct {
	mu    sync.Mutex
	state cellState
	done  chan struct{}
	value any
}

func (s *cell) materialize(build func() (any, error)) (any, error) {
	for {
		s.mu.Lock()
		switch s.state {
		case cellReady:
			v := s.value
			s.mu.Unlock()
			return v, nil

		case cellBuilding:
			done := s.done
			s.mu.Unlock()
			<-done

		default:
			s.state = cellBuilding
			s.done = make(chan struct{})
			done := s.done
			s.mu.Unlock()

			v, err := build()

			s.mu.Lock()
			if err != nil {
				s.state = cellEmpty
			} else {
				s.state = cellReady
				s.value = v
			}
			s.mu.Unlock()
			close(done)

			if err != nil {
				return nil, err
			}
			return v, nil
		}
	}
}

// ready reports whether the singleton has been materialized.
func (s *cell) ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == cellReady
}

package store

// Slice names a part of the state that views can watch.
type Slice string

const (
	SliceCompanies    Slice = "companies"
	SliceConnections  Slice = "connections"
	SliceInteractions Slice = "interactions"
	SliceReminders    Slice = "reminders"
	SliceNotes        Slice = "notes"
	SliceTimeline     Slice = "timeline"
	SliceStats        Slice = "stats"
	SliceProfile      Slice = "profile"
)

// Listener is called synchronously after a mutation commits, once per changed slice.
// Listeners may read from the store but must not mutate it.
type Listener func(Slice)

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.lmu.Lock()
	id := s.nextLID
	s.nextLID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

func (s *Store) publish(changed ...Slice) {
	if len(changed) == 0 {
		return
	}

	s.lmu.Lock()
	fns := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.lmu.Unlock()

	for _, sl := range changed {
		for _, fn := range fns {
			fn(sl)
		}
	}
}

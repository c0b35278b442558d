package unitview

import "sync/atomic"

// storeState is the complete, immutable state of the store at one instant.
// Mutators copy it, change one field, and swap the pointer.
type storeState struct {
	units   []ServiceInfo
	loaded  bool
	loading bool
	lastErr string
}

// Store holds the most recent successful listing. Every refresh replaces
// the snapshot wholesale; nothing is ever patched in place and no identity
// survives across snapshots.
//
// Writes come from the single goroutine orchestrating refreshes; reads may
// come from anywhere. Latest write wins.
type Store struct {
	state atomic.Pointer[storeState]
}

// NewStore creates an empty Store in the not-yet-loaded state.
func NewStore() *Store {
	s := &Store{}
	s.state.Store(&storeState{})
	return s
}

// Replace installs a new snapshot and clears any previous error. The slice
// is adopted as-is; callers must not mutate it afterwards.
func (s *Store) Replace(units []ServiceInfo) {
	cur := s.state.Load()
	s.state.Store(&storeState{
		units:   units,
		loaded:  true,
		loading: cur.loading,
	})
}

// Current returns the latest snapshot and whether a first successful
// refresh has completed. Callers must treat the slice as read-only.
func (s *Store) Current() ([]ServiceInfo, bool) {
	st := s.state.Load()
	return st.units, st.loaded
}

// SetLoading records whether a refresh is in progress, for display.
func (s *Store) SetLoading(loading bool) {
	next := *s.state.Load()
	next.loading = loading
	s.state.Store(&next)
}

// Loading reports whether a refresh is in progress.
func (s *Store) Loading() bool {
	return s.state.Load().loading
}

// SetError records a failed refresh or mutation. The existing snapshot is
// left intact: a failed refresh never clears a populated store.
func (s *Store) SetError(msg string) {
	next := *s.state.Load()
	next.lastErr = msg
	s.state.Store(&next)
}

// LastError returns the most recent error text, empty after a successful
// refresh.
func (s *Store) LastError() string {
	return s.state.Load().lastErr
}

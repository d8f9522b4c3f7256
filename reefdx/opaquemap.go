package reefdx

import (
	"sync"
	"time"
)

// OpaqueMap is the correlation table mapping in-flight opaque identifiers to
// their completion handlers.  It upholds the guarantees the dispatch layer
// depends on: opaque ids are unique among in-flight entries, each handler is
// invoked exactly once with a terminal result (response, timeout or
// cancellation - whichever comes first), and a handler which has received an
// error is never invoked again.
type OpaqueMap struct {
	lock sync.Mutex

	closed  bool
	counter uint32
	entries map[uint32]*opaqueMapEntry
}

func NewOpaqueMap() *OpaqueMap {
	return &OpaqueMap{
		entries: make(map[uint32]*opaqueMapEntry),
	}
}

// Register assigns the next opaque id to the handler and records its
// deadline.  A zero deadline means the entry never expires on its own.
// The counter wraps on overflow; uniqueness among concurrently in-flight
// entries holds because the table bounds how many can be outstanding long
// before wraparound becomes reachable.  Registering against a closed table
// fails with ErrClosedInFlight.
func (m *OpaqueMap) Register(handler DispatchCallback, deadline time.Time) (uint32, error) {
	// the entry escapes to the heap, allocate it outside the lock.
	entry := &opaqueMapEntry{
		handler:  handler,
		deadline: deadline,
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	if m.closed {
		return 0, ErrClosedInFlight
	}

	m.counter++
	if m.counter == 0 {
		// zero is reserved so an unset opaque is never a valid entry
		m.counter = 1
	}
	opaqueID := m.counter

	m.entries[opaqueID] = entry

	return opaqueID, nil
}

func (m *OpaqueMap) get(opaqueID uint32) (*opaqueMapEntry, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	entry, ok := m.entries[opaqueID]
	return entry, ok
}

func (m *OpaqueMap) getAndRemove(opaqueID uint32) (*opaqueMapEntry, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	entry, ok := m.entries[opaqueID]
	if !ok {
		return nil, false
	}

	delete(m.entries, opaqueID)
	return entry, true
}

func (m *OpaqueMap) remove(opaqueID uint32) {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.entries, opaqueID)
}

// Invoke routes a response to the entry's handler.  Returns whether more
// packets are expected for this opaque, and whether a handler was actually
// invoked.  An unknown opaque is reported via the second return, it is not
// an error.
func (m *OpaqueMap) Invoke(opaqueID uint32, pak *Packet, err error) (bool, bool) {
	entry, ok := m.get(opaqueID)
	if !ok {
		return false, false
	}

	hasMorePackets, wasInvoked := entry.invoke(pak, err)
	if !hasMorePackets {
		m.remove(opaqueID)
	}

	return hasMorePackets, wasInvoked
}

// Invalidate removes an entry without invoking its handler.  Returns false
// if the entry was already resolved.
func (m *OpaqueMap) Invalidate(opaqueID uint32) bool {
	entry, ok := m.getAndRemove(opaqueID)
	if !ok {
		return false
	}

	return entry.invalidate()
}

func (m *OpaqueMap) closeAndStealEntries() map[uint32]*opaqueMapEntry {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.closed = true
	entries := m.entries
	m.entries = make(map[uint32]*opaqueMapEntry)

	return entries
}

func (m *OpaqueMap) stealExpiredEntries(now time.Time) []*opaqueMapEntry {
	m.lock.Lock()
	defer m.lock.Unlock()

	var expired []*opaqueMapEntry
	for opaqueID, entry := range m.entries {
		if !entry.deadline.IsZero() && !entry.deadline.After(now) {
			expired = append(expired, entry)
			delete(m.entries, opaqueID)
		}
	}

	return expired
}

// CancelAll fails every remaining entry with the provided error and marks the
// table closed, so a registration racing the close resolves either way: it is
// stolen and failed here, or it is refused by Register.  Invoked on channel
// close so that no entry is ever silently dropped.
func (m *OpaqueMap) CancelAll(err error) {
	entries := m.closeAndStealEntries()
	for _, entry := range entries {
		entry.invoke(nil, err)
	}
}

// CancelExpired fails every entry whose deadline has elapsed.  A response
// arriving for such an entry afterwards finds no handler and is dropped:
// once the timeout fires, it wins.
func (m *OpaqueMap) CancelExpired(now time.Time, err error) int {
	expired := m.stealExpiredEntries(now)
	for _, entry := range expired {
		entry.invoke(nil, err)
	}

	return len(expired)
}

type opaqueMapEntry struct {
	lock     sync.Mutex
	handler  DispatchCallback
	deadline time.Time
}

func (e *opaqueMapEntry) invoke(pak *Packet, err error) (bool, bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.handler == nil {
		return false, false
	}

	hasMorePackets := e.handler(pak, err)
	if err != nil || !hasMorePackets {
		e.handler = nil
	}

	return hasMorePackets, true
}

func (e *opaqueMapEntry) invalidate() bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.handler == nil {
		return false
	}

	e.handler = nil
	return true
}

package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered uint64
	UserLogins      uint64
	AuthRejections  uint64
	JobsCreated     uint64
	JobsUpdated     uint64
	JobsDeleted     uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered uint64
	userLogins      uint64
	authRejections  uint64
	jobsCreated     uint64
	jobsUpdated     uint64
	jobsDeleted     uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered: atomic.LoadUint64(&m.usersRegistered),
		UserLogins:      atomic.LoadUint64(&m.userLogins),
		AuthRejections:  atomic.LoadUint64(&m.authRejections),
		JobsCreated:     atomic.LoadUint64(&m.jobsCreated),
		JobsUpdated:     atomic.LoadUint64(&m.jobsUpdated),
		JobsDeleted:     atomic.LoadUint64(&m.jobsDeleted),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncUserLoggedIn increments the login counter.
func (m *InMemoryRecorder) IncUserLoggedIn() {
	atomic.AddUint64(&m.userLogins, 1)
}

// IncAuthRejected increments the rejected-authentication counter.
func (m *InMemoryRecorder) IncAuthRejected() {
	atomic.AddUint64(&m.authRejections, 1)
}

// IncJobCreated increments the job created counter.
func (m *InMemoryRecorder) IncJobCreated() {
	atomic.AddUint64(&m.jobsCreated, 1)
}

// IncJobUpdated increments the job updated counter.
func (m *InMemoryRecorder) IncJobUpdated() {
	atomic.AddUint64(&m.jobsUpdated, 1)
}

// IncJobDeleted increments the job deleted counter.
func (m *InMemoryRecorder) IncJobDeleted() {
	atomic.AddUint64(&m.jobsDeleted, 1)
}

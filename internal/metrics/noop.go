package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncUserLoggedIn is a no-op.
func (n *NoopRecorder) IncUserLoggedIn() {}

// IncAuthRejected is a no-op.
func (n *NoopRecorder) IncAuthRejected() {}

// IncJobCreated is a no-op.
func (n *NoopRecorder) IncJobCreated() {}

// IncJobUpdated is a no-op.
func (n *NoopRecorder) IncJobUpdated() {}

// IncJobDeleted is a no-op.
func (n *NoopRecorder) IncJobDeleted() {}

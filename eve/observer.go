package eve

// Observer receives engine instrumentation. Implementations must be safe
// for concurrent use when shared by several engines.
type Observer interface {
	// ObserveQuery is called once per answered query.
	ObserveQuery(stats QueryStats)
	// ObserveEpochReset is called after every full clear.
	ObserveEpochReset()
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) ObserveQuery(QueryStats) {}
func (NoopObserver) ObserveEpochReset()      {}

package di

// Logger is the cross-cutting capability the injector knows how to attach
// after construction. Register any implementation under the injector's
// logger identity (LoggerIdentity by default) to make it available.
type Logger interface {
	Log(message string)
}

// LoggerAware is opted into by constructor-built instances that accept a
// logger after construction.
//
// Enrichment is best-effort: if the logger identity is unregistered, its
// build fails, or the resolved instance is not a Logger, SetLogger is simply
// not called and construction still succeeds. Factory-built instances are
// never enriched.
type LoggerAware interface {
	SetLogger(logger Logger)
}

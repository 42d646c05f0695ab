package metrics

// Config carries metric instrumentation settings.
type Config struct {
	ServiceName string
}

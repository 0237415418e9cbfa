package spotlight

import "fmt"

// ConfigurationError reports a config value rejected at construction time.
// Composers are never created from an invalid config, so no draw plan can
// ever be produced from one.
type ConfigurationError struct {
	// Field is the offending config field (e.g., "OverlayOpacity").
	Field string
	// Value is the rejected value.
	Value float64
	// Reason describes the constraint that was violated.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("spotlight config: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// NotReadyError reports that the host layout has not yet measured the target
// element. The composer treats it as "not yet visible"; the surrounding
// sequencer retries once layout completes.
type NotReadyError struct {
	// Key identifies the highlight whose target is unmeasured, when known.
	Key any
}

func (e *NotReadyError) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("spotlight: target for highlight %v not yet measured", e.Key)
	}
	return "spotlight: target not yet measured"
}

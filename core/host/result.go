package host

// Result tells the plugin loader how a hook call was handled.
type Result uint8

const (
	// ResultUnset means the hook did not report a result.
	ResultUnset Result = iota
	// ResultIgnored means the plugin took no action.
	ResultIgnored
	// ResultHandled means the plugin did its work and the engine continues as usual.
	ResultHandled
	// ResultOverride means the engine still runs but the plugin's return value is used.
	ResultOverride
	// ResultSupercede means the engine's own handler is skipped.
	ResultSupercede
)

func (r Result) String() string {
	switch r {
	case ResultIgnored:
		return "ignored"
	case ResultHandled:
		return "handled"
	case ResultOverride:
		return "override"
	case ResultSupercede:
		return "supercede"
	default:
		return "unset"
	}
}

package transfer

// State is the phase of an upload.
type State int

const (
	Idle State = iota
	Staged
	RequestingCapability
	Transferring
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Staged:
		return "staged"
	case RequestingCapability:
		return "requesting-capability"
	case Transferring:
		return "transferring"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == Done || s == Failed
}

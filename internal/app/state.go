package app

type State int

const (
	AwaitingLocation State = iota
	MapReady
	AwaitingClick
	FormOpen
)

func (s State) String() string {
	switch s {
	case AwaitingLocation:
		return "awaiting-location"
	case MapReady:
		return "map-ready"
	case AwaitingClick:
		return "awaiting-click"
	case FormOpen:
		return "form-open"
	default:
		return "unknown"
	}
}

package app

// State is the input mode of the page.
type State int

const (
	StateBrowsing  State = iota // Keys drive the list
	StateSearching              // Keys go to the search box
	StateHelp                   // Help overlay is shown
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateSearching:
		return "searching"
	case StateHelp:
		return "help"
	default:
		return "unknown"
	}
}

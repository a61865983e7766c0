package app

import "charm.land/bubbles/v2/key"

// KeyMap defines the page-level bindings. List navigation lives in
// vlist.KeyMap.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Search    key.Binding
	Submit    key.Binding
	Escape    key.Binding
	Help      key.Binding
	Reload    key.Binding
	Center    key.Binding
}

// DefaultKeyMap returns the default page bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply search"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		Center: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "center row"),
		),
	}
}

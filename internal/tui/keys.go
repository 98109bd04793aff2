package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	search     key.Binding
	promoteLTR key.Binding
	promoteRTL key.Binding
	copy       key.Binding
	reveal     key.Binding
	reload     key.Binding
	sync       key.Binding
	syncPanel  key.Binding
	buildInfo  key.Binding
	keepLocal  key.Binding
	keepRemote key.Binding
	keepBoth   key.Binding
	forceQuit  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left", "h")),
	right:      key.NewBinding(key.WithKeys("right", "l")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	search:     key.NewBinding(key.WithKeys("/")),
	promoteLTR: key.NewBinding(key.WithKeys(">")),
	promoteRTL: key.NewBinding(key.WithKeys("<")),
	copy:       key.NewBinding(key.WithKeys("c")),
	reveal:     key.NewBinding(key.WithKeys("r")),
	reload:     key.NewBinding(key.WithKeys("u")),
	sync:       key.NewBinding(key.WithKeys("s")),
	syncPanel:  key.NewBinding(key.WithKeys("p")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	keepLocal:  key.NewBinding(key.WithKeys("1")),
	keepRemote: key.NewBinding(key.WithKeys("2")),
	keepBoth:   key.NewBinding(key.WithKeys("3")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
}

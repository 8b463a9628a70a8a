package config

import "github.com/charmbracelet/bubbles/key"

// Keys lists the key names bound to one action, as found in the config file.
type Keys []string

type KeyMappings[T any] struct {
	Cancel T `toml:"cancel"`
	Quit   T `toml:"quit"`
}

func Convert(m KeyMappings[Keys]) KeyMappings[key.Binding] {
	return KeyMappings[key.Binding]{
		Cancel: key.NewBinding(key.WithKeys(m.Cancel...), key.WithHelp(first(m.Cancel), "cancel drag")),
		Quit:   key.NewBinding(key.WithKeys(m.Quit...), key.WithHelp(first(m.Quit), "quit")),
	}
}

func first(keys Keys) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

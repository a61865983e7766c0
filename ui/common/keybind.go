package common

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/jcikl/jcikl-member-app-sub001/style"
)

// KeyHelp renders a one-line hint for the given bindings as
//
//	key desc  key desc
//
// Disabled bindings are omitted.
func KeyHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, style.HintKey.Render(h.Key)+" "+style.Hint.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

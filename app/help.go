package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/glamour"

	"github.com/jcikl/jcikl-member-app-sub001/style"
	"github.com/jcikl/jcikl-member-app-sub001/ui/vlist"
)

// helpMarkdown builds the help text from the live bindings so remapped keys
// show up correctly.
func helpMarkdown(page KeyMap, list vlist.KeyMap) string {
	var sb strings.Builder
	sb.WriteString("# Members\n\n")
	sb.WriteString("Only the rows on screen are drawn, so the list stays fast at any size.\n\n")
	sb.WriteString("## Navigation\n\n")
	writeBindings(&sb, list.Bindings())
	sb.WriteString("\n## Page\n\n")
	writeBindings(&sb, []key.Binding{page.Search, page.Submit, page.Escape, page.Reload, page.Center, page.Help, page.Quit})
	sb.WriteString("\nA new search replaces the dataset and returns to the first row.\n")
	return sb.String()
}

func writeBindings(sb *strings.Builder, bindings []key.Binding) {
	sb.WriteString("| Key | Action |\n|---|---|\n")
	for _, b := range bindings {
		h := b.Help()
		fmt.Fprintf(sb, "| `%s` | %s |\n", h.Key, h.Desc)
	}
}

// glamourStyle follows the active theme. Auto-detection would query the
// terminal while the program owns its input.
func glamourStyle() string {
	if style.IsDark() {
		return "dark"
	}
	return "light"
}

// renderMarkdown renders markdown with glamour, falling back to the raw text.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/jcikl/jcikl-member-app-sub001/app"
	"github.com/jcikl/jcikl-member-app-sub001/config"
	"github.com/jcikl/jcikl-member-app-sub001/dataset"
	"github.com/jcikl/jcikl-member-app-sub001/observability"
	"github.com/jcikl/jcikl-member-app-sub001/style"
	"github.com/jcikl/jcikl-member-app-sub001/viewport"
)

func newBrowseCmd() *cobra.Command {
	var membersFile string

	c := &cobra.Command{
		Use:   "browse",
		Short: "Open the member browser",
		Long: `Open a full-screen member table. Only the rows inside the visible
window are rendered, so a million synthetic members scroll as smoothly as ten.`,
		Annotations: map[string]string{annotationConsole: consoleDiscard},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			if err := applyTheme(e.cfg.Theme); err != nil {
				return err
			}
			src, err := memberSource(e.cfg, membersFile)
			if err != nil {
				return err
			}

			opts := []app.Option{app.WithLogger(observability.GetLogger().Named("app"))}
			if v, ok := viewport.Probe(int(os.Stdout.Fd()), app.ListInsets); ok {
				opts = append(opts, app.WithInitialSize(v))
			}
			m, err := app.New(cmd.Context(), src, e.cfg, opts...)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}

	addListFlags(c)
	f := c.Flags()
	f.Int("count", config.NewDefaultConfig().Data.Count, "number of synthetic members")
	f.String("seed", config.NewDefaultConfig().Data.Seed, "seed for synthetic member keys")
	f.String("theme", "", "color theme ("+strings.Join(style.ThemeNames(), ", ")+"); empty detects the terminal background")
	f.StringVar(&membersFile, "members", "", "load members from a YAML file instead of generating them")
	return c
}

// addListFlags registers the list settings shared by browse and window.
func addListFlags(c *cobra.Command) {
	d := config.NewDefaultConfig().List
	f := c.Flags()
	f.Int("item-size", d.ItemSize, "row height in lines")
	f.Int("overscan", d.OverscanCount, "rows rendered beyond each viewport edge")
	f.Int("height", d.Height, "fixed list height in lines (0 measures the terminal)")
	f.String("empty-text", d.EmptyText, "placeholder for an empty list")
	f.String("loading-text", d.LoadingText, "placeholder while loading")
	f.Bool("scrollbar", d.Scrollbar, "draw a scrollbar")
}

func applyTheme(name string) error {
	if name == "" {
		if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
			style.SetTheme("dark")
		} else {
			style.SetTheme("light")
		}
		return nil
	}
	if !style.SetTheme(name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(style.ThemeNames(), ", "))
	}
	return nil
}

func memberSource(cfg *config.Config, membersFile string) (dataset.Source, error) {
	if membersFile != "" {
		return dataset.LoadMembers(membersFile)
	}
	return dataset.Synthetic{Count: cfg.Data.Count, Seed: cfg.Data.Seed}, nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jcikl/jcikl-member-app-sub001/config"
	"github.com/jcikl/jcikl-member-app-sub001/dataset"
	"github.com/jcikl/jcikl-member-app-sub001/observability"
	"github.com/jcikl/jcikl-member-app-sub001/scroll"
	"github.com/jcikl/jcikl-member-app-sub001/ui/vlist"
	"github.com/jcikl/jcikl-member-app-sub001/viewport"
	"github.com/jcikl/jcikl-member-app-sub001/window"
)

// windowReport is what the window command prints.
type windowReport struct {
	Count          int         `yaml:"count" json:"count"`
	ItemSize       float64     `yaml:"item_size" json:"item_size"`
	Overscan       int         `yaml:"overscan" json:"overscan"`
	ViewportHeight float64     `yaml:"viewport_height" json:"viewport_height"`
	Offset         float64     `yaml:"offset" json:"offset"`
	MaxOffset      float64     `yaml:"max_offset" json:"max_offset"`
	SurfaceHeight  float64     `yaml:"surface_height" json:"surface_height"`
	Frame          string      `yaml:"frame" json:"frame"`
	Window         *windowSpan `yaml:"window" json:"window"`
	Placeholder    string      `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Rows           []rowReport `yaml:"rows,omitempty" json:"rows,omitempty"`
}

type windowSpan struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
	Len   int `yaml:"len" json:"len"`
}

type rowReport struct {
	Index int     `yaml:"index" json:"index"`
	Top   float64 `yaml:"top" json:"top"`
	Key   string  `yaml:"key" json:"key"`
	Name  string  `yaml:"name" json:"name"`
}

func newWindowCmd() *cobra.Command {
	var (
		offset float64
		index  int
		align  string
		rows   bool
		format string
	)

	c := &cobra.Command{
		Use:   "window",
		Short: "Print the render window for a list configuration",
		Long: `Run one layout cycle against a fixed-size viewport and print the rows
that would be rendered. Scroll with --offset, or jump to a row with --index.`,
		Example: `  vlist window --count 1000 --item-size 50 --height 600 --overscan 5
  vlist window --count 1000 --item-size 50 --height 600 --offset 5000 --rows
  vlist window --count 100 --height 10 --index 42 --align center -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			log := observability.GetLogger().Named("window")

			if e.cfg.List.Height <= 0 {
				return fmt.Errorf("--height must be positive for the window command")
			}
			ctrl, err := scroll.New(scroll.Config{
				ItemSize: float64(e.cfg.List.ItemSize),
				Overscan: e.cfg.List.OverscanCount,
			}, scroll.WithLogger(log))
			if err != nil {
				return err
			}

			box := viewport.Fixed(0, float64(e.cfg.List.Height))
			release := box.Subscribe(func(v viewport.Viewport) { ctrl.SetViewport(v.Height) })
			defer release()

			src := dataset.Synthetic{Count: e.cfg.Data.Count, Seed: e.cfg.Data.Seed}
			data, err := src.List(cmd.Context(), dataset.Query{})
			if err != nil {
				return err
			}
			ctrl.SetDataset(data.Identity(), data.Len())

			if cmd.Flags().Changed("index") {
				ctrl.ScrollToIndex(index, scroll.ParseAlign(align))
			} else {
				ctrl.OnScroll(offset)
			}

			render := func(d vlist.RowDescriptor) string { return data.At(d.Index).Name }
			frame := vlist.Layout(ctrl.State(), false, vlist.Placeholders{
				Empty: func() string { return e.cfg.List.EmptyText },
			}, -1, render)

			report := buildReport(ctrl.State(), frame, data, rows)
			log.Debug("window computed",
				zap.Stringer("window", frame.Window),
				zap.Float64("offset", frame.Offset))
			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	addListFlags(c)
	f := c.Flags()
	f.Int("count", config.NewDefaultConfig().Data.Count, "number of rows")
	f.String("seed", config.NewDefaultConfig().Data.Seed, "seed for synthetic member keys")
	f.Float64Var(&offset, "offset", 0, "scroll offset in pixels or lines")
	f.IntVar(&index, "index", 0, "scroll row into view instead of using --offset")
	f.StringVar(&align, "align", "auto", "alignment for --index (auto, start, end, center)")
	f.BoolVar(&rows, "rows", false, "list every rendered row")
	f.StringVarP(&format, "output", "o", "text", "output format (text, yaml, json)")
	return c
}

func buildReport(st scroll.State, f vlist.Frame, data dataset.Dataset, withRows bool) windowReport {
	r := windowReport{
		Count:          st.Count,
		ItemSize:       st.ItemSize,
		Overscan:       st.Overscan,
		ViewportHeight: st.ViewportHeight,
		Offset:         st.Offset,
		MaxOffset:      window.MaxOffset(st.Count, st.ItemSize, st.ViewportHeight),
		SurfaceHeight:  f.SurfaceHeight,
		Frame:          f.Kind.String(),
		Placeholder:    f.Placeholder,
	}
	if !f.Window.IsEmpty() {
		r.Window = &windowSpan{Start: f.Window.Start, End: f.Window.End, Len: f.Window.Len()}
	}
	if withRows {
		for _, row := range f.Rows {
			r.Rows = append(r.Rows, rowReport{
				Index: row.Index,
				Top:   row.Top,
				Key:   dataset.RowKey(data.At(row.Index), row.Index),
				Name:  row.Content,
			})
		}
	}
	return r
}

func writeReport(w io.Writer, format string, r windowReport) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "text":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, r windowReport) error {
	win, n := "{}", 0
	if r.Window != nil {
		win = fmt.Sprintf("{%d,%d}", r.Window.Start, r.Window.End)
		n = r.Window.Len
	}
	if _, err := fmt.Fprintf(w, "window   %s\nrendered %d of %d\noffset   %g / %g\nsurface  %g\n",
		win, n, r.Count, r.Offset, r.MaxOffset, r.SurfaceHeight); err != nil {
		return err
	}
	if r.Placeholder != "" {
		if _, err := fmt.Fprintf(w, "placeholder %q\n", r.Placeholder); err != nil {
			return err
		}
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintf(w, "%8d  top=%-10g %s  %s\n", row.Index, row.Top, row.Key, row.Name); err != nil {
			return err
		}
	}
	return nil
}

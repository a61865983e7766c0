// Package cmd wires the vlist command line: configuration, logging and the
// browse, window and config subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jcikl/jcikl-member-app-sub001/config"
	"github.com/jcikl/jcikl-member-app-sub001/observability"
)

// annotationConsole selects where a command's console log output goes.
// Full-screen commands discard it; everything else logs to stderr.
const (
	annotationConsole = "console"
	consoleDiscard    = "discard"
)

// flagKeys maps command-line flags to config keys. A flag only overrides
// the config when the running command defines it.
var flagKeys = map[string]string{
	"item-size":    "list.item_size",
	"overscan":     "list.overscan_count",
	"height":       "list.height",
	"empty-text":   "list.empty_text",
	"loading-text": "list.loading_text",
	"scrollbar":    "list.scrollbar",
	"count":        "data.count",
	"seed":         "data.seed",
	"theme":        "theme",
	"log-level":    "logger.level",
	"log-file":     "logger.log_file",
}

// env is the state shared by the subcommands of one invocation.
type env struct {
	cfgFile    string
	profile    string
	profileDir string
	v          *viper.Viper
	cfg        *config.Config
}

type envKey struct{}

func envFrom(cmd *cobra.Command) *env {
	e, _ := cmd.Context().Value(envKey{}).(*env)
	return e
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "vlist",
		Short:         "Browse very large member lists without rendering them whole.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.load(cmd); err != nil {
				return err
			}
			observability.Initialize(e.cfg.Logger, consoleWriter(cmd))
			observability.GetLogger().Debug("starting",
				zap.String("command", cmd.Name()),
				zap.String("version", version),
				zap.String("profile_dir", e.profileDir))
			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, e))
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&e.cfgFile, "config", "c", "", "config file (default is <profile dir>/vlist.yaml)")
	pf.StringVar(&e.profile, "profile", "", "named profile for state isolation (~/.vlist/profiles/<name>)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "write JSON logs to this file")

	root.AddCommand(
		newBrowseCmd(),
		newWindowCmd(),
		newConfigCmd(),
		newVersionCmd(version),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(version string) {
	root := NewRootCmd(version)
	err := root.ExecuteContext(context.Background())
	observability.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vlist:", err)
		os.Exit(1)
	}
}

// load resolves the profile directory and reads config file, environment
// and flags, in increasing order of precedence.
func (e *env) load(cmd *cobra.Command) error {
	dir, err := profileDir(e.profile)
	if err != nil {
		return err
	}
	e.profileDir = dir

	e.v = viper.New()
	config.Prepare(e.v, dir, e.cfgFile)
	if err := bindFlags(e.v, cmd.Flags()); err != nil {
		return err
	}
	if err := config.Read(e.v); err != nil {
		return err
	}
	cfg, err := config.Unmarshal(e.v)
	if err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// profileDir returns ~/.vlist, or ~/.vlist/profiles/<name> for a named
// profile. VLIST_HOME overrides the base directory.
func profileDir(profile string) (string, error) {
	base := os.Getenv("VLIST_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		base = filepath.Join(home, ".vlist")
	}
	if profile == "" {
		return base, nil
	}
	if filepath.Base(profile) != profile {
		return "", errors.New("profile name must not contain path separators")
	}
	return filepath.Join(base, "profiles", profile), nil
}

func consoleWriter(cmd *cobra.Command) zapcore.WriteSyncer {
	if cmd.Annotations[annotationConsole] == consoleDiscard {
		return zapcore.AddSync(io.Discard)
	}
	return zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr()))
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ticklist/internal/app"
	"ticklist/internal/config"
	"ticklist/internal/logging"
	"ticklist/internal/storage"
	"ticklist/internal/ui"
)

// Env is everything a command needs after flags and config are resolved.
type Env struct {
	Config     config.Config
	ConfigPath string
	Logger     *log.Logger
	Store      storage.Store

	closeLog func() error
}

// Close releases the store and then the log file. A store failure is
// logged before the log file goes away.
func (e *Env) Close() error {
	var errs []error
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			e.Logger.Error("close store", "err", err)
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	if e.closeLog != nil {
		if err := e.closeLog(); err != nil {
			errs = append(errs, fmt.Errorf("close log: %w", err))
		}
	}
	return errors.Join(errs...)
}

// closeEnv closes env into *errp unless an earlier error is already set.
func closeEnv(env *Env, errp *error) {
	if err := env.Close(); err != nil && *errp == nil {
		*errp = err
	}
}

// runFunc runs the interactive loop; tests replace it.
type runFunc func(ctx context.Context, m ui.Model) error

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ticklist",
		Short:        "A small ordered task list for the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if !isTerminal() {
				return errors.New("ticklist needs an interactive terminal; use `ticklist list` to print tasks")
			}
			env, err := initEnv(cmd, true)
			if err != nil {
				return err
			}
			defer closeEnv(env, &err)
			return runSession(cmd.Context(), env, ui.Run)
		},
	}
	cmd.PersistentFlags().String("config", "", "Path to config.toml (defaults to ~/.config/ticklist/config.toml)")
	cmd.PersistentFlags().String("state", "", "Path to the state file (overrides state_path)")
	cmd.PersistentFlags().String("backend", "", "Storage backend: json or sqlite (overrides backend)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides log_level)")
	cmd.PersistentFlags().String("log-format", "", "Log format: text, logfmt, json (overrides log_format)")

	cmd.AddCommand(newListCmd())
	return cmd
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func initEnv(cmd *cobra.Command, logToFile bool) (*Env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.ResolveConfigPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
	}
	cfg, err := config.LoadOrCreate(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("state"); v != "" {
		cfg.StatePath = v
	}
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Backend = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}

	env := &Env{Config: cfg, ConfigPath: cfgPath, Logger: logging.Discard()}
	if logToFile {
		l, err := logging.OpenFile(cfg.LogFile, logging.Options{
			Level:           cfg.LogLevel,
			Formatter:       cfg.LogFormat,
			ReportTimestamp: true,
		})
		if err != nil {
			return nil, err
		}
		env.Logger = l.Logger
		env.closeLog = l.Close
	}

	store, err := storage.Open(storage.Options{
		Backend:   cfg.Backend,
		StatePath: cfg.StatePath,
		DBPath:    cfg.DBPath,
	})
	if err != nil {
		env.Close()
		return nil, err
	}
	env.Store = store
	return env, nil
}

// runSession loads the list, runs the loop and saves once after the loop
// ends by the quit action. A failed loop returns its error without saving.
func runSession(ctx context.Context, env *Env, run runFunc) error {
	list := storage.LoadOrEmpty(env.Store, env.Logger)
	env.Logger.Info("session started", "backend", env.Config.Backend, "tasks", list.Len())

	a := app.New(list)
	if err := run(ctx, ui.NewModel(a, env.Config, env.Logger)); err != nil {
		env.Logger.Error("ui stopped", "err", err)
		return err
	}
	if err := storage.SaveList(env.Store, a.Tasks()); err != nil {
		env.Logger.Error("save failed", "err", err)
		return err
	}
	env.Logger.Info("saved", "tasks", a.Tasks().Len())
	return nil
}

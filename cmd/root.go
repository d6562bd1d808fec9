// Package cmd command line
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"sitesearch/internal/clipboard"
	"sitesearch/internal/config"
	"sitesearch/internal/eventbus"
	"sitesearch/internal/logging"
	"sitesearch/internal/search"
	"sitesearch/internal/ui"
)

var rootCMD = &cobra.Command{
	Use:   "sitesearch [site]",
	Short: "Search a site from the terminal",
	Long: `sitesearch opens an interactive search page for a site.

Type a query and press enter. Results appear after a short simulated
delay. Tab moves to the result list where links can be copied and
rated.

Example:
  sitesearch docs.example.org

Keyboard shortcuts:
  Enter       Search
  Tab         Move between query and results
  ↑/↓ or j/k  Navigate results
  c           Copy link
  +/-         Rate result
  o           Open results in pager
  ?           Help
  q           Quit`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearchView(cmd, args)
	},
}

// flags shared by every command
var (
	configPath string
	siteFlag   string
	debug      bool
)

func init() {
	bindSharedFlags(rootCMD.PersistentFlags())
	bindViewFlags(rootCMD.Flags())
}

// bindSharedFlags registers the flags every command accepts
func bindSharedFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&configPath, "config", "c", "", "config file path (default: user config dir)")
	fs.StringVarP(&siteFlag, "site", "s", "", "site to search")
	fs.BoolVar(&debug, "debug", false, "log at debug level")
}

// bindViewFlags registers the flags of the interactive view
func bindViewFlags(fs *pflag.FlagSet) {
	fs.Int("delay", config.DefaultSearchDelayMS, "simulated search latency in milliseconds")
	fs.Int("copy-reset", config.DefaultCopyResetMS, "how long a copied link stays marked, in milliseconds")
	fs.String("clipboard", string(clipboard.ModeAuto), "clipboard backend: auto/system/osc52/none")
	fs.String("log-file", config.DefaultLogFile, "log file path, empty to disable logging")
	fs.Bool("no-alt-screen", false, "render inline instead of in the alternate screen")
	fs.Bool("no-sidebar", false, "hide the search information sidebar")
	fs.Bool("save-config", false, "write the effective configuration back to the config file")
}

// Execute execute root command
func Execute() {
	if err := rootCMD.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and layers command line flags on top
func loadConfig(cmd *cobra.Command, args []string, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigServiceAt(configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "load config")
	}

	if err := applyFlags(cmd, cfg, args); err != nil {
		return nil, nil, err
	}
	cfg.Validate()

	return cfg, svc, nil
}

// applyFlags overrides cfg with every flag the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config, args []string) error {
	flags := cmd.Flags()

	if flags.Changed("site") {
		cfg.Site = siteFlag
	} else if len(args) > 0 {
		cfg.Site = args[0]
	}

	if flags.Lookup("delay") == nil {
		return nil
	}

	if flags.Changed("delay") {
		v, _ := flags.GetInt("delay")
		if v < 0 {
			return errors.Errorf("--delay must not be negative, got %d", v)
		}
		cfg.SearchDelayMS = v
	}
	if flags.Changed("copy-reset") {
		v, _ := flags.GetInt("copy-reset")
		if v <= 0 {
			return errors.Errorf("--copy-reset must be positive, got %d", v)
		}
		cfg.CopyResetMS = v
	}
	if flags.Changed("clipboard") {
		v, _ := flags.GetString("clipboard")
		mode, ok := clipboard.ParseMode(v)
		if !ok {
			return errors.Errorf("unknown clipboard mode %q", v)
		}
		cfg.Clipboard = string(mode)
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if v, _ := flags.GetBool("no-alt-screen"); v {
		cfg.UISettings.AltScreen = false
	}
	if v, _ := flags.GetBool("no-sidebar"); v {
		cfg.UISettings.ShowSidebar = false
	}
	return nil
}

// runSearchView wires the services and runs the search page until the user quits
func runSearchView(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	cfg, svc, err := loadConfig(cmd, args, bus)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogFile, debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logEvents(bus, logger)

	if save, _ := cmd.Flags().GetBool("save-config"); save {
		if err := svc.Save(cfg); err != nil {
			return errors.Wrap(err, "save config")
		}
		logger.Info("config saved", zap.String("path", svc.Path()))
	}

	engine := search.NewTemplateEngine(cfg.Site)
	model := ui.NewModel(bus, cfg, engine, clipboard.New(cfg.ClipboardMode()))
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)
	forwardEvents(ctx, bus, p)

	logger.Info("starting search view",
		zap.String("site", cfg.Site),
		zap.Duration("delay", cfg.SearchDelay()),
		zap.String("clipboard", cfg.Clipboard))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run search view")
	}
	return nil
}

var uiEvents = []eventbus.EventType{
	eventbus.EventSearchSubmitted,
	eventbus.EventSearchCompleted,
	eventbus.EventSearchSuperseded,
	eventbus.EventLinkCopied,
	eventbus.EventClipboardFailed,
	eventbus.EventFeedbackGiven,
}

// logEvents writes every domain event to the log
func logEvents(bus eventbus.EventBus, logger *zap.Logger) {
	events := logger.Named("events")
	for _, et := range append(uiEvents, eventbus.EventConfigLoaded, eventbus.EventConfigSaved) {
		bus.Subscribe(et, func(e eventbus.DomainEvent) {
			events.Debug("event", zap.String("type", string(e.Type())), zap.Any("payload", e))
		})
	}
}

// forwardEvents hands bus events to the running program
func forwardEvents(ctx context.Context, bus eventbus.EventBus, p *tea.Program) {
	for _, et := range uiEvents {
		bus.Subscribe(et, func(e eventbus.DomainEvent) {
			if ctx.Err() != nil {
				return
			}
			p.Send(ui.EventMsg{Event: e})
		})
	}
}

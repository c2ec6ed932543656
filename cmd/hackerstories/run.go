package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hackerstories/internal/app"
	"hackerstories/internal/config"
	"hackerstories/internal/eventbus"
	"hackerstories/internal/logging"
	"hackerstories/internal/ui"
	"hackerstories/internal/ui/views"
)

// session is everything a command needs, torn down by close
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	app    *app.App
}

func (s *session) close() {
	if err := s.app.Close(); err != nil {
		s.logger.Warn("shutdown", zap.Error(err))
	}
	_ = s.logger.Sync()
}

// openSession loads the configuration, opens the log file and wires the app
func openSession(opts app.Options) (*session, error) {
	svc := config.NewConfigService()
	if configPath != "" {
		svc = config.NewConfigServiceAt(configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	logger.Info("config loaded", zap.String("path", svc.Path()))

	a, err := app.New(cfg, logger, opts)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, app: a}, nil
}

// runTUI starts the interactive UI
func runTUI(cmd *cobra.Command, args []string) error {
	s, err := openSession(app.Options{})
	if err != nil {
		return err
	}
	defer s.close()

	if queryFlag != "" {
		s.app.SearchService.ChangeQuery(cmd.Context(), queryFlag)
	}

	model := ui.NewModel(s.app.Bus, s.app.Stories, s.app.Query.Get(), s.app.Stories.State(), s.logger)

	var opts []tea.ProgramOption
	if s.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)

	// Forward store transitions and errors to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	s.app.Bus.Subscribe(eventbus.EventStoriesChanged, forward)
	s.app.Bus.Subscribe(eventbus.EventError, forward)

	s.app.Start()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// runSearch runs one headless fetch cycle and prints the stories
func runSearch(cmd *cobra.Command, args []string) error {
	return search(cmd, args, app.Options{})
}

func search(cmd *cobra.Command, args []string, opts app.Options) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	query := strings.Join(args, " ")
	if len(args) == 0 {
		query = s.app.Query.Get()
	}
	if strings.TrimSpace(query) == "" {
		return errors.New("nothing to search for")
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state, err := s.app.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), views.RenderPlain(query, state.Items))
	return nil
}

// runLast prints the remembered query
func runLast(cmd *cobra.Command, args []string) error {
	s, err := openSession(app.Options{})
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Fprintln(cmd.OutOrStdout(), s.app.Query.Get())
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

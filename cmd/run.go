package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amink/durus/internal/app"
	"github.com/amink/durus/internal/history"
	"github.com/amink/durus/internal/i18n"
	"github.com/amink/durus/internal/llm"
	"github.com/amink/durus/internal/logging"
	"github.com/amink/durus/internal/progress"
	"github.com/amink/durus/internal/store"
	"github.com/amink/durus/internal/summarize"
)

// env holds everything a command needs after wiring.
type env struct {
	store    *store.Store
	log      *zap.Logger
	lang     i18n.Language
	progress *progress.Service
	history  *history.Service
}

// openEnv opens the store and builds the local services. The caller must
// call close when done.
func openEnv(cmd *cobra.Command) (*env, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	log := logging.NewOrNop(logging.DefaultLogPath(dbPath))

	e := &env{
		store:    st,
		log:      log,
		lang:     resolveLanguage(cmd.Context(), cmd, st),
		progress: progress.NewService(st.Profiles(), st.Stats()),
		history:  history.NewService(st.History()),
	}
	closeFn := func() {
		_ = log.Sync()
		_ = st.Close()
	}
	return e, closeFn, nil
}

// provider builds the AI gateway provider for this environment.
func (e *env) provider(ctx context.Context) (llm.Provider, error) {
	return llm.NewProviderFromEnv(ctx, e.store.Events(), e.log)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	e, closeEnv, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer closeEnv()

	deps := app.Deps{
		Progress: e.progress,
		History:  e.history,
		Lang:     e.lang,
	}

	provider, err := e.provider(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		deps.Summarize = summarize.NewService(provider, e.progress, e.history, e.log)
	}

	return app.Run(deps)
}

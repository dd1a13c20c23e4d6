package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prepnova/prepnova/internal/app"
	"github.com/prepnova/prepnova/internal/gateway"
	"github.com/prepnova/prepnova/internal/logging"
	"github.com/prepnova/prepnova/internal/session"
	"github.com/prepnova/prepnova/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A failed store open degrades to in-memory slots: progress then lives
// for the process only, which beats refusing to start.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	debug, _ := cmd.Flags().GetBool("debug")
	log := logging.New(debug)
	defer func() { _ = log.Sync() }()

	var repo store.SlotRepo
	var st *store.Store
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err = store.Open(dbPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Local storage unavailable, progress will not persist:", err)
		log.Warn("store open failed, using in-memory slots", zap.Error(err))
		repo = store.NewMemorySlotRepo()
	} else {
		defer st.Close()
		repo = st.SlotRepo()
	}

	adapter := store.NewAdapter(repo, log)
	sess := session.New(adapter, log)
	sess.Initialize(ctx)

	cfg, err := gateway.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("gateway config: %w", err)
	}
	gw := gateway.NewClient(cfg, log)

	return app.Run(app.Options{
		Session: sess,
		Gateway: gw,
		Logger:  log,
	})
}

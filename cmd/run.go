package cmd

import (
	"fmt"

	"github.com/abhisek/mathgarden/internal/app"
	"github.com/abhisek/mathgarden/internal/ledger"
	"github.com/abhisek/mathgarden/internal/problemgen"
	"github.com/abhisek/mathgarden/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc, err := ledger.Load(ctx, st.LedgerRepo(), st.EventRepo())
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	return app.Run(app.Options{
		Service:   svc,
		Generator: problemgen.NewSeeded(),
		Events:    st.EventRepo(),
	})
}

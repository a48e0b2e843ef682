package cli

import (
	"fmt"
	"os"
	"time"

	"taskdeck-cli/internal/format"
	"taskdeck-cli/internal/store"
	"taskdeck-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Empty      bool   // start with no seed data
	Today      string // pin the clock to a YYYY-MM-DD date
	ASCII      bool   // ASCII glyphs instead of Unicode
	UserName   string // local profile; feeds invitations and the chat
	UserEmail  string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "Project management board (in-memory) TUI",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&app.Empty, "empty", false, "Start with an empty board instead of the demo dataset")
	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("TASKDECK_TODAY", ""), "Pin the clock to a date (YYYY-MM-DD; for demos and tests)")
	cmd.PersistentFlags().BoolVar(&app.ASCII, "ascii", false, "Use ASCII glyphs (for terminals without good Unicode fonts)")
	cmd.PersistentFlags().StringVar(&app.UserName, "user-name", envOr("TASKDECK_USER_NAME", "You"), "Display name of the local profile")
	cmd.PersistentFlags().StringVar(&app.UserEmail, "user-email", envOr("TASKDECK_USER_EMAIL", "you@example.com"), "Email of the local profile (invitations to it appear as notifications)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newSnapshotCmd(app))

	return cmd
}

// newDB builds the session store: seeded demo data unless --empty, with the
// clock pinned when --today is set.
func newDB(app *App) (*store.DB, error) {
	db := store.New()
	if app.Today != "" {
		pinned, err := time.Parse("2006-01-02", app.Today)
		if err != nil {
			return nil, fmt.Errorf("invalid --today %q: %w", app.Today, err)
		}
		db.Now = func() time.Time { return pinned }
	}
	if !app.Empty {
		db.Seed()
	}
	return db, nil
}

func runTUI(app *App) error {
	db, err := newDB(app)
	if err != nil {
		return err
	}
	return tui.Run(db, tui.Options{
		UserName:  app.UserName,
		UserEmail: app.UserEmail,
		ASCII:     app.ASCII,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

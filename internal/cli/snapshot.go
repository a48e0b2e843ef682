package cli

import (
	"github.com/spf13/cobra"
)

// snapshot prints the session's starting dataset as JSON. Useful for piping
// the demo data into jq or fixtures; the app itself never persists anything.
func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print the session's starting dataset as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := newDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"projects":    db.Projects,
				"tasks":       db.Tasks,
				"teams":       db.Teams,
				"invitations": db.Invitations,
				"events":      db.Events,
			}})
		},
	}
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ticklist/internal/storage"
	"ticklist/internal/task"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print tasks in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			env, err := initEnv(cmd, false)
			if err != nil {
				return err
			}
			defer closeEnv(env, &err)

			list := storage.LoadOrEmpty(env.Store, env.Logger)
			glyphs := task.ParseGlyphSet(env.Config.Glyphs)
			out := cmd.OutOrStdout()
			if list.Len() == 0 {
				fmt.Fprintln(out, "No tasks.")
				return nil
			}
			for _, t := range list.Items() {
				fmt.Fprintln(out, t.Label(glyphs))
			}
			return nil
		},
	}
}

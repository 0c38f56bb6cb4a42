package main

import (
	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/rec"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func dictsCmd(opts *options) *cobra.Command {
	var drop string

	cmd := &cobra.Command{
		Use:   "dicts",
		Short: "List word lists held in the dictionary store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer rec.Error(&err)

			ctx := cmd.Context()
			if opts.config.Cache.File == "" {
				return fmt.Errorf("dicts: no cache file configured")
			}

			store := db.Open(opts.config.Cache)
			defer ctxlog.Close(ctx, "db", store.Closer())

			if drop != "" {
				ctxlog.Get(ctx).Info("dropping dictionary", "path", drop)
				return store.Delete(drop)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tWORDS\tMODIFIED\tLOADED")
			for path, entry := range store.All() {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", path, len(entry.Words),
					entry.ModTime.Format(time.RFC3339), entry.LoadedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&drop, "drop", "", "remove the word list stored for this path")
	return cmd
}

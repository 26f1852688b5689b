package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse the server's match history",
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryGetCmd())
	cmd.AddCommand(newHistoryDeleteCmd())

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent matches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := client.ListMatches(limit)
			if err != nil {
				return err
			}

			out, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return out.RenderMatches(matches)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of matches to show")

	return cmd
}

func newHistoryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one recorded match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := client.GetMatch(args[0])
			if err != nil {
				return err
			}

			out, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return out.RenderMatch(summary)
		},
	}
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteMatch(args[0]); err != nil {
				return err
			}

			out, err := newRenderer(cmd)
			if err != nil {
				return err
			}
			return out.RenderMessage(fmt.Sprintf("Deleted match %s", args[0]))
		},
	}
}

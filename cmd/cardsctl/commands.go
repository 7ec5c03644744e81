package main

import (
	"fmt"
	"strconv"

	"cardbot/internal/importer"
	"cardbot/internal/service"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if e.migrated {
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
			}
			return nil
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from an xlsx or csv file",
		Long:  "Import word pairs from column A (word) and column B (translation). Words already stored are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := importer.ReadFile(args[0])
			if err != nil {
				return err
			}

			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			n, err := service.NewWordService(e.store, e.logger).Seed(cmd.Context(), pairs)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d words\n", n, len(pairs))
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show vocabulary statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			st, err := service.NewStatsService(e.store, e.logger).Snapshot(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Users:       %d\n", st.Users)
			fmt.Fprintf(out, "Words:       %d\n", st.Words)
			fmt.Fprintf(out, "Known links: %d\n", st.KnownLinks)
			return nil
		},
	}
}

func newDeleteWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-word <id>",
		Short: "Delete a word for every user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid word id %q: %w", args[0], err)
			}

			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			deleted, err := service.NewWordService(e.store, e.logger).DeleteWord(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("word %d not found", id)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Word %d deleted\n", id)
			return nil
		},
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/typemaster/internal/config"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/store"
	"github.com/verte-zerg/typemaster/internal/vocab"
)

var vocabMode string

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Manage imported vocabulary",
	}

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import one entry per line for a mode",
		Args:  cobra.ExactArgs(1),
		RunE:  runVocabImportCmd,
	}
	importCmd.Flags().StringVar(&vocabMode, "mode", "", "target mode: words, programming or quotes")
	if err := importCmd.MarkFlagRequired("mode"); err != nil {
		logErrf("failed to mark --mode required: %v\n", err)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show imported entry counts per mode",
		Args:  cobra.NoArgs,
		RunE:  runVocabListCmd,
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove imported entries for a mode",
		Args:  cobra.NoArgs,
		RunE:  runVocabClearCmd,
	}
	clearCmd.Flags().StringVar(&vocabMode, "mode", "", "mode to clear")
	if err := clearCmd.MarkFlagRequired("mode"); err != nil {
		logErrf("failed to mark --mode required: %v\n", err)
	}

	cmd.AddCommand(importCmd, listCmd, clearCmd)
	return cmd
}

func runVocabImportCmd(cmd *cobra.Command, args []string) error {
	mode, err := model.ParseMode(vocabMode)
	if err != nil {
		return fmt.Errorf("--mode: %w", err)
	}
	entries, err := vocab.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	kept, dropped := vocab.FilterForMode(mode).Apply(entries)
	if dropped > 0 {
		logErrf("Skipped %d entries not suitable for %s mode\n", dropped, mode)
	}
	if len(kept) == 0 {
		return fmt.Errorf("no usable entries in %s", args[0])
	}

	return withStore(cmd.Context(), func(ctx context.Context, st *store.Store) error {
		added, err := st.AddEntries(ctx, mode, kept)
		if err != nil {
			return fmt.Errorf("failed to import entries: %w", err)
		}
		return writeLine(cmd.OutOrStdout(), "Imported %d new %s entries (%d already present)\n", added, mode, len(kept)-added)
	})
}

func runVocabListCmd(cmd *cobra.Command, _ []string) error {
	return withStore(cmd.Context(), func(ctx context.Context, st *store.Store) error {
		counts, err := st.CountByMode(ctx)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		for _, c := range counts {
			if err := writeLine(cmd.OutOrStdout(), "%-12s %d\n", c.Mode, c.Count); err != nil {
				return err
			}
		}
		return nil
	})
}

func runVocabClearCmd(cmd *cobra.Command, _ []string) error {
	mode, err := model.ParseMode(vocabMode)
	if err != nil {
		return fmt.Errorf("--mode: %w", err)
	}
	return withStore(cmd.Context(), func(ctx context.Context, st *store.Store) error {
		removed, err := st.ClearMode(ctx, mode)
		if err != nil {
			return fmt.Errorf("failed to clear entries: %w", err)
		}
		if removed == 0 {
			logErrln("Nothing to clear; the built-in vocabulary is already in use for", string(mode))
		}
		return writeLine(cmd.OutOrStdout(), "Removed %d %s entries\n", removed, mode)
	})
}

func withStore(ctx context.Context, fn func(context.Context, *store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(ctx, st)
}

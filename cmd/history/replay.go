package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanmanishd/staticvector/internal/history"
)

const defaultSize = 5

func newReplayCmd(verbose *bool) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "replay [kind...]",
		Short: "Insert events in order and print the ones the history keeps",
		Long: `Replay inserts each event kind (start, load, run, pause, resume,
stop, exit) into a history of --size slots. Once the history is full the
oldest event is evicted for every new one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return errors.Wrap(err, "init logger")
			}
			defer func() { _ = logger.Sync() }()

			return runReplay(cmd, logger, size, args)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", defaultSize, "number of events to keep")
	return cmd
}

func runReplay(cmd *cobra.Command, logger *zap.Logger, size int, args []string) error {
	if size <= 0 {
		return errors.Errorf("invalid --size %d: must be greater than 0", size)
	}

	kinds := make([]history.Kind, 0, len(args))
	for _, arg := range args {
		k, err := history.ParseKind(arg)
		if err != nil {
			return errors.Wrap(err, "parse event")
		}
		kinds = append(kinds, k)
	}

	h := history.New(size)
	for _, k := range kinds {
		evicted := h.Len() == h.Cap()
		e := h.Record(k)
		logger.Debug("recorded event",
			zap.String("kind", k.String()),
			zap.String("id", e.ID.String()),
			zap.Bool("evicted", evicted),
			zap.Int("len", h.Len()),
		)
	}

	logger.Info("replay finished",
		zap.Int("inserted", len(kinds)),
		zap.Int("kept", h.Len()),
		zap.Int("size", h.Cap()),
	)

	out := cmd.OutOrStdout()
	for _, e := range h.Events() {
		fmt.Fprintln(out, e.Kind)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

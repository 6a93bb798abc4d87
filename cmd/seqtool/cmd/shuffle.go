package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onflow/flow-seq/sequence"
)

func newShuffleCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle [elements...]",
		Short: "Print the elements in a uniformly random order",
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := readElements(args, opts.Input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			s, err := newSession(opts)
			if err != nil {
				return err
			}
			defer s.report()

			shuffled, err := sequence.Shuffled(elements, s.source)
			if err != nil {
				return fmt.Errorf("could not shuffle elements: %w", err)
			}
			log.Debug().Int("count", len(shuffled)).Uint64("draws", s.source.Draws()).Msg("elements shuffled")

			return writeElements(cmd.OutOrStdout(), shuffled)
		},
	}
}

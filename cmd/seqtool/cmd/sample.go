package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onflow/flow-seq/sequence"
)

const flagCount = "count"

func newSampleCmd(opts *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "sample [elements...]",
		Short: "Print randomly picked elements",
		Long: "Print one randomly picked element, or --count elements picked without replacement. " +
			"No more elements than the input holds are printed, and nothing is printed for an empty input.",
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

			var samples []string
			if cmd.Flags().Changed(flagCount) {
				samples, err = sequence.SampleN(elements, count, s.source)
				if err != nil {
					return fmt.Errorf("could not sample elements: %w", err)
				}
			} else {
				sample, ok, err := sequence.Sample(elements, s.source)
				if err != nil {
					return fmt.Errorf("could not sample element: %w", err)
				}
				if ok {
					samples = []string{sample}
				}
			}
			log.Debug().Int("count", len(samples)).Uint64("draws", s.source.Draws()).Msg("elements sampled")

			return writeElements(cmd.OutOrStdout(), samples)
		},
	}
	cmd.Flags().IntVarP(&count, flagCount, "n", 0, "number of elements to sample, a single element is sampled if not set")

	return cmd
}

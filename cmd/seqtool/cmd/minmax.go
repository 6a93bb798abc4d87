package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/onflow/flow-seq/sequence"
)

const (
	orderNatural = "natural"
	orderLength  = "length"
	orderNumeric = "numeric"
)

func newMinMaxCmd(opts *options) *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "minmax [elements...]",
		Short: "Print the minimum and the maximum elements",
		Long: "Print the minimum then the maximum element, compared lexicographically (natural), " +
			"by length or as numbers. Among equivalent elements the first minimum and the last maximum are printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Var(order, "oneof="+orderNatural+" "+orderLength+" "+orderNumeric); err != nil {
				return fmt.Errorf("invalid order %q: %w", order, err)
			}
			elements, err := readElements(args, opts.Input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			min, max, err := minMax(elements, order)
			if err != nil {
				return err
			}
			return writeElements(cmd.OutOrStdout(), []string{min, max})
		},
	}
	cmd.Flags().StringVar(&order, "order", orderNatural,
		fmt.Sprintf("comparison order of the elements: %s, %s or %s", orderNatural, orderLength, orderNumeric))

	return cmd
}

func minMax(elements []string, order string) (string, string, error) {
	switch order {
	case orderNatural:
		return sequence.MinMax(elements)
	case orderLength:
		return sequence.MinMaxFunc(elements, func(a, b string) int {
			return len(a) - len(b)
		})
	case orderNumeric:
		numbers := make([]float64, len(elements))
		for i, e := range elements {
			n, err := strconv.ParseFloat(strings.TrimSpace(e), 64)
			if err != nil {
				return "", "", fmt.Errorf("element %q is not a number: %w", e, err)
			}
			numbers[i] = n
		}
		minIdx, maxIdx, err := sequence.MinMaxIndexFunc(len(numbers), func(i, j int) int {
			switch {
			case numbers[i] < numbers[j]:
				return -1
			case numbers[i] > numbers[j]:
				return 1
			}
			return 0
		})
		if err != nil {
			return "", "", err
		}
		return elements[minIdx], elements[maxIdx], nil
	}
	return "", "", fmt.Errorf("unknown order %q, expected %s, %s or %s", order, orderNatural, orderLength, orderNumeric)
}

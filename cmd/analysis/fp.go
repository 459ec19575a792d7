package main

import (
	"fmt"

	"github.com/jcalabro/cloom"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagItems uint64
	flagRates []float64
)

// member is the common surface of cloom.Filter and cloom.CountingFilter.
type member interface {
	Add(data []byte)
	Contains(data []byte) bool
	Cap() uint64
	K() uint64
	EstimatedFillRatio() float64
	EstimatedFalsePositiveRate() float64
}

func digesterOption(name string) (cloom.Option, error) {
	switch name {
	case "murmur3":
		return cloom.WithDigester(cloom.Murmur3{}), nil
	case "xxh3":
		return cloom.WithDigester(cloom.XXH3{}), nil
	}
	return nil, fmt.Errorf("unknown digester %q", name)
}

// observeFalsePositives fills f with n keys and probes it with n others.
func observeFalsePositives(f member, n uint64) (falseNegatives, falsePositives uint64) {
	for i := range n {
		f.Add(fmt.Appendf(nil, "item-%d", i))
	}
	for i := range n {
		if !f.Contains(fmt.Appendf(nil, "item-%d", i)) {
			falseNegatives++
		}
		if f.Contains(fmt.Appendf(nil, "absent-%d", i)) {
			falsePositives++
		}
	}
	return falseNegatives, falsePositives
}

func runFP(items uint64, rates []float64, opt cloom.Option) error {
	for _, rate := range rates {
		standard, err := cloom.New(items, rate, opt)
		if err != nil {
			return fmt.Errorf("standard filter at rate %v: %w", rate, err)
		}
		counting, err := cloom.NewCounting(items, rate, opt)
		if err != nil {
			return fmt.Errorf("counting filter at rate %v: %w", rate, err)
		}

		for name, f := range map[string]member{"standard": standard, "counting": counting} {
			fn, fp := observeFalsePositives(f, items)
			log.Info().
				Str("filter", name).
				Uint64("items", items).
				Uint64("bits", f.Cap()).
				Uint64("k", f.K()).
				Float64("target", rate).
				Float64("estimated", f.EstimatedFalsePositiveRate()).
				Float64("observed", float64(fp)/float64(items)).
				Float64("fill", f.EstimatedFillRatio()).
				Uint64("false_negatives", fn).
				Msg("false positive analysis")
			if fn > 0 {
				log.Warn().Str("filter", name).Uint64("false_negatives", fn).Msg("filter lost keys")
			}
		}
	}
	return nil
}

// fpCmd represents the fp command
var fpCmd = &cobra.Command{
	Use:   "fp",
	Short: "Compare observed false positive rates with their targets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := digesterOption(flagDigester)
		if err != nil {
			return err
		}
		return runFP(flagItems, flagRates, opt)
	},
}

func init() {
	fpCmd.Flags().Uint64VarP(&flagItems, "items", "n", 100_000, "number of items to insert")
	fpCmd.Flags().Float64SliceVarP(&flagRates, "rate", "p", []float64{0.1, 0.01, 0.001}, "target false positive rates")
	rootCmd.AddCommand(fpCmd)
}

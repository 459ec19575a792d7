package main

import (
	"fmt"

	"github.com/jcalabro/cloom"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagChurnItems  uint64
	flagChurnRate   float64
	flagChurnRounds int
	flagCounterBits uint
)

// runChurn keeps a window of live keys in a counting filter, replacing the
// oldest half every round, and counts live keys the filter has lost.
func runChurn(items uint64, rate float64, rounds int, opts ...cloom.Option) error {
	f, err := cloom.NewCounting(items, rate, opts...)
	if err != nil {
		return err
	}

	key := func(i uint64) []byte { return fmt.Appendf(nil, "churn-%d", i) }

	var lo, hi uint64
	for ; hi < items; hi++ {
		f.Add(key(hi))
	}

	for round := range rounds {
		step := items / 2
		for i := lo; i < lo+step; i++ {
			f.Remove(key(i))
		}
		lo += step
		for i := hi; i < hi+step; i++ {
			f.Add(key(i))
		}
		hi += step

		var lost uint64
		for i := lo; i < hi; i++ {
			if !f.Contains(key(i)) {
				lost++
			}
		}
		log.Debug().Int("round", round).Uint64("live_from", lo).Uint64("live_to", hi).Msg("churn round")
		log.Info().
			Int("round", round).
			Uint64("live", f.Count()).
			Float64("fill", f.EstimatedFillRatio()).
			Uint64("false_negatives", lost).
			Msg("churn analysis")
	}
	return nil
}

// churnCmd represents the churn command
var churnCmd = &cobra.Command{
	Use:   "churn",
	Short: "Measure false negatives of a counting filter under add/remove churn",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opt, err := digesterOption(flagDigester)
		if err != nil {
			return err
		}
		return runChurn(flagChurnItems, flagChurnRate, flagChurnRounds, opt, cloom.WithCounterBits(flagCounterBits))
	},
}

func init() {
	churnCmd.Flags().Uint64VarP(&flagChurnItems, "items", "n", 100_000, "number of live items")
	churnCmd.Flags().Float64VarP(&flagChurnRate, "rate", "p", 0.01, "target false positive rate")
	churnCmd.Flags().IntVar(&flagChurnRounds, "rounds", 10, "number of churn rounds")
	churnCmd.Flags().UintVar(&flagCounterBits, "counter-bits", cloom.DefaultCounterBits, "bits per counter")
	rootCmd.AddCommand(churnCmd)
}

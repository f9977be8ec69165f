package main

import (
	"fmt"
	"math/big"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/crypto/generators"
	"github.com/smallyu/go-ecarith/internal/format"
)

func (a *app) generatorsCmd() *cobra.Command {
	var (
		workers int
		count   bool
	)
	cmd := &cobra.Command{
		Use:   "generators <p>",
		Short: "List the generators of the multiplicative group of GF(p).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseInt(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			gens, err := generators.FindGenerators(cmd.Context(), p,
				generators.WithLogger(a.log),
				generators.WithWorkers(workers),
			)
			if err != nil {
				return err
			}
			a.log.Info("generator search done",
				zap.Stringer("p", p),
				zap.Int("generators", len(gens)),
				zap.Duration("elapsed", time.Since(start)),
			)

			if count {
				fmt.Fprintln(cmd.OutOrStdout(), len(gens))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatInts(gens))
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.GOMAXPROCS(0), "number of goroutines testing candidates")
	cmd.Flags().BoolVar(&count, "count", false, "only print how many generators there are")
	return cmd
}

func (a *app) hexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <n>...",
		Short: "Print integers in hexadecimal.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]*big.Int, len(args))
			for i, s := range args {
				n, err := parseInt(s)
				if err != nil {
					return err
				}
				values[i] = n
			}
			fmt.Fprintln(cmd.OutOrStdout(), "["+strings.Join(format.HexArr(values), ", ")+"]")
			return nil
		},
	}
}

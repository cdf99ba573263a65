package main

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArhanChaudhary/qter/internal/util"
	"github.com/ArhanChaudhary/qter/pkg/multiply"
)

// pairCost records the instrumentation counters of one operand pair.
type pairCost struct {
	a, b     int
	ops      uint64
	branches uint64
}

func sweepCmd() *cobra.Command {
	var (
		seed uint64
		top  int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run every residue pair, verify the products, and report the costliest ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := util.NewLogger(flagVerbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			mult, err := multiply.New(cfg)
			if err != nil {
				return err
			}
			n := mult.Modulus()

			logger.Info("sweeping all residue pairs",
				zap.Int("modulus", n), zap.Uint64("seed", seed))

			bar := pb.StartNew(n * n)
			costs := make([]pairCost, 0, n*n)
			var totalOps, totalBranches uint64
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					res, err := mult.MultiplyWithScratch(a, b, scratchSeed(seed, a, b, n))
					if err != nil {
						return err
					}
					if res.Product != a*b%n {
						return errors.Errorf("verification failed: %d*%d gave %d, want %d",
							a, b, res.Product, a*b%n)
					}
					costs = append(costs, pairCost{a: a, b: b, ops: res.Ops, branches: res.Branches})
					totalOps += res.Ops
					totalBranches += res.Branches
					bar.Increment()
				}
			}
			bar.Finish()

			sort.Slice(costs, func(i, j int) bool {
				if costs[i].ops != costs[j].ops {
					return costs[i].ops > costs[j].ops
				}
				if costs[i].branches != costs[j].branches {
					return costs[i].branches > costs[j].branches
				}
				return costs[i].a*n+costs[i].b < costs[j].a*n+costs[j].b
			})

			fmt.Printf("%8s %8s %12s %12s\n", "a", "b", "ops", "branches")
			for i := 0; i < top && i < len(costs); i++ {
				pc := costs[i]
				fmt.Printf("%8d %8d %12d %12d\n", pc.a, pc.b, pc.ops, pc.branches)
			}
			logger.Info("sweep complete",
				zap.Int("pairs", len(costs)),
				zap.Uint64("totalOps", totalOps),
				zap.Uint64("totalBranches", totalBranches),
				zap.Float64("avgOps", float64(totalOps)/float64(len(costs))))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the scratch register hash")
	cmd.Flags().IntVar(&top, "top", 20, "number of costliest pairs to print")
	return cmd
}

// scratchSeed derives a deterministic scratch value for a pair, standing in
// for the random seeding the original harness used.
func scratchSeed(seed uint64, a, b, n int) int {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(a))
	binary.LittleEndian.PutUint64(buf[16:], uint64(b))
	return int(xxhash.Sum64(buf[:]) % uint64(n))
}

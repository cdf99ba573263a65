package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ArhanChaudhary/qter/internal/util"
	"github.com/ArhanChaudhary/qter/pkg/multiply"
)

func mulCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two residues and print the product and counters",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := util.NewLogger(flagVerbose || trace)
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "bad multiplicand %q", args[0])
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "bad multiplier %q", args[1])
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if trace {
				cfg.Trace = func(stage string, a, b, c int) {
					logger.Debug("stage",
						zap.String("stage", stage),
						zap.Int("a", a), zap.Int("b", b), zap.Int("c", c))
				}
			}
			mult, err := multiply.New(cfg)
			if err != nil {
				return err
			}
			res, err := mult.Multiply(a, b)
			if err != nil {
				return err
			}
			fmt.Printf("%d * %d = %d (mod %d)\n", a, b, res.Product, mult.Modulus())
			fmt.Printf("ops=%d branches=%d\n", res.Ops, res.Branches)
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log every stage transition")
	return cmd
}

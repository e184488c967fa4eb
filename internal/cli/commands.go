package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/nucleon/calc"
	"github.com/katalvlaran/nucleon/internal/logging"
	"github.com/spf13/cobra"
)

func newBindingCmd(a *app) *cobra.Command {
	var terms bool
	cmd := &cobra.Command{
		Use:   "binding A Z",
		Short: "Binding energy B(A, Z) from the semi-empirical mass formula",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "A", "Z")
			if err != nil {
				return err
			}

			return a.run(cmd, calc.Request{Op: calc.OpBinding, A: v[0], Z: v[1], Terms: terms})
		},
	}
	cmd.Flags().BoolVar(&terms, "terms", false, "also print the contribution of every term")

	return cmd
}

func newFissionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fission MASS",
		Short: "Symmetric fission: fragment mass and energy released",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "MASS")
			if err != nil {
				return err
			}

			return a.run(cmd, calc.Request{Op: calc.OpFission, Mass: v[0]})
		},
	}
}

func newFusionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fusion M1 M2",
		Short: "Fusion of two nuclei: fused mass and energy released",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "M1", "M2")
			if err != nil {
				return err
			}

			return a.run(cmd, calc.Request{Op: calc.OpFusion, Mass1: v[0], Mass2: v[1]})
		},
	}
}

func newDecayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decay INITIAL HALFLIFE ELAPSED",
		Short: "Quantity remaining after exponential decay",
		Long: `Quantity remaining after ELAPSED time: INITIAL · 0.5^(ELAPSED/HALFLIFE).
HALFLIFE and ELAPSED must use the same time unit; a negative ELAPSED
extrapolates backwards.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "INITIAL", "HALFLIFE", "ELAPSED")
			if err != nil {
				return err
			}

			return a.run(cmd, calc.Request{Op: calc.OpDecay, Initial: v[0], HalfLife: v[1], Elapsed: v[2]})
		},
	}
}

func newBatchCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a YAML or JSON list of requests (FILE may be - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f := calc.Format(format)
			if format == "" {
				f = calc.FormatFromPath(path)
			}

			in := cmd.InOrStdin()
			if path != "-" {
				file, err := os.Open(path)
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			reqs, err := calc.DecodeRequests(in, f)
			if err != nil {
				return err
			}
			logging.Infof("batch: %d requests from %s", len(reqs), path)

			results, err := a.calc.EvaluateAll(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Output, results, true)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format: yaml or json (default: from file extension)")

	return cmd
}

// run evaluates a single request and renders it.
func (a *app) run(cmd *cobra.Command, req calc.Request) error {
	res, err := a.calc.Evaluate(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("%s: %w", req.Op, err)
	}
	logging.Debugf("%s: %+v", req.Op, req)

	return render(cmd.OutOrStdout(), a.cfg.Output, []calc.Result{res}, false)
}

// parseArgs converts positional arguments to float64, naming the argument
// in the error.
func parseArgs(args []string, names ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], s, err)
		}
		out[i] = v
	}

	return out, nil
}

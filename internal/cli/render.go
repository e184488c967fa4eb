package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/nucleon/calc"
	"github.com/katalvlaran/nucleon/internal/config"
	"gopkg.in/yaml.v3"
)

// render writes results in the configured format. Single-request commands
// print one object; batch prints a list.
func render(w io.Writer, format string, results []calc.Result, batch bool) error {
	var v any = results
	if !batch && len(results) == 1 {
		v = results[0]
	}

	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return renderText(w, results, batch)
	}
}

func renderText(w io.Writer, results []calc.Result, batch bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range results {
		if batch {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			if r.Name != "" {
				fmt.Fprintf(tw, "[%d] %s (%s)\n", r.Index, r.Name, r.Op)
			} else {
				fmt.Fprintf(tw, "[%d] %s\n", r.Index, r.Op)
			}
		}

		switch r.Op {
		case calc.OpBinding:
			row(tw, "binding energy", r.Energy, "MeV")
			if t := r.Terms; t != nil {
				row(tw, "  volume", &t.Volume, "MeV")
				row(tw, "  surface", &t.Surface, "MeV")
				row(tw, "  coulomb", &t.Coulomb, "MeV")
				row(tw, "  asymmetry", &t.Asymmetry, "MeV")
				row(tw, "  pairing", &t.Pairing, "MeV")
			}
		case calc.OpFission:
			row(tw, "fragment mass", r.Mass, "")
			row(tw, "energy released", r.Energy, "MeV")
		case calc.OpFusion:
			row(tw, "fused mass", r.Mass, "")
			row(tw, "energy released", r.Energy, "MeV")
		case calc.OpDecay:
			row(tw, "remaining", r.Remaining, "")
		}
	}

	return tw.Flush()
}

func row(w io.Writer, label string, v *float64, unit string) {
	if v == nil {
		return
	}
	s := strconv.FormatFloat(*v, 'g', -1, 64)
	if unit != "" {
		s += " " + unit
	}
	fmt.Fprintf(w, "%s:\t%s\n", label, s)
}

// Package cli provides the nucleon command tree.
package cli

import (
	"fmt"

	"github.com/katalvlaran/nucleon/calc"
	"github.com/katalvlaran/nucleon/internal/config"
	"github.com/katalvlaran/nucleon/internal/logging"
	"github.com/spf13/cobra"
)

// app carries state resolved once in PersistentPreRunE and shared by the
// subcommands.
type app struct {
	cfgFile string
	envFile string
	cfg     config.Config
	calc    *calc.Calculator
}

// NewRootCmd builds a fresh command tree. Tests create one per case.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "nucleon",
		Short: "nucleon evaluates textbook nuclear-physics formulas.",
		Long: `nucleon computes binding energies with the semi-empirical mass
formula, idealized fission and fusion energy release, and exponential
radioactive decay. Energies are in MeV with the default coefficients.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: nucleon.yaml in the user config dir, /etc/nucleon or .)")
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading NUCLEON_* variables")
	pf.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newBindingCmd(a),
		newFissionCmd(a),
		newFusionCmd(a),
		newDecayCmd(a),
		newBatchCmd(a),
		newVersionCmd(version),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(a.envFile); err != nil {
		return fmt.Errorf("load %s: %w", a.envFile, err)
	}
	cfg, err := config.Load(cmd, a.cfgFile)
	if err != nil {
		return err
	}
	if err := logging.Configure(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}
	c, err := calc.New(cfg.Coefficients)
	if err != nil {
		return err
	}
	a.cfg, a.calc = cfg, c
	logging.Debugf("config: output=%s coefficients=%+v", cfg.Output, cfg.Coefficients)

	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nucleon version",
		Args:  cobra.NoArgs,
		// skip config loading
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nucleon %s\n", version)

			return err
		},
	}
}

package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/internal/format"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// envPrefix is prepended to configuration keys looked up in the
// environment: curve.prime is read from ECARITH_CURVE_PRIME.
const envPrefix = "ECARITH"

// app holds what every subcommand shares.
type app struct {
	v   *viper.Viper
	log *zap.Logger

	configFile string
	verbose    bool
	hex        bool
	noChecks   bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "ecarith",
		Short:        "Affine arithmetic on Montgomery, twisted Edwards and short Weierstrass curves.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Syncing stderr fails on some platforms; nothing to do about it.
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML, TOML or JSON file with a curve section")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level in a human readable format")
	flags.BoolVar(&a.hex, "hex", false, "print integers in hexadecimal")
	flags.BoolVar(&a.noChecks, "no-checks", false, "do not verify that computed sums lie on the curve")

	flags.String("preset", "", fmt.Sprintf("named curve, one of %s", strings.Join(curves.PresetNames(), ", ")))
	flags.String("model", "", "curve model: montgomery, twisted-edwards or short-weierstrass")
	flags.String("prime", "", "field modulus")
	flags.String("a", "", "first curve coefficient (A for Montgomery, a otherwise)")
	flags.String("b", "", "second curve coefficient (B for Montgomery, d for twisted Edwards, b for short Weierstrass)")
	if err := bindCurveFlags(a.v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.presetsCmd(),
		a.checkCmd(),
		a.addCmd(),
		a.negCmd(),
		a.mulCmd(),
		a.randomCmd(),
		a.convertCmd(),
		a.generatorsCmd(),
		a.hexCmd(),
	)
	return root
}

func (a *app) init() error {
	var err error
	if a.verbose {
		a.log, err = zap.NewDevelopment()
	} else {
		a.log, err = zap.NewProduction()
	}
	if err != nil {
		return errors.Wrap(err, "building logger")
	}

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading %s", a.configFile)
		}
		a.log.Debug("loaded configuration", zap.String("file", a.v.ConfigFileUsed()))
	}
	return nil
}

// curve builds the curve selected by flags, environment and config file.
func (a *app) curve() (curves.Curve, error) {
	params, err := ecarith.LoadParameters(a.v)
	if err != nil {
		return nil, err
	}
	var opts []curves.Option
	if a.noChecks {
		opts = append(opts, curves.WithoutInvariantChecks())
	}
	c, err := curves.FromParameters(params, opts...)
	if err != nil {
		return nil, err
	}
	a.log.Debug("selected curve", zap.String("name", c.Name()), zap.String("model", string(c.Model())), zap.Stringer("field", c.Field()))
	return c, nil
}

func (a *app) point(c curves.Curve, xs, ys string) (curves.Point, error) {
	x, err := parseInt(xs)
	if err != nil {
		return curves.Point{}, err
	}
	y, err := parseInt(ys)
	if err != nil {
		return curves.Point{}, err
	}
	return c.NewPoint(x, y)
}

func (a *app) formatInt(n *big.Int) string {
	if a.hex {
		return format.Hex(n)
	}
	return n.String()
}

func (a *app) formatInts(ns []*big.Int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = a.formatInt(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *app) formatPoint(p curves.Point) string {
	if p.IsInfinity() {
		return "inf"
	}
	x, y := p.Coordinates()
	return "(" + a.formatInt(x) + ", " + a.formatInt(y) + ")"
}

// bindCurveFlags binds the curve selection flags to their configuration
// keys, so that a flag left unset falls back to the environment and then
// to the config file.
func bindCurveFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range map[string]string{
		ecarith.KeyPreset: "preset",
		ecarith.KeyModel:  "model",
		ecarith.KeyPrime:  "prime",
		ecarith.KeyA:      "a",
		ecarith.KeyB:      "b",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

func parseInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, errors.Wrapf(ecarith.ErrInvalidParameters, "%q is not an integer", s)
	}
	return n, nil
}

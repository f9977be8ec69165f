package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/pkg/ecarith"
)

// affineAdder is implemented by the models whose affine addition law is
// partial.
type affineAdder interface {
	AddAffine(p, q curves.Point) (curves.Point, error)
}

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named curves.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range curves.PresetNames() {
				c, err := curves.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %s\n", name, c)
			}
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <x> <y>",
		Short: "Report whether (x, y) lies on the curve.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.curve()
			if err != nil {
				return err
			}
			_, err = a.point(c, args[0], args[1])
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "true")
			case errors.Is(err, ecarith.ErrInvalidPoint):
				fmt.Fprintln(cmd.OutOrStdout(), "false")
			default:
				return err
			}
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	var affine bool
	cmd := &cobra.Command{
		Use:   "add <x1> <y1> <x2> <y2>",
		Short: "Add two points.",
		Long: `Add two points of the curve. With --affine the chord and tangent formulas are
applied directly, so a sum equal to the point at infinity is reported as a
division by zero instead of printed as "inf".`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.curve()
			if err != nil {
				return err
			}
			p, err := a.point(c, args[0], args[1])
			if err != nil {
				return err
			}
			q, err := a.point(c, args[2], args[3])
			if err != nil {
				return err
			}

			add := c.Add
			if aa, ok := c.(affineAdder); ok && affine {
				add = aa.AddAffine
			}
			r, err := add(p, q)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(r))
			return nil
		},
	}
	cmd.Flags().BoolVar(&affine, "affine", false, "use the partial affine addition law")
	return cmd
}

func (a *app) negCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg <x> <y>",
		Short: "Print the inverse of a point.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.curve()
			if err != nil {
				return err
			}
			p, err := a.point(c, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(c.Inverse(p)))
			return nil
		},
	}
}

func (a *app) mulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <k> <x> <y>",
		Short: "Multiply a point by an integer.",
		Long:  "Multiply a point by an integer. Pass negative scalars after --.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.curve()
			if err != nil {
				return err
			}
			k, err := parseInt(args[0])
			if err != nil {
				return err
			}
			p, err := a.point(c, args[1], args[2])
			if err != nil {
				return err
			}
			r, err := c.ScalarMult(p, k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(r))
			return nil
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Sample two points whose sum is not the identity.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.curve()
			if err != nil {
				return err
			}
			p, q, err := curves.RandomPoints(c, nil)
			if err != nil {
				return err
			}
			r, err := c.Add(p, q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "P     = %s\n", a.formatPoint(p))
			fmt.Fprintf(out, "Q     = %s\n", a.formatPoint(q))
			fmt.Fprintf(out, "P + Q = %s\n", a.formatPoint(r))
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert --to <model> [<x> <y>]",
		Short: "Print the equivalent curve of another model, and optionally map a point to it.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return errors.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := ecarith.ParseModel(to)
			if err != nil {
				return err
			}
			c, err := a.curve()
			if err != nil {
				return err
			}
			target, mapPoint, err := curves.Convert(c, model)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), target)
			if len(args) == 0 {
				return nil
			}

			p, err := a.point(c, args[0], args[1])
			if err != nil {
				return err
			}
			q, err := mapPoint(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.formatPoint(q))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target model")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

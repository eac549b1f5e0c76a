package main

import (
	"github.com/spf13/cobra"

	"github.com/randalmurphal/creational/pkg/creational"
)

func newSingletonCmd(opts *rootOptions) *cobra.Command {
	var first, second int

	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Show two handles sharing one instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.start(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("first") {
				s.cfg.Singleton.First = first
			}
			if cmd.Flags().Changed("second") {
				s.cfg.Singleton.Second = second
			}
			runErr := creational.RunSingletonDemo(cmd.OutOrStdout(), s.cfg.Singleton)
			return s.finish(cmd.Context(), runErr)
		},
	}
	cmd.Flags().IntVar(&first, "first", 0, "value written through the first handle (default from config: 123)")
	cmd.Flags().IntVar(&second, "second", 0, "value written through the second handle (default from config: 456)")
	return cmd
}

func newFactoryCmd(opts *rootOptions) *cobra.Command {
	var variants []string

	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Produce and use one product per variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.start(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("variant") {
				s.cfg.Factory.Variants = variants
			}
			parsed, err := creational.ParseVariants(s.cfg.Factory.Variants)
			if err != nil {
				return s.finish(cmd.Context(), err)
			}
			runErr := creational.RunFactoryDemo(cmd.Context(), cmd.OutOrStdout(), s.catalog(), parsed)
			return s.finish(cmd.Context(), runErr)
		},
	}
	cmd.Flags().StringSliceVar(&variants, "variant", nil, "variants to produce, in order (default from config: A,B)")
	return cmd
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the singleton demo followed by the factory demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.start(cmd)
			if err != nil {
				return err
			}
			runErr := creational.Run(cmd.Context(), cmd.OutOrStdout(), s.cfg, s.catalog())
			return s.finish(cmd.Context(), runErr)
		},
	}
}

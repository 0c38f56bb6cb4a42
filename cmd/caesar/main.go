package main

import (
	"caesar/internal/ctxlog"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	dict       string
	strict     bool
	verbose    bool

	config Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "caesar",
		Short:         "Recover Caesar-enciphered text by trying every shift",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&opts.dict, "dict", "", "word list to use instead of the default")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "reject characters that are neither letters nor pass-through")
	root.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	crack := crackCmd(opts)
	root.RunE = crack.RunE
	root.Flags().AddFlagSet(crack.Flags())

	root.AddCommand(crack)
	root.AddCommand(encodeCmd(opts))
	root.AddCommand(decodeCmd(opts))
	root.AddCommand(dictsCmd(opts))

	return root
}

// setup loads the configuration, applies flag overrides and installs the logger.
func (o *options) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	c, err := LoadConfig(ctx, o.configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if o.dict != "" {
		c.Dictionary = dictSource(o.dict)
	}
	if o.strict {
		c.Rotator.Strict = true
	}
	if o.verbose {
		c.Log.Level = "debug"
	}
	o.config = c

	ctx = ctxlog.Setup(ctx, "caesar", c.Log)
	cmd.SetContext(ctx)
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		ctxlog.Get(ctx).Error("stopped unexpectedly", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"caesar/internal/rot"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseShift(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("shift must be a whole number: %w", err)
	}
	return n, nil
}

func encodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text> <key>",
		Short: "Encipher text with the given key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseShift(args[1])
			if err != nil {
				return err
			}

			s, err := rot.Rotator{Strict: opts.config.Rotator.Strict}.Rotate(args[0], key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func decodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <text> <key>",
		Short: "Decipher text enciphered with the given key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseShift(args[1])
			if err != nil {
				return err
			}

			s, err := rot.Rotator{Strict: opts.config.Rotator.Strict}.Rotate(args[0], rot.Inverse(key))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

package main

import (
	"bufio"
	"caesar/internal/crack"
	"caesar/internal/ctxlog"
	"caesar/internal/db"
	"caesar/internal/dict"
	"caesar/internal/rec"
	"caesar/internal/rot"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func dictSource(path string) dict.Source {
	return dict.Source{Path: path, Explicit: true}
}

// loadDictionary opens the configured word list through the cache store if one is configured.
// A missing default word list yields an empty dictionary.
func loadDictionary(ctx context.Context, c Config) (d dict.Dictionary, err error) {
	defer rec.Wrap(&err, "dictionary: %w")

	logger := ctxlog.Get(ctx)

	var store dict.Store
	if c.Cache.File != "" {
		logger.Debug("opening dictionary store", "file", c.Cache.File)
		s := db.Open(c.Cache)
		defer ctxlog.Close(ctx, "db", s.Closer())
		store = s
	}

	d, ok, err := dict.NewCache(store).Open(ctx, c.Dictionary)
	if err != nil {
		return dict.Dictionary{}, err
	}
	if !ok {
		logger.Warn("default dictionary unavailable, nothing will be judged plausible", "path", dict.DefaultPath)
	}
	return d, nil
}

func crackCmd(opts *options) *cobra.Command {
	var batch bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Prompt for a line of ciphertext and print the key and plaintext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := loadDictionary(ctx, opts.config)
			if err != nil {
				return err
			}

			c := crack.Cracker{
				Rotator:    rot.Rotator{Strict: opts.config.Rotator.Strict},
				Dictionary: d,
			}

			if batch {
				if jobs == 0 {
					jobs = opts.config.Batch.Jobs
				}
				return crackBatch(ctx, c, cmd.InOrStdin(), cmd.OutOrStdout(), jobs)
			}
			return crackPrompt(ctx, c, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&batch, "batch", false, "crack every line of stdin without prompting")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "lines cracked in parallel in batch mode")
	return cmd
}

func crackPrompt(ctx context.Context, c crack.Cracker, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Enter cipher : ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read cipher: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")

	res, ok, err := c.Crack(ctx, line)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Fprintln(out, "Crack failed")
		return nil
	}
	fmt.Fprintln(out, "Key =", res.Key())
	fmt.Fprintln(out, "Plaintext =", res.Plaintext)
	return nil
}

func crackBatch(ctx context.Context, c crack.Cracker, in io.Reader, out io.Writer, jobs int) error {
	var lines []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("read ciphers: %w", err)
	}

	outcomes, err := crack.Batch(ctx, c, lines, jobs)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, o := range outcomes {
		if o.OK {
			fmt.Fprintf(w, "%d\t%s\n", o.Result.Key(), o.Result.Plaintext)
		} else {
			fmt.Fprintf(w, "-\tCrack failed\n")
		}
	}
	return w.Flush()
}

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/surfgo"
	"github.com/hupe1980/surfgo/feature"
)

func newDecodeCmd(a *app) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Print the components of hex-encoded binary blobs",
		Long: `Reads one hex-encoded blob per line and prints its components,
space separated. With --skip-malformed, undecodable blobs print as "-".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, closeIn, err := openInput(a.stdin, in)
			if err != nil {
				return err
			}
			defer closeIn()
			return a.decode(cmd, r, a.stdout)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	return cmd
}

func (a *app) decode(cmd *cobra.Command, r io.Reader, w io.Writer) error {
	ctx := cmd.Context()

	lines, err := readLines(r)
	if err != nil {
		return err
	}

	// invalid hex never reaches the loader
	var (
		blob  []byte
		valid = make([][]byte, 0, len(lines))
		index = make([]int, 0, len(lines))
	)
	for i, line := range lines {
		if blob, err = decodeHexArg(line); err != nil {
			if !a.cfg.SkipMalformed {
				return fmt.Errorf("record %d: %w", i, err)
			}
			a.logger.LogSkip(ctx, i, err)
			continue
		}
		valid = append(valid, blob)
		index = append(index, i)
	}

	loader, err := a.loader()
	if err != nil {
		return err
	}
	loaded, err := loader.LoadAll(ctx, valid)
	if err != nil {
		var le *surfgo.LoadError
		if errors.As(err, &le) {
			return fmt.Errorf("record %d: %w", index[le.Index], le.Unwrap())
		}
		return err
	}

	features := make([]feature.Feature, len(lines))
	for j, f := range loaded {
		features[index[j]] = f
	}

	bw := bufio.NewWriter(w)
	for _, f := range features {
		if f == nil {
			fmt.Fprintln(bw, "-")
			continue
		}
		fmt.Fprintln(bw, formatValues(f.Values()))
	}
	return bw.Flush()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func decodeHexArg(s string) ([]byte, error) {
	blob, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", surfgo.ErrMalformedEncoding, err)
	}
	return blob, nil
}

func formatValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/surfgo"
	"github.com/hupe1980/surfgo/surf"
)

const maxLineSize = 1 << 20

func newEncodeCmd(a *app) *cobra.Command {
	var in, out string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Convert legacy text records to hex-encoded binary blobs",
		Long: `Reads one legacy text record per line and writes one hex-encoded
binary blob per line, wrapped in the configured envelope codec. Blank
lines are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, closeIn, err := openInput(a.stdin, in)
			if err != nil {
				return err
			}
			defer closeIn()

			w, closeOut, err := openOutput(a.stdout, out)
			if err != nil {
				return err
			}
			defer closeOut()

			return a.encode(cmd, r, w)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}

func (a *app) encode(cmd *cobra.Command, r io.Reader, w io.Writer) error {
	ctx := cmd.Context()
	c := a.cfg.EnvelopeCodec()
	bw := bufio.NewWriter(w)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lineNo, written, skipped int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		d, err := surf.FromText(line)
		if err != nil {
			if a.cfg.SkipMalformed && errors.Is(err, surfgo.ErrMalformedEncoding) {
				a.logger.LogSkip(ctx, lineNo, err)
				skipped++
				continue
			}
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		blob, err := c.Marshal(d.Bytes())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := fmt.Fprintln(bw, hex.EncodeToString(blob)); err != nil {
			return err
		}
		written++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	a.logger.WithCodec(c.Name()).InfoContext(ctx, "encode completed",
		"written", written,
		"skipped", skipped,
	)
	return bw.Flush()
}

func openInput(stdin io.Reader, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

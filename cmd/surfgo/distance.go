package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/surfgo/distance"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance BLOB_A BLOB_B",
		Short: "Print the L2 distance between two hex-encoded blobs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := a.loader()
			if err != nil {
				return err
			}

			blobA, err := decodeHexArg(args[0])
			if err != nil {
				return fmt.Errorf("first blob: %w", err)
			}
			blobB, err := decodeHexArg(args[1])
			if err != nil {
				return fmt.Errorf("second blob: %w", err)
			}

			fa, err := loader.Load(cmd.Context(), blobA)
			if err != nil {
				return fmt.Errorf("first blob: %w", err)
			}
			fb, err := loader.Load(cmd.Context(), blobB)
			if err != nil {
				return fmt.Errorf("second blob: %w", err)
			}

			d := fa.Distance(fb)
			if !distance.Comparable(d) {
				_, err = fmt.Fprintln(a.stdout, "not comparable")
				return err
			}
			_, err = fmt.Fprintln(a.stdout, formatValues([]float64{d}))
			return err
		},
	}
}

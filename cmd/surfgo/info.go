package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/surfgo/codec"
	"github.com/hupe1980/surfgo/distance"
	"github.com/hupe1980/surfgo/feature"
	"github.com/hupe1980/surfgo/surf"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show descriptor family and runtime information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := feature.NewRegistry()
			if err := surf.Register(reg); err != nil {
				return err
			}

			simd := distance.Info()
			w := a.stdout
			for _, tag := range reg.Tags() {
				fam, err := reg.ByTag(tag)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "feature:     %s\n", fam.Tag)
				fmt.Fprintf(w, "field:       %s\n", fam.Field)
			}
			fmt.Fprintf(w, "codec:       %s\n", a.cfg.EnvelopeCodec().Name())
			fmt.Fprintf(w, "codecs:      %s\n", strings.Join(codec.Names(), ", "))
			fmt.Fprintf(w, "accelerated: %t\n", simd.Accelerated)
			if len(simd.Features) > 0 {
				fmt.Fprintf(w, "cpu:         %s\n", strings.Join(simd.Features, " "))
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ClotureBot/model"
	"ClotureBot/pricing"
)

var estimateFlags struct {
	locality   string
	perimeter  int
	height     string
	parcelType string
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Print the estimate for a set of selections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printEstimate(cmd.OutOrStdout(),
			estimateFlags.locality,
			estimateFlags.perimeter,
			estimateFlags.height,
			estimateFlags.parcelType)
	},
}

func init() {
	f := estimateCmd.Flags()
	f.StringVar(&estimateFlags.locality, "locality", model.DefaultLocality, "city of the parcel")
	f.IntVar(&estimateFlags.perimeter, "perimeter", model.DefaultPerimeter, "perimeter in linear meters (10-500)")
	f.StringVar(&estimateFlags.height, "height", model.DefaultFenceHeight, "fence height preset")
	f.StringVar(&estimateFlags.parcelType, "parcel-type", model.ParcelTypeCorner, "parcel shape")
}

func printEstimate(w io.Writer, locality string, perimeter int, height, parcelType string) error {
	perimeter = model.ClampPerimeter(perimeter)
	b := pricing.Explain(locality, perimeter, height, parcelType)

	_, err := fmt.Fprintf(w, `Localité       : %s (x%.2f)
Type parcelle  : %s (x%.2f)
Hauteur        : %s (x%.2f)
Périmètre      : %d ml x %.0f %s
Coût estimé    : %s
`,
		locality, b.LocalityCoeff,
		parcelType, b.ParcelTypeCoeff,
		height, b.HeightCoeff,
		b.PerimeterMeters, b.BaseRate, pricing.Currency,
		pricing.FormatPrice(b.Amount))
	return err
}

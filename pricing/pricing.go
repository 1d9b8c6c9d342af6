// Package pricing computes the fence estimate from the wizard selections.
package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseRatePerMeter is the price of one linear meter of fence, in FCFA.
const BaseRatePerMeter = 51107

const Currency = "FCFA"

var localityCoefficients = map[string]float64{
	"Cotonou": 1.05,
}

var heightCoefficients = map[string]float64{
	"1.8m":            0.95,
	"2.0m (standard)": 1.00,
	"2.5m":            1.15,
	"3.0m":            1.35,
}

var parcelTypeCoefficients = map[string]float64{
	"Angle":             1.10,
	"Entre 3 parcelles": 1.15,
}

func lookup(table map[string]float64, key string) float64 {
	if c, ok := table[key]; ok {
		return c
	}
	return 1.0
}

// LocalityCoefficient returns the regional multiplier, 1.0 when unmapped.
func LocalityCoefficient(locality string) float64 {
	return lookup(localityCoefficients, locality)
}

func HeightCoefficient(height string) float64 {
	return lookup(heightCoefficients, height)
}

func ParcelTypeCoefficient(parcelType string) float64 {
	return lookup(parcelTypeCoefficients, parcelType)
}

// Estimate returns the unrounded price of fencing perimeterMeters of land.
func Estimate(locality string, perimeterMeters int, fenceHeight, parcelType string) float64 {
	return BaseRatePerMeter * float64(perimeterMeters) *
		LocalityCoefficient(locality) *
		HeightCoefficient(fenceHeight) *
		ParcelTypeCoefficient(parcelType)
}

// Breakdown details the factors of one estimate.
type Breakdown struct {
	BaseRate        float64
	PerimeterMeters int
	LocalityCoeff   float64
	HeightCoeff     float64
	ParcelTypeCoeff float64
	Amount          float64
}

func Explain(locality string, perimeterMeters int, fenceHeight, parcelType string) Breakdown {
	return Breakdown{
		BaseRate:        BaseRatePerMeter,
		PerimeterMeters: perimeterMeters,
		LocalityCoeff:   LocalityCoefficient(locality),
		HeightCoeff:     HeightCoefficient(fenceHeight),
		ParcelTypeCoeff: ParcelTypeCoefficient(parcelType),
		Amount:          Estimate(locality, perimeterMeters, fenceHeight, parcelType),
	}
}

// Round truncates an amount to whole currency units, half away from zero.
func Round(amount float64) int64 {
	return int64(math.Round(amount))
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders a rounded amount with comma thousands separators,
// e.g. "4,132,001".
func FormatAmount(amount float64) string {
	return printer.Sprintf("%d", Round(amount))
}

// FormatPrice is FormatAmount followed by the currency.
func FormatPrice(amount float64) string {
	return FormatAmount(amount) + " " + Currency
}

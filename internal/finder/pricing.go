package finder

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultHoursPerMonth  = 20
	DefaultConversionRate = 80
)

// Pricing converts an hourly rate in the source currency into an estimated
// monthly cost in rupees.
type Pricing struct {
	HoursPerMonth  float64
	ConversionRate float64
}

// NewPricing returns a Pricing, substituting defaults for non-positive inputs.
func NewPricing(hoursPerMonth, conversionRate float64) Pricing {
	if hoursPerMonth <= 0 {
		hoursPerMonth = DefaultHoursPerMonth
	}
	if conversionRate <= 0 {
		conversionRate = DefaultConversionRate
	}
	return Pricing{HoursPerMonth: hoursPerMonth, ConversionRate: conversionRate}
}

// DefaultPricing is 20 hours a month at 80 rupees per unit of source currency.
func DefaultPricing() Pricing {
	return NewPricing(DefaultHoursPerMonth, DefaultConversionRate)
}

// MonthlyRate returns round(hourlyRate × hours × conversion).
func (p Pricing) MonthlyRate(hourlyRate float64) int64 {
	p = NewPricing(p.HoursPerMonth, p.ConversionRate)
	return int64(math.Round(hourlyRate * p.HoursPerMonth * p.ConversionRate))
}

var rupeePrinter = message.NewPrinter(language.English)

// FormatRupees renders an amount with thousands separators, e.g. ₹1,600.
func FormatRupees(amount int64) string {
	return rupeePrinter.Sprintf("₹%d", amount)
}

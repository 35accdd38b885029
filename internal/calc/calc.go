// Package calc implements the site's simplified legal calculators as pure
// functions. Every result is an ESTIMATE for orientation, not a legal
// opinion; the numbers deliberately ignore edge cases a lawyer would catch
// (salary averages, projected notice, court discretion).
//
// Values are float64 reais rounded to centavos on output. These are rough
// estimates over a handful of multiplications; decimal arithmetic would be
// precision theatre here.
package calc

import (
	"fmt"
	"math"
	"time"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
)

// DateLayout is the wire format for calculator dates.
const DateLayout = "2006-01-02"

// round2 rounds to centavos.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseDate parses a YYYY-MM-DD field.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.ValidationFailed(field, fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
	}
	return t, nil
}

// --- Severance (rescisão sem justa causa) ---

type SeveranceInput struct {
	MonthlySalary   float64 `json:"monthlySalary"`
	HireDate        string  `json:"hireDate"`        // YYYY-MM-DD
	TerminationDate string  `json:"terminationDate"` // YYYY-MM-DD
	FGTSBalance     float64 `json:"fgtsBalance"`     // optional; estimated from tenure when 0
	NoticeWorked    bool    `json:"noticeWorked"`    // true = aviso prévio trabalhado
}

type SeveranceResult struct {
	SalaryBalance        float64 `json:"salaryBalance"`        // saldo de salário
	NoticeDays           int     `json:"noticeDays"`           // dias de aviso prévio
	NoticePay            float64 `json:"noticePay"`            // zero when the notice is worked
	ThirteenthProportion float64 `json:"thirteenthProportion"` // 13º proporcional
	VacationProportion   float64 `json:"vacationProportion"`   // férias proporcionais + 1/3
	FGTSFine             float64 `json:"fgtsFine"`             // multa de 40%
	FGTSEstimated        bool    `json:"fgtsEstimated"`        // true when the balance was estimated
	Total                float64 `json:"total"`
}

// Severance estimates the payout of a dismissal without cause.
func Severance(in SeveranceInput) (*SeveranceResult, error) {
	if in.MonthlySalary <= 0 {
		return nil, apperror.ValidationFailed("monthlySalary", "monthly salary must be greater than zero")
	}
	if in.FGTSBalance < 0 {
		return nil, apperror.ValidationFailed("fgtsBalance", "FGTS balance cannot be negative")
	}
	hired, err := parseDate("hireDate", in.HireDate)
	if err != nil {
		return nil, err
	}
	terminated, err := parseDate("terminationDate", in.TerminationDate)
	if err != nil {
		return nil, err
	}
	if !terminated.After(hired) {
		return nil, apperror.ValidationFailed("terminationDate", "termination date must be after the hire date")
	}

	fullYears := yearsBetween(hired, terminated)
	dailySalary := in.MonthlySalary / 30

	// Saldo de salário: days worked in the final month.
	salaryBalance := dailySalary * float64(terminated.Day())

	// Aviso prévio: 30 days + 3 per full year of service, capped at 90.
	noticeDays := 30 + 3*fullYears
	if noticeDays > 90 {
		noticeDays = 90
	}
	noticePay := 0.0
	if !in.NoticeWorked {
		noticePay = dailySalary * float64(noticeDays)
	}

	// 13º proporcional: twelfths worked in the termination year, counting a
	// month when 15 or more days were worked in it.
	thirteenthMonths := monthsWorkedInYear(hired, terminated)
	thirteenth := in.MonthlySalary * float64(thirteenthMonths) / 12

	// Férias proporcionais + 1/3: twelfths since the last vacation-period
	// anniversary. Assumes no vested untaken vacation.
	vacationMonths := monthsSinceAnniversary(hired, terminated)
	vacation := in.MonthlySalary * float64(vacationMonths) / 12 * (1 + 1.0/3.0)

	// Multa de 40% do FGTS. Without an informed balance, estimate deposits
	// of 8% per month of service.
	balance := in.FGTSBalance
	estimated := false
	if balance == 0 {
		balance = in.MonthlySalary * 0.08 * float64(totalMonths(hired, terminated))
		estimated = true
	}
	fine := balance * 0.40

	total := salaryBalance + noticePay + thirteenth + vacation + fine
	return &SeveranceResult{
		SalaryBalance:        round2(salaryBalance),
		NoticeDays:           noticeDays,
		NoticePay:            round2(noticePay),
		ThirteenthProportion: round2(thirteenth),
		VacationProportion:   round2(vacation),
		FGTSFine:             round2(fine),
		FGTSEstimated:        estimated,
		Total:                round2(total),
	}, nil
}

func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	anniversary := from.AddDate(years, 0, 0)
	if anniversary.After(to) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// monthsWorkedInYear counts the twelfths of the termination year, starting
// at the hire date when both fall in the same year.
func monthsWorkedInYear(hired, terminated time.Time) int {
	start := time.Date(terminated.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	if hired.After(start) {
		start = hired
	}
	return countTwelfths(start, terminated)
}

// monthsSinceAnniversary counts twelfths since the most recent anniversary
// of the hire date.
func monthsSinceAnniversary(hired, terminated time.Time) int {
	years := yearsBetween(hired, terminated)
	anniversary := hired.AddDate(years, 0, 0)
	return countTwelfths(anniversary, terminated)
}

// countTwelfths counts months between two dates, where a partial month
// counts when it covers 15 days or more. Capped at 12.
func countTwelfths(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	months := 0
	cursor := from
	for {
		next := cursor.AddDate(0, 1, 0)
		if !next.After(to) {
			months++
			cursor = next
			continue
		}
		// Inclusive day count: Jan 1 through Jan 15 is 15 worked days.
		if days := int(to.Sub(cursor).Hours()/24) + 1; days >= 15 {
			months++
		}
		break
	}
	if months > 12 {
		months = 12
	}
	return months
}

func totalMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months
}

// --- Traffic fine ---

// Base fine values and points from the CTB severity table.
var trafficSeverities = map[string]struct {
	Value  float64
	Points int
}{
	"leve":       {88.38, 3},
	"media":      {130.16, 4},
	"grave":      {195.23, 5},
	"gravissima": {293.47, 7},
}

type TrafficFineInput struct {
	Severity   string `json:"severity"`   // leve | media | grave | gravissima
	Multiplier int    `json:"multiplier"` // gravíssima aggravation factor (x2, x3, x5, x10); 0/1 = none
}

type TrafficFineResult struct {
	Severity        string  `json:"severity"`
	Amount          float64 `json:"amount"`
	DiscountedValue float64 `json:"discountedValue"` // 20% off when paid by the due date
	Points          int     `json:"points"`
}

// TrafficFine estimates a fine's value, its early-payment discount and the
// license points.
func TrafficFine(in TrafficFineInput) (*TrafficFineResult, error) {
	base, ok := trafficSeverities[in.Severity]
	if !ok {
		return nil, apperror.ValidationFailed("severity", "severity must be one of: leve, media, grave, gravissima")
	}
	multiplier := in.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	if multiplier < 1 || multiplier > 10 {
		return nil, apperror.ValidationFailed("multiplier", "multiplier must be between 1 and 10")
	}
	if multiplier > 1 && in.Severity != "gravissima" {
		return nil, apperror.ValidationFailed("multiplier", "only gravíssima fines carry a multiplier")
	}

	amount := base.Value * float64(multiplier)
	return &TrafficFineResult{
		Severity:        in.Severity,
		Amount:          round2(amount),
		DiscountedValue: round2(amount * 0.80),
		Points:          base.Points,
	}, nil
}

// --- Moral damages ---

// Reference bands compiled from common small-claims outcomes. Per-case
// results vary wildly; the bands exist to anchor expectations.
var moralDamageBands = map[string]struct {
	Low, Typical, High float64
}{
	"negativacao-indevida": {3000, 6000, 12000},
	"voo-cancelado":        {2000, 5000, 10000},
	"golpe-bancario":       {3000, 8000, 15000},
	"plano-saude":          {5000, 10000, 20000},
	"outros":               {1000, 3000, 8000},
}

type MoralDamagesInput struct {
	Category string `json:"category"` // negativacao-indevida | voo-cancelado | golpe-bancario | plano-saude | outros
	Severity int    `json:"severity"` // 1 = leve, 2 = moderada, 3 = grave
}

type MoralDamagesResult struct {
	Category string  `json:"category"`
	Low      float64 `json:"low"`
	Typical  float64 `json:"typical"`
	High     float64 `json:"high"`
}

// MoralDamages returns an estimate band for a moral-damages claim.
func MoralDamages(in MoralDamagesInput) (*MoralDamagesResult, error) {
	band, ok := moralDamageBands[in.Category]
	if !ok {
		return nil, apperror.ValidationFailed("category", "unknown damage category")
	}
	if in.Severity < 1 || in.Severity > 3 {
		return nil, apperror.ValidationFailed("severity", "severity must be 1, 2 or 3")
	}

	// Severity scales the band: leve 0.5x, moderada 1x, grave 1.5x.
	factor := []float64{0.5, 1.0, 1.5}[in.Severity-1]
	return &MoralDamagesResult{
		Category: in.Category,
		Low:      round2(band.Low * factor),
		Typical:  round2(band.Typical * factor),
		High:     round2(band.High * factor),
	}, nil
}

// --- Child support ---

type ChildSupportInput struct {
	NetIncome     float64 `json:"netIncome"`
	Children      int     `json:"children"`
	SharedCustody bool    `json:"sharedCustody"`
}

type ChildSupportResult struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	PerChild   float64 `json:"perChild"`
}

// ChildSupport suggests a starting percentage of net income following the
// common judicial practice of 15% for one child plus 5% per additional
// child, capped at 30%. Shared custody commonly reduces the figure by a
// quarter. The binômio necessidade-possibilidade always prevails in court.
func ChildSupport(in ChildSupportInput) (*ChildSupportResult, error) {
	if in.NetIncome <= 0 {
		return nil, apperror.ValidationFailed("netIncome", "net income must be greater than zero")
	}
	if in.Children < 1 {
		return nil, apperror.ValidationFailed("children", "at least one child is required")
	}

	pct := 15.0 + 5.0*float64(in.Children-1)
	if pct > 30 {
		pct = 30
	}
	if in.SharedCustody {
		pct *= 0.75
	}

	amount := in.NetIncome * pct / 100
	return &ChildSupportResult{
		Percentage: round2(pct),
		Amount:     round2(amount),
		PerChild:   round2(amount / float64(in.Children)),
	}, nil
}

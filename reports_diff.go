package deckbox

import "errors"

// DiffEntry is one line of a diff report.
type DiffEntry struct {
	// Count is the signed quantity delta: negative for removals, positive
	// for additions.
	Count       int
	Description string
}

// DiffPricing carries the monetary side of a diff report. All amounts are
// valued in the comparison set's prices, the latest known market data.
type DiffPricing struct {
	// EarlierTotal is the baseline set valued at its own export prices.
	EarlierTotal Price
	// EarlierApplied is the baseline set valued at the comparison set's
	// prices.
	EarlierApplied Price
	// EarlierAppliedAdjusted additionally discounts by each record's
	// condition.
	EarlierAppliedAdjusted Price
	// LaterTotal is the comparison set valued at its own prices.
	LaterTotal Price
	// LaterAdjusted is the comparison set's condition-adjusted total.
	LaterAdjusted Price
	// Delta and DeltaAdjusted value the diff itself at comparison prices.
	Delta         Price
	DeltaAdjusted Price
}

// DiffReport is the full outcome of comparing two exports, shaped for the
// renderer.
type DiffReport struct {
	// Earlier and Later label the two snapshots, typically file names.
	Earlier string
	Later   string

	Entries []DiffEntry

	// Pricing is nil when pricing was not requested or could not be
	// computed; in the latter case PricingIssue names the unpriceable
	// printing so the caller can still render the quantity diff.
	Pricing      *DiffPricing
	PricingIssue string
}

// DiffReportOptions tunes report construction.
type DiffReportOptions struct {
	// WithPricing adds the DiffPricing section.
	WithPricing bool
	// NumberPad is the zero-pad width for numeric card numbers in
	// descriptions; 0 means the default of 3.
	NumberPad int
}

// NewDiffReport diffs earlier against later and assembles the report. A
// price-unavailable condition downgrades the pricing section to a notice
// instead of failing the report.
func NewDiffReport(earlierName, laterName string, earlier, later *Collection, opts DiffReportOptions) *DiffReport {
	pad := opts.NumberPad
	if pad <= 0 {
		pad = defaultNumberPad
	}

	report := &DiffReport{Earlier: earlierName, Later: laterName}
	for _, c := range earlier.Diff(later) {
		report.Entries = append(report.Entries, DiffEntry{
			Count:       c.Count(),
			Description: c.DescriptionPad(pad),
		})
	}

	if !opts.WithPricing {
		return report
	}

	pricing, err := newDiffPricing(earlier, later)
	if err != nil {
		report.PricingIssue = err.Error()
		return report
	}
	report.Pricing = pricing
	return report
}

func newDiffPricing(earlier, later *Collection) (*DiffPricing, error) {
	applied, err := earlier.TotalAppliedPrice(later, false)
	if err != nil {
		return nil, err
	}
	appliedAdjusted, err := earlier.TotalAppliedPrice(later, true)
	if err != nil {
		return nil, err
	}
	delta, err := earlier.DiffPrice(later, false)
	if err != nil {
		return nil, err
	}
	deltaAdjusted, err := earlier.DiffPrice(later, true)
	if err != nil {
		return nil, err
	}
	return &DiffPricing{
		EarlierTotal:           earlier.TotalPrice(),
		EarlierApplied:         applied,
		EarlierAppliedAdjusted: appliedAdjusted,
		LaterTotal:             later.TotalPrice(),
		LaterAdjusted:          later.TotalConditionAdjustedPrice(),
		Delta:                  delta,
		DeltaAdjusted:          deltaAdjusted,
	}, nil
}

// IsPriceUnavailable reports whether err is the price-unavailable
// condition raised by pricing operations.
func IsPriceUnavailable(err error) bool {
	return errors.Is(err, ErrPriceUnavailable)
}

// Package pricing implements the quote estimation engine. It is pure: no
// I/O, no clock, no state beyond its inputs, so it is safe to call on every
// recompute the calculator UI triggers.
//
// All monetary amounts are integers in minor currency units (paise).
// Formatting to major units happens at the edge, never here.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownService is returned when the selected service does not resolve
// in the catalog. Callers treat "nothing selected yet" as a UI state and only
// invoke the engine once a service id is present.
var ErrUnknownService = errors.New("unknown service")

// ServiceOption is a purchasable service line. Catalog entries are immutable.
type ServiceOption struct {
	ID             string
	Label          string
	BasePriceMinor int64
	// PerPagePriced marks the service whose cost scales with page count.
	PerPagePriced bool
}

// FeatureOption is an add-on applied at most once per quote.
type FeatureOption struct {
	ID         string
	Label      string
	PriceMinor int64
}

// TimelineOption scales the subtotal by a delivery-urgency factor.
// Catalog invariant: Multiplier >= 1.0 and the standard option is exactly 1.0.
type TimelineOption struct {
	ID         string
	Label      string
	Multiplier float64
}

// Catalog holds the immutable option tables the engine prices against.
// Build one from the database via the catalog service, or use
// DefaultCatalog for the deploy-time reference pricing.
type Catalog struct {
	Services  map[string]ServiceOption
	Features  map[string]FeatureOption
	Timelines map[string]TimelineOption

	// PerPageRateMinor is charged for each page beyond IncludedPages on
	// per-page-priced services.
	PerPageRateMinor int64
	IncludedPages    int
}

// Selection is the transient engine input, rebuilt from UI state on every
// recompute. FeatureIDs has set semantics: duplicates count once.
type Selection struct {
	ServiceID  string
	FeatureIDs []string
	PageCount  int
	TimelineID string
}

// Estimate is the engine output: the total plus its decomposition for
// display. TotalMinor == round((base + features + overage) * multiplier),
// rounded once, half away from zero.
type Estimate struct {
	TotalMinor             int64
	BaseMinor              int64
	FeatureTotalMinor      int64
	PageOverageMinor       int64
	TimelineSurchargeMinor int64
}

// Calculate computes the estimate for a selection against a catalog.
//
// Unknown feature ids are skipped silently so a stale selection referencing a
// removed feature still prices. An unknown timeline id falls back to the
// standard multiplier of 1.0. Only an unresolvable service id is an error.
func Calculate(catalog Catalog, sel Selection) (Estimate, error) {
	service, ok := catalog.Services[sel.ServiceID]
	if !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnknownService, sel.ServiceID)
	}

	base := service.BasePriceMinor

	var featureTotal int64
	seen := make(map[string]struct{}, len(sel.FeatureIDs))
	for _, id := range sel.FeatureIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if feature, ok := catalog.Features[id]; ok {
			featureTotal += feature.PriceMinor
		}
	}

	var pageOverage int64
	if service.PerPagePriced && sel.PageCount > catalog.IncludedPages {
		pageOverage = int64(sel.PageCount-catalog.IncludedPages) * catalog.PerPageRateMinor
	}

	subtotal := base + featureTotal + pageOverage

	multiplier := 1.0
	if timeline, ok := catalog.Timelines[sel.TimelineID]; ok {
		multiplier = timeline.Multiplier
	}

	// Single rounding after the multiplier; per-term rounding would drift.
	// Inputs are non-negative, so math.Round is half away from zero.
	total := int64(math.Round(float64(subtotal) * multiplier))

	return Estimate{
		TotalMinor:             total,
		BaseMinor:              base,
		FeatureTotalMinor:      featureTotal,
		PageOverageMinor:       pageOverage,
		TimelineSurchargeMinor: total - subtotal,
	}, nil
}

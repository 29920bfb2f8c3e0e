package service

import (
	"context"
	"testing"

	"webforge_backend/internal/pricing"
	"webforge_backend/internal/quotes/transport"
	"webforge_backend/platform/apperr"
)

type staticCatalog struct{}

func (staticCatalog) PricingCatalog(context.Context) (pricing.Catalog, error) {
	return pricing.DefaultCatalog(), nil
}

func TestEstimate_MatchesEngine(t *testing.T) {
	svc := New(nil, staticCatalog{}, nil)

	got, err := svc.Estimate(context.Background(), transport.SelectionRequest{
		ServiceID:  "websites",
		FeatureIDs: []string{"cms", "seo"},
		PageCount:  10,
		TimelineID: "rush",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if got.TotalMinor != 652350 {
		t.Fatalf("total = %d, want 652350", got.TotalMinor)
	}
	if got.BaseMinor != 249900 || got.FeatureTotalMinor != 110000 || got.PageOverageMinor != 75000 {
		t.Fatalf("unexpected decomposition: %+v", got)
	}
}

func TestEstimate_UnknownServiceIsBadRequest(t *testing.T) {
	svc := New(nil, staticCatalog{}, nil)

	_, err := svc.Estimate(context.Background(), transport.SelectionRequest{ServiceID: "hosting"})
	if err == nil {
		t.Fatal("expected error for unknown service")
	}
	if apperr.GetKind(err) != apperr.KindBadRequest {
		t.Fatalf("kind = %v, want bad request", apperr.GetKind(err))
	}
}

func TestStatusTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to transport.QuoteStatus
		want     bool
	}{
		{transport.QuoteStatusNew, transport.QuoteStatusContacted, true},
		{transport.QuoteStatusContacted, transport.QuoteStatusWon, true},
		{transport.QuoteStatusContacted, transport.QuoteStatusLost, true},
		{transport.QuoteStatusNew, transport.QuoteStatusWon, false},
		{transport.QuoteStatusNew, transport.QuoteStatusLost, false},
		{transport.QuoteStatusWon, transport.QuoteStatusContacted, false},
		{transport.QuoteStatusLost, transport.QuoteStatusNew, false},
		{transport.QuoteStatusWon, transport.QuoteStatusLost, false},
	}

	for _, tc := range cases {
		if got := StatusTransitionAllowed(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDedupFeatureIDs_PreservesOrder(t *testing.T) {
	got := dedupFeatureIDs([]string{"seo", "cms", "seo", "analytics", "cms"})
	want := []string{"seo", "cms", "analytics"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

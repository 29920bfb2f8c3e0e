package pricing

import (
	"errors"
	"testing"
)

func mustCalculate(t *testing.T, catalog Catalog, sel Selection) Estimate {
	t.Helper()
	est, err := Calculate(catalog, sel)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	return est
}

func TestCalculate_RushWebsiteWithFeaturesAndOverage(t *testing.T) {
	est := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"cms", "seo"},
		PageCount:  10,
		TimelineID: "rush",
	})

	if est.BaseMinor != 249900 {
		t.Fatalf("base = %d, want 249900", est.BaseMinor)
	}
	if est.FeatureTotalMinor != 110000 {
		t.Fatalf("featureTotal = %d, want 110000", est.FeatureTotalMinor)
	}
	if est.PageOverageMinor != 75000 {
		t.Fatalf("pageOverage = %d, want 75000", est.PageOverageMinor)
	}
	// subtotal 434900 * 1.5
	if est.TotalMinor != 652350 {
		t.Fatalf("total = %d, want 652350", est.TotalMinor)
	}
	if est.TimelineSurchargeMinor != 652350-434900 {
		t.Fatalf("timelineSurcharge = %d, want %d", est.TimelineSurchargeMinor, 652350-434900)
	}
}

func TestCalculate_MaintenanceStandardNoFeatures(t *testing.T) {
	est := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "maintenance",
		TimelineID: "standard",
	})

	if est.TotalMinor != 19900 {
		t.Fatalf("total = %d, want 19900", est.TotalMinor)
	}
	if est.FeatureTotalMinor != 0 || est.PageOverageMinor != 0 || est.TimelineSurchargeMinor != 0 {
		t.Fatalf("expected zero decomposition beyond base, got %+v", est)
	}
}

func TestCalculate_UnknownService(t *testing.T) {
	_, err := Calculate(DefaultCatalog(), Selection{ServiceID: "hosting"})
	if !errors.Is(err, ErrUnknownService) {
		t.Fatalf("err = %v, want ErrUnknownService", err)
	}
}

func TestCalculate_UnknownFeatureIgnored(t *testing.T) {
	with := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"cms", "removed-feature"},
	})
	without := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"cms"},
	})

	if with.TotalMinor != without.TotalMinor {
		t.Fatalf("unknown feature changed total: %d vs %d", with.TotalMinor, without.TotalMinor)
	}
}

func TestCalculate_DuplicateFeatureCountsOnce(t *testing.T) {
	duplicated := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"seo", "seo", "seo"},
	})
	single := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"seo"},
	})

	if duplicated.FeatureTotalMinor != single.FeatureTotalMinor {
		t.Fatalf("duplicate feature counted more than once: %d vs %d",
			duplicated.FeatureTotalMinor, single.FeatureTotalMinor)
	}
}

func TestCalculate_PageOverageThreshold(t *testing.T) {
	cases := []struct {
		pages       int
		wantOverage int64
	}{
		{0, 0},
		{5, 0},
		{6, 15000},
		{30, 25 * 15000},
	}

	for _, tc := range cases {
		est := mustCalculate(t, DefaultCatalog(), Selection{
			ServiceID: "websites",
			PageCount: tc.pages,
		})
		if est.PageOverageMinor != tc.wantOverage {
			t.Fatalf("pages=%d: overage = %d, want %d", tc.pages, est.PageOverageMinor, tc.wantOverage)
		}
	}
}

func TestCalculate_PageCountIgnoredForOtherServices(t *testing.T) {
	for _, serviceID := range []string{"ecommerce", "webapp", "maintenance"} {
		est := mustCalculate(t, DefaultCatalog(), Selection{
			ServiceID: serviceID,
			PageCount: 40,
		})
		if est.PageOverageMinor != 0 {
			t.Fatalf("service %s: overage = %d, want 0", serviceID, est.PageOverageMinor)
		}
	}
}

func TestCalculate_UnknownTimelineDefaultsToStandard(t *testing.T) {
	est := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		TimelineID: "yesterday",
	})

	if est.TotalMinor != est.BaseMinor {
		t.Fatalf("unknown timeline applied a surcharge: total=%d base=%d", est.TotalMinor, est.BaseMinor)
	}
	if est.TimelineSurchargeMinor != 0 {
		t.Fatalf("timelineSurcharge = %d, want 0", est.TimelineSurchargeMinor)
	}
}

func TestCalculate_FeatureAdditivity(t *testing.T) {
	base := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"cms"},
		PageCount:  8,
	})
	extended := mustCalculate(t, DefaultCatalog(), Selection{
		ServiceID:  "websites",
		FeatureIDs: []string{"cms", "analytics"},
		PageCount:  8,
	})

	if extended.FeatureTotalMinor-base.FeatureTotalMinor != 35000 {
		t.Fatalf("feature delta = %d, want 35000", extended.FeatureTotalMinor-base.FeatureTotalMinor)
	}
	if extended.BaseMinor != base.BaseMinor || extended.PageOverageMinor != base.PageOverageMinor {
		t.Fatal("adding a feature changed base or page overage")
	}
}

func TestCalculate_Determinism(t *testing.T) {
	sel := Selection{
		ServiceID:  "ecommerce",
		FeatureIDs: []string{"payments", "seo"},
		TimelineID: "priority",
	}

	first := mustCalculate(t, DefaultCatalog(), sel)
	for i := 0; i < 10; i++ {
		if got := mustCalculate(t, DefaultCatalog(), sel); got != first {
			t.Fatalf("call %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestCalculate_TotalNeverBelowBase(t *testing.T) {
	catalog := DefaultCatalog()
	selections := []Selection{
		{ServiceID: "websites"},
		{ServiceID: "websites", FeatureIDs: []string{"cms", "seo", "payments"}, PageCount: 30, TimelineID: "rush"},
		{ServiceID: "maintenance", TimelineID: "priority"},
		{ServiceID: "webapp", FeatureIDs: []string{"multilingual"}, TimelineID: "standard"},
	}

	for _, sel := range selections {
		est := mustCalculate(t, catalog, sel)
		if est.TotalMinor < est.BaseMinor {
			t.Fatalf("selection %+v: total %d below base %d", sel, est.TotalMinor, est.BaseMinor)
		}
	}
}

func TestCalculate_RoundingAppliedOnceAfterMultiplier(t *testing.T) {
	catalog := Catalog{
		Services: map[string]ServiceOption{
			"svc": {ID: "svc", BasePriceMinor: 101},
		},
		Features: map[string]FeatureOption{},
		Timelines: map[string]TimelineOption{
			"half-up": {ID: "half-up", Multiplier: 1.5},
		},
	}

	est := mustCalculate(t, catalog, Selection{ServiceID: "svc", TimelineID: "half-up"})

	// 101 * 1.5 = 151.5, half away from zero rounds up
	if est.TotalMinor != 152 {
		t.Fatalf("total = %d, want 152", est.TotalMinor)
	}
	if est.TimelineSurchargeMinor != 51 {
		t.Fatalf("timelineSurcharge = %d, want 51", est.TimelineSurchargeMinor)
	}
}

package pricing

// DefaultCatalog returns the deploy-time reference pricing. The catalog
// module seeds the database from these values on first run; after that the
// database is the source of truth and staff edits take precedence.
func DefaultCatalog() Catalog {
	return Catalog{
		Services: map[string]ServiceOption{
			"websites":    {ID: "websites", Label: "Business Website", BasePriceMinor: 249900, PerPagePriced: true},
			"ecommerce":   {ID: "ecommerce", Label: "E-commerce Store", BasePriceMinor: 499900},
			"webapp":      {ID: "webapp", Label: "Web Application / Dashboard", BasePriceMinor: 799900},
			"maintenance": {ID: "maintenance", Label: "Care & Maintenance Plan", BasePriceMinor: 19900},
		},
		Features: map[string]FeatureOption{
			"cms":          {ID: "cms", Label: "Content Management System", PriceMinor: 50000},
			"seo":          {ID: "seo", Label: "SEO Setup", PriceMinor: 60000},
			"analytics":    {ID: "analytics", Label: "Analytics & Reporting", PriceMinor: 35000},
			"booking":      {ID: "booking", Label: "Appointment Booking", PriceMinor: 45000},
			"payments":     {ID: "payments", Label: "Payment Integration", PriceMinor: 75000},
			"multilingual": {ID: "multilingual", Label: "Multi-language Support", PriceMinor: 40000},
		},
		Timelines: map[string]TimelineOption{
			"standard": {ID: "standard", Label: "Standard (4-6 weeks)", Multiplier: 1.0},
			"priority": {ID: "priority", Label: "Priority (2-3 weeks)", Multiplier: 1.25},
			"rush":     {ID: "rush", Label: "Rush (under 2 weeks)", Multiplier: 1.5},
		},
		PerPageRateMinor: 15000,
		IncludedPages:    5,
	}
}

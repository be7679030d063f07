package pricing

// AddOn is one optional service a guest can attach to a stay. PerNight
// services are billed once per night, the rest once per stay.
type AddOn struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	PerNight   bool   `json:"per_night"`
	PriceCents int64  `json:"price_cents"`
}

// AddOnCatalog is the current set of bookable services, keyed by code.
// Like the rate table it is supplied per call, never cached.
type AddOnCatalog map[string]AddOn

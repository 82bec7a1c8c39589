// internal/airport/registry.go
package airport

import "context"

// Registry holds airports in configuration order. Polling walks the
// same order every cycle. Duplicate codes are permitted.
type Registry struct {
	airports []*Airport
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends an airport. Iteration order is add order.
func (r *Registry) Add(a *Airport) {
	r.airports = append(r.airports, a)
}

// Airports returns the backing slice in registration order.
func (r *Registry) Airports() []*Airport {
	return r.airports
}

// Len reports the number of registered airports.
func (r *Registry) Len() int {
	return len(r.airports)
}

// UpdateAll refreshes every airport sequentially, in registration
// order. A slow fetch for one airport delays the rest of the cycle;
// a failed one does not.
func (r *Registry) UpdateAll(ctx context.Context, f Fetcher) {
	for _, a := range r.airports {
		a.Update(ctx, f)
	}
}

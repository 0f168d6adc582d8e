package entity

// MaxFactsPerSource bounds every aggregated fact sequence
const MaxFactsPerSource = 3

// Source identifies one external data provider feeding the aggregator
type Source string

const (
	SourceFlights     Source = "flights"
	SourceEvents      Source = "events"
	SourceRestaurants Source = "restaurants"
)

// SourceStatus describes how a provider sub-operation ended
type SourceStatus string

const (
	// StatusOK means the provider answered with at least one item.
	StatusOK SourceStatus = "ok"
	// StatusEmpty means the provider answered but matched nothing.
	StatusEmpty SourceStatus = "empty"
	// StatusDegraded means the provider was unreachable, uncredentialed or
	// returned something unusable.
	StatusDegraded SourceStatus = "degraded"
)

// SourceResult is the outcome of one provider sub-operation.
// Items is never nil and never longer than MaxFactsPerSource.
type SourceResult struct {
	Source Source       `json:"source"`
	Items  []string     `json:"items"`
	Status SourceStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

// OKResult builds a result from provider items, truncating to MaxFactsPerSource.
// An empty item list yields an empty result instead.
func OKResult(source Source, items []string) SourceResult {
	if len(items) == 0 {
		return EmptyResult(source, "no matches")
	}
	if len(items) > MaxFactsPerSource {
		items = items[:MaxFactsPerSource]
	}
	out := make([]string, len(items))
	copy(out, items)
	return SourceResult{Source: source, Items: out, Status: StatusOK}
}

// EmptyResult builds a result for a provider that answered with no matches
func EmptyResult(source Source, reason string) SourceResult {
	return SourceResult{Source: source, Items: []string{}, Status: StatusEmpty, Reason: reason}
}

// DegradedResult builds a result for a provider that failed
func DegradedResult(source Source, reason string) SourceResult {
	return SourceResult{Source: source, Items: []string{}, Status: StatusDegraded, Reason: reason}
}

// AggregatedFacts holds the three independent fact sequences of one run
type AggregatedFacts struct {
	Flights     SourceResult `json:"flights"`
	Events      SourceResult `json:"events"`
	Restaurants SourceResult `json:"restaurants"`
}

// All returns the three results in a fixed order
func (f AggregatedFacts) All() []SourceResult {
	return []SourceResult{f.Flights, f.Events, f.Restaurants}
}

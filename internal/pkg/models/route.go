package models

// RouteStats is the result of a route calculation over an ordered waypoint
// list: totals plus a per-leg breakdown.
type RouteStats struct {
	TotalDistance float64    `json:"totalDistance"` // miles
	TotalTime     float64    `json:"totalTime"`     // hours
	Legs          []RouteLeg `json:"legs"`
}

// RouteLeg describes one segment between consecutive waypoints.
type RouteLeg struct {
	Distance LegMetric `json:"distance"`
	Duration LegMetric `json:"duration"`
}

// LegMetric pairs a human-readable rendering with the raw value.
type LegMetric struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// RouteRequest is the payload submitted to routes/calculate.
type RouteRequest struct {
	Waypoints []Waypoint `json:"waypoints"`
}

package domain

import "strings"

// Route identifies the page currently displayed.
type Route string

const (
	RouteHome       Route = "home"
	RouteEvaluate   Route = "evaluate"
	RouteAnalyze    Route = "analyze"
	RoutePlanning   Route = "planning"
	RouteDiscussion Route = "discussion"
	RouteTheory     Route = "theory"
)

// Routes lists every addressable page in menu order.
var Routes = []Route{
	RouteHome,
	RouteEvaluate,
	RouteAnalyze,
	RoutePlanning,
	RouteDiscussion,
	RouteTheory,
}

// ParseRoute maps a location fragment (with or without the leading '#') to a
// route. Anything unrecognized resolves to home.
func ParseRoute(fragment string) Route {
	token := Route(strings.TrimPrefix(strings.TrimSpace(fragment), "#"))
	for _, r := range Routes {
		if r == token {
			return r
		}
	}
	return RouteHome
}

package app

import "feedback-coach/internal/domain"

// Navigator holds the current route and the mobile menu flag.
type Navigator struct {
	current  domain.Route
	menuOpen bool
}

type NavView struct {
	Route    domain.Route `json:"route"`
	MenuOpen bool         `json:"menuOpen"`
}

func NewNavigator() *Navigator {
	return &Navigator{current: domain.RouteHome}
}

func (n *Navigator) Current() domain.Route {
	return n.current
}

// Navigate switches to route (normalized through ParseRoute) and closes the menu.
// It returns the route that was left and whether the route changed.
func (n *Navigator) Navigate(route domain.Route) (domain.Route, bool) {
	previous := n.current
	n.current = domain.ParseRoute(string(route))
	n.menuOpen = false
	return previous, previous != n.current
}

// HashChanged applies an externally observed fragment.
func (n *Navigator) HashChanged(fragment string) (domain.Route, bool) {
	return n.Navigate(domain.ParseRoute(fragment))
}

func (n *Navigator) ToggleMenu() {
	n.menuOpen = !n.menuOpen
}

func (n *Navigator) View() NavView {
	return NavView{Route: n.current, MenuOpen: n.menuOpen}
}

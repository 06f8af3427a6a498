package rroute

import (
	"sort"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rroute/core/rtr"
)

// RoutesOverview renders the registered routes as a standalone HTML
// page - handy to mount on a debug endpoint of the host server.
func (r *Router[T]) RoutesOverview() string {
	routes := r.ListRoutes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	b := element.NewBuilder()

	b.Html().R(
		b.Head().R(
			b.Title().T("Registered Routes"),
			b.Style().T(`
				body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
				.route { display: flex; gap: 1em; border-bottom: 1px solid #ddd; padding: 6px 0; }
				.route strong { min-width: 5em; }
				.route .path { min-width: 20em; }
			`),
		),
		b.Body().R(
			b.H1().T("Registered Routes"),
			element.RenderComponents(b, routeRows{Routes: routes}),
		),
	)

	return b.String()
}

// routeRows is a small element component emitting one line per route.
type routeRows struct {
	Routes []rtr.RouteList
}

func (rr routeRows) Render(b *element.Builder) any {
	for _, route := range rr.Routes {
		b.DivClass("route").R(
			b.Strong().T(route.Method),
			b.DivClass("path").T(route.Path),
			b.DivClass("handler").T(route.HandlerRef),
		)
	}
	return nil
}

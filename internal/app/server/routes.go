package server

import "net/http"

type Request struct {
	Method string
	Path   string
}

type Response struct {
	StatusCode int
	Body       string
}

type HandlerFunc func(Request) Response

type routeKey struct {
	method string
	path   string
}

// RouteTable maps an exact (method, path) pair to a handler. It must not be
// modified once the server has started.
type RouteTable struct {
	routes   map[routeKey]HandlerFunc
	notFound HandlerFunc
}

func NewRouteTable() *RouteTable {
	return &RouteTable{
		routes:   make(map[routeKey]HandlerFunc),
		notFound: notFoundHandler,
	}
}

// NewGreetingRoutes builds the service's only route, GET / answering with
// greeting.
func NewGreetingRoutes(greeting string) *RouteTable {
	rt := NewRouteTable()
	rt.Handle(http.MethodGet, "/", greetingHandler(greeting))
	return rt
}

func (rt *RouteTable) Handle(method, path string, h HandlerFunc) {
	rt.routes[routeKey{method: method, path: path}] = h
}

func (rt *RouteTable) Lookup(method, path string) (HandlerFunc, bool) {
	h, ok := rt.routes[routeKey{method: method, path: path}]
	return h, ok
}

func (rt *RouteTable) Len() int {
	return len(rt.routes)
}

// Dispatch runs the handler registered for req, or the not-found handler.
// A zero status code is reported as 200.
func (rt *RouteTable) Dispatch(req Request) Response {
	h, ok := rt.Lookup(req.Method, req.Path)
	if !ok {
		h = rt.notFound
	}
	resp := h(req)
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	return resp
}

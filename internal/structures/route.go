package structures

import "net/http"

type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}

// Pattern is the method-qualified form understood by http.ServeMux,
// letting GET and POST handlers share one path.
func (r Route) Pattern() string {
	return r.Method + " " + r.Url
}

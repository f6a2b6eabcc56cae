// Package middleware provides observability wrappers for active-sibling
// resolution.
//
// Wrappers decorate a Resolver (implemented by *viewset.Set) and preserve
// its semantics exactly; they only observe.
//
//	set := viewset.New("/", []string{"/", "users/:id"})
//
//	resolver := middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	)(set)
//
//	resolver = middleware.OpenTelemetry(
//	    middleware.WithTracerName("myapp"),
//	)(resolver)
//
//	active := resolver.Resolve(location, viewset.NoneActive)
//
// Expose the Prometheus metrics endpoint with promhttp.Handler(), and
// configure the global OpenTelemetry tracer provider in main() before
// resolving.
package middleware

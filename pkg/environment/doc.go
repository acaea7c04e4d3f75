// Package environment propagates the application environment (development,
// staging, production) through configuration, context.Context and logs.
//
// Parse turns a configuration value such as APP_ENV into an Environment.
// Middleware stores it on every request context and FromContext reads it back:
//
//	env := environment.Parse(cfg.Env)
//	handler = environment.Middleware(env)(handler)
//
//	if environment.IsDevelopment(r.Context()) {
//	    // expose debug details
//	}
//
// Missing values result in the zero value ("").
package environment

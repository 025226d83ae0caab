// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register and initialize features (modules) at startup.
// Each feature implements the Feature interface, which defines its lifecycle hooks
// and route registration logic.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// The greeting route is delivered as such a feature, which keeps the server package
// free of any knowledge about what the routes answer.
package loader

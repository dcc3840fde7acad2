// Package loader registers features and mounts their routes.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager loads enabled features in registration order.
package loader

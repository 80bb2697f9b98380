package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters (got %d)", len(c.Auth.TokenSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	seen := make(map[string]bool, len(c.Intersections))
	for _, in := range c.Intersections {
		if in.ID == "" {
			return fmt.Errorf("intersections: entry with empty id")
		}
		if seen[in.ID] {
			return fmt.Errorf("intersections: duplicate id %q", in.ID)
		}
		seen[in.ID] = true

		if in.List1 == "" || in.List2 == "" {
			return fmt.Errorf("intersections: %q must name both lists", in.ID)
		}
		if in.List1 == in.List2 {
			return fmt.Errorf("intersections: %q intersects list %q with itself", in.ID, in.List1)
		}
	}

	return nil
}

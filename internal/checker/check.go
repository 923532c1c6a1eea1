package checker

// Run executes all three analyzer phases over c's translation units in
// deterministic order: stub construction, declaration gathering, then
// semantic validation. Phase boundaries are soft for diagnostics (phase 3
// still runs even if phase 2 produced errors, since unknown-type
// parameters are simply absent rather than malformed) but the caller
// decides success purely by whether any diagnostics were accumulated.
func (c *Context) Run() {
	for _, id := range c.Order {
		c.StubUnit(id)
	}

	for _, id := range c.Order {
		c.GatherUnit(id)
	}

	c.protocolsManagersAcyclic()
	for _, id := range c.Order {
		c.ValidateUnit(id)
	}
}

package react

// connector is the two-state lifecycle of a derived node: Disconnected
// (no upstream connection) and Connected (exactly one). A derived node
// holds its upstream connection if and only if it has listeners of its
// own, so an unobserved Map/Filter/FlatMap chain costs its sources
// nothing. attach and detach are driven by the node's own dispatcher
// hooks on the 0->1 and 1->0 listener-count transitions; detaching
// cascades upstream through the source's own hooks.
type connector struct {
	wire func() Connection
	conn Connection
}

func (c *connector) attach() {
	if c.conn == nil {
		c.conn = c.wire()
	}
}

func (c *connector) detach() {
	if c.conn != nil {
		c.conn.Dispose()
		c.conn = nil
	}
}

func (c *connector) connected() bool {
	return c.conn != nil
}

package react

// Connection is the handle for one registered listener. Its first Dispose
// removes exactly that listener; any later Dispose is a no-op. A
// Connection does not own the state its listener closes over.
type Connection interface {
	Dispose()
}

type nopConnection struct{}

func (nopConnection) Dispose() {}

// NopConnection is a shared do-nothing Connection. It holds no resource,
// so a single process-wide instance is safe to hand out everywhere.
var NopConnection Connection = nopConnection{}

// Dispose releases conn if it is non-nil.
func Dispose(conn Connection) {
	if conn != nil {
		conn.Dispose()
	}
}

type funcConnection struct {
	fn func()
}

func (c *funcConnection) Dispose() {
	if c.fn != nil {
		fn := c.fn
		c.fn = nil
		fn()
	}
}

// ConnectionFunc adapts a cleanup function to a Connection that runs it at
// most once.
func ConnectionFunc(fn func()) Connection {
	return &funcConnection{fn: fn}
}

type joinedConnection struct {
	conns []Connection
}

func (j *joinedConnection) Dispose() {
	conns := j.conns
	j.conns = nil

	for _, c := range conns {
		Dispose(c)
	}
}

// Join bundles several connections into one. Disposing the result disposes
// every member once, in the order given.
func Join(conns ...Connection) Connection {
	return &joinedConnection{conns: conns}
}

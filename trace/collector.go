package trace

import (
	"context"
	"time"
)

type contextKey struct{}

// Collector accumulates Node entries as a stack during a single traced
// parse, LIFO, mirroring the origin's thread-local collector but
// carried explicitly on a context.Context.
type Collector struct {
	stack     []*Node
	baseline  time.Time
	unixMicro int64
	finished  *Node
}

// NewContext returns a context carrying a fresh, enabled Collector.
// Enter, ExitSuccess and ExitFailure do nothing on a context without a
// Collector, so passing context.Background() is the untraced path.
func NewContext(ctx context.Context) context.Context {
	c := &Collector{baseline: time.Now(), unixMicro: time.Now().UnixMicro()}
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the Collector carried on ctx, if any.
func FromContext(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(contextKey{}).(*Collector)
	return c, ok
}

// Enabled reports whether ctx carries an active Collector.
func Enabled(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

func (c *Collector) elapsed() time.Duration {
	return time.Since(c.baseline)
}

// Enter pushes a new in-progress node for the named parser function.
func Enter(ctx context.Context, name, input string) {
	c, ok := FromContext(ctx)
	if !ok {
		return
	}
	c.stack = append(c.stack, NewNode(name, input, c.elapsed()))
}

// ExitSuccess closes the top-of-stack node as a success and attaches it
// to its parent, or sets it as the trace root if the stack is now
// empty.
func ExitSuccess(ctx context.Context, consumed int, preview string) {
	c, ok := FromContext(ctx)
	if !ok || len(c.stack) == 0 {
		return
	}
	n := c.pop()
	n.Success(c.elapsed(), consumed, preview)
	c.attach(n)
}

// ExitFailure closes the top-of-stack node as a failure and attaches it
// to its parent, or sets it as the trace root if the stack is now
// empty.
func ExitFailure(ctx context.Context, err string) {
	c, ok := FromContext(ctx)
	if !ok || len(c.stack) == 0 {
		return
	}
	n := c.pop()
	n.Fail(c.elapsed(), err)
	c.attach(n)
}

func (c *Collector) pop() *Node {
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return n
}

func (c *Collector) attach(n *Node) {
	if len(c.stack) == 0 {
		c.finished = n
		return
	}
	parent := c.stack[len(c.stack)-1]
	parent.AddChild(n)
}

// Finish returns the completed Trace for ctx's input, or a default
// empty-root trace if no node ever completed (e.g. tracing was enabled
// but the traced call panicked before closing).
func Finish(ctx context.Context, input string) *Trace {
	c, ok := FromContext(ctx)
	if !ok {
		return &Trace{Input: input, Root: NewNode("root", input, 0)}
	}
	root := c.finished
	if root == nil {
		root = NewNode("root", input, 0)
	}
	return &Trace{Input: input, Root: root, BaselineUnixMic: c.unixMicro}
}

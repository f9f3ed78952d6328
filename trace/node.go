// Package trace records a tree of parser attempts for diagnostic
// replay: which grammar rules were tried at which offsets, what
// succeeded, and what failed and why. The collector is carried on a
// context.Context rather than a package-level variable, since Go has
// no implicit per-goroutine storage to mirror the origin's
// thread-local design.
package trace

import "time"

// Outcome is the result of one traced parse attempt.
type Outcome struct {
	Status   OutcomeStatus
	Consumed int    // bytes of input consumed, when Status is Success
	Preview  string // short preview of the parsed value, when Status is Success
	Err      string // failure message, when Status is Failure
}

// OutcomeStatus enumerates the terminal states of a traced node.
type OutcomeStatus int

const (
	// Incomplete means the node was entered but never closed -- a bug
	// in the traced parser if it survives to the final tree.
	Incomplete OutcomeStatus = iota
	Success
	Failure
)

// Node is one entry in the parse trace tree: a named parser function,
// the input it was offered, its outcome, and its children in call
// order.
type Node struct {
	Name      string
	Input     string
	Children  []*Node
	Outcome   Outcome
	StartedAt time.Duration // offset from the trace's baseline
	EndedAt   time.Duration
}

// NewNode starts an in-progress node.
func NewNode(name, input string, started time.Duration) *Node {
	return &Node{Name: name, Input: input, Outcome: Outcome{Status: Incomplete}, StartedAt: started}
}

// Success closes the node with a successful outcome.
func (n *Node) Success(ended time.Duration, consumed int, preview string) {
	n.EndedAt = ended
	n.Outcome = Outcome{Status: Success, Consumed: consumed, Preview: preview}
}

// Fail closes the node with a failure outcome.
func (n *Node) Fail(ended time.Duration, err string) {
	n.EndedAt = ended
	n.Outcome = Outcome{Status: Failure, Err: err}
}

// Duration reports how long the node's attempt took.
func (n *Node) Duration() time.Duration {
	return n.EndedAt - n.StartedAt
}

// AddChild appends a child node in call order.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Trace is a complete parse trace: the original input and its root
// node, plus the baseline instants used to compute both relative node
// timings and absolute Jaeger span start times.
type Trace struct {
	Input           string
	Root            *Node
	BaselineUnixMic int64
}

// WithResult pairs a Trace with the value the parse produced, mirroring
// the origin's ParseWithTrace wrapper.
type WithResult[T any] struct {
	Result T
	Trace  *Trace
}

// Package trace defines the optional observer every matcher pushes progress
// events to. It generalizes the OnVisit/OnEnqueue hook idiom used by the
// teacher's traversal algorithms into a single collaborator interface so a
// host UI, a visualization side-channel, or a benchmark harness can observe
// a run without the matcher depending on any of them.
//
// Callers that have nothing to observe may pass nil or NoopSink{}; every
// matcher substitutes NoopSink{} for nil via Or, and no event changes
// behavior, only visible side effects (§6).
package trace

// Color is an opaque hint a sink may use to render a pick event
// (e.g. "S-label", "T-label", "matched"). The matching algorithms do not
// interpret it; they only forward the string a sink consumer defines.
type Color string

// Sink receives progress events from a running matcher. Every method is
// optional from the algorithm's perspective: NoopSink satisfies this
// contract by doing nothing. Commit denotes a displayable frame boundary
// and must be idempotent.
type Sink interface {
	// Step announces one unit of visible progress under the given name.
	Step(name string)
	// Message carries a free-form human-readable note.
	Message(text string)
	// Data attaches a named payload to the current frame.
	Data(name string, payload interface{})
	// CurrentNode highlights the vertex currently being processed.
	CurrentNode(v int)
	// CurrentEdge highlights the edge currently being processed.
	CurrentEdge(edgeIndex int)
	// PickNode marks a vertex with a color for the next committed frame.
	PickNode(v int, color Color)
	// PickEdge marks an edge with a color for the next committed frame.
	PickEdge(edgeIndex int, color Color)
	// RemoveHighlighting clears all pending Pick* marks.
	RemoveHighlighting()
	// AddLegend attaches a color-to-label legend for the current frame.
	AddLegend(legend map[Color]string)
	// Commit closes the current frame. Idempotent: committing twice in a
	// row with no events between is equivalent to committing once.
	Commit()
}

// NoopSink is the default Sink: every method is a no-op. Matchers invoked
// with a nil sink substitute NoopSink{} internally so call sites never need
// a nil check.
type NoopSink struct{}

func (NoopSink) Step(string)                     {}
func (NoopSink) Message(string)                  {}
func (NoopSink) Data(string, interface{})        {}
func (NoopSink) CurrentNode(int)                 {}
func (NoopSink) CurrentEdge(int)                 {}
func (NoopSink) PickNode(int, Color)             {}
func (NoopSink) PickEdge(int, Color)             {}
func (NoopSink) RemoveHighlighting()             {}
func (NoopSink) AddLegend(map[Color]string)      {}
func (NoopSink) Commit()                         {}

// Or returns sink if non-nil, otherwise NoopSink{}. Matchers call this once
// at entry so the rest of the algorithm can assume a non-nil Sink.
func Or(sink Sink) Sink {
	if sink == nil {
		return NoopSink{}
	}
	return sink
}

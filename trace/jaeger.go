package trace

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// jaegerSpan mirrors the subset of the Jaeger JSON span schema this
// package emits.
type jaegerSpan struct {
	TraceID       string            `json:"traceID"`
	SpanID        string            `json:"spanID"`
	OperationName string            `json:"operationName"`
	References    []jaegerReference `json:"references"`
	StartTime     int64             `json:"startTime"`
	Duration      int64             `json:"duration"`
	Tags          []jaegerTag       `json:"tags"`
	ProcessID     string            `json:"processID"`
}

type jaegerReference struct {
	RefType string `json:"refType"`
	TraceID string `json:"traceID"`
	SpanID  string `json:"spanID"`
}

type jaegerTag struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

type jaegerProcess struct {
	ServiceName string      `json:"serviceName"`
	Tags        []jaegerTag `json:"tags"`
}

type jaegerTrace struct {
	Data []jaegerTraceData `json:"data"`
}

type jaegerTraceData struct {
	TraceID   string                   `json:"traceID"`
	Spans     []jaegerSpan             `json:"spans"`
	Processes map[string]jaegerProcess `json:"processes"`
}

// ToJaegerJSON renders t as a Jaeger trace JSON document, suitable for
// import into a Jaeger UI instance for visual inspection.
func ToJaegerJSON(t *Trace) ([]byte, error) {
	traceID := strings.ReplaceAll(uuid.New().String(), "-", "")
	var spans []jaegerSpan
	collectSpans(t, t.Root, traceID, "", &spans)

	doc := jaegerTrace{Data: []jaegerTraceData{{
		TraceID: traceID,
		Spans:   spans,
		Processes: map[string]jaegerProcess{
			"p1": {ServiceName: "ingredient-parser", Tags: []jaegerTag{}},
		},
	}}}
	return json.MarshalIndent(doc, "", "  ")
}

func collectSpans(t *Trace, n *Node, traceID, parentSpanID string, out *[]jaegerSpan) string {
	spanID := strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
	startTime := t.BaselineUnixMic + n.StartedAt.Microseconds()
	duration := n.Duration().Microseconds()

	tags := []jaegerTag{
		{Key: "input", Type: "string", Value: n.Input},
	}
	switch n.Outcome.Status {
	case Success:
		tags = append(tags,
			jaegerTag{Key: "status", Type: "string", Value: "success"},
			jaegerTag{Key: "consumed", Type: "int64", Value: strconv.Itoa(n.Outcome.Consumed)},
			jaegerTag{Key: "output", Type: "string", Value: n.Outcome.Preview},
		)
	case Failure:
		tags = append(tags,
			jaegerTag{Key: "status", Type: "string", Value: "failure"},
			jaegerTag{Key: "error.message", Type: "string", Value: n.Outcome.Err},
		)
	default:
		tags = append(tags, jaegerTag{Key: "status", Type: "string", Value: "incomplete"})
	}

	span := jaegerSpan{
		TraceID:       traceID,
		SpanID:        spanID,
		OperationName: n.Name,
		StartTime:     startTime,
		Duration:      duration,
		Tags:          tags,
		ProcessID:     "p1",
	}
	if parentSpanID != "" {
		span.References = []jaegerReference{{RefType: "CHILD_OF", TraceID: traceID, SpanID: parentSpanID}}
	}
	*out = append(*out, span)

	for _, child := range n.Children {
		collectSpans(t, child, traceID, spanID, out)
	}
	return spanID
}


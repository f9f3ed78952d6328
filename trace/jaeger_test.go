package trace

import (
	"encoding/json"
	"testing"
)

func TestToJaegerJSONShapeAndNesting(t *testing.T) {
	tr := buildSampleTrace()
	tr.BaselineUnixMic = 1_700_000_000_000_000

	raw, err := ToJaegerJSON(tr)
	if err != nil {
		t.Fatalf("ToJaegerJSON: %v", err)
	}

	var doc jaegerTrace
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Data) != 1 {
		t.Fatalf("Data entries = %d, want 1", len(doc.Data))
	}
	data := doc.Data[0]
	if len(data.Spans) != 2 {
		t.Fatalf("Spans = %d, want 2 (root + one child)", len(data.Spans))
	}

	var root, child *jaegerSpan
	for i := range data.Spans {
		s := &data.Spans[i]
		if s.OperationName == "parseOneMeasurement" {
			root = s
		}
		if s.OperationName == "parseSingleMeasurement" {
			child = s
		}
	}
	if root == nil || child == nil {
		t.Fatalf("expected both spans present, got %+v", data.Spans)
	}
	if len(root.References) != 0 {
		t.Errorf("root span should carry no references, got %+v", root.References)
	}
	if len(child.References) != 1 || child.References[0].SpanID != root.SpanID {
		t.Errorf("child span should reference root's SpanID, got %+v", child.References)
	}
	if root.TraceID != data.TraceID || child.TraceID != data.TraceID {
		t.Errorf("both spans should carry the trace's TraceID")
	}
}

func TestToJaegerJSONFailureTags(t *testing.T) {
	root := NewNode("parseUnit", "xyz", 0)
	root.Fail(1, "unknown unit")
	tr := &Trace{Input: "xyz", Root: root}

	raw, err := ToJaegerJSON(tr)
	if err != nil {
		t.Fatalf("ToJaegerJSON: %v", err)
	}
	var doc jaegerTrace
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	span := doc.Data[0].Spans[0]
	var foundStatus, foundError bool
	for _, tag := range span.Tags {
		if tag.Key == "status" && tag.Value == "failure" {
			foundStatus = true
		}
		if tag.Key == "error.message" && tag.Value == "unknown unit" {
			foundError = true
		}
	}
	if !foundStatus || !foundError {
		t.Fatalf("expected failure status and error.message tags, got %+v", span.Tags)
	}
}

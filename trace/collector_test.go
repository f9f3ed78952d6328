package trace

import (
	"context"
	"testing"
)

func TestEnabledReflectsContext(t *testing.T) {
	if Enabled(context.Background()) {
		t.Fatal("bare context.Background() must not carry a Collector")
	}
	ctx := NewContext(context.Background())
	if !Enabled(ctx) {
		t.Fatal("NewContext should produce an enabled context")
	}
}

func TestEnterExitWithoutCollectorIsNoop(t *testing.T) {
	ctx := context.Background()
	Enter(ctx, "parseUnit", "cups")
	ExitSuccess(ctx, 4, "cup")
	tr := Finish(ctx, "cups")
	if tr.Root.Name != "root" {
		t.Fatalf("Finish on an untraced context should yield an empty root, got %q", tr.Root.Name)
	}
}

func TestSingleNodeBecomesRoot(t *testing.T) {
	ctx := NewContext(context.Background())
	Enter(ctx, "parseSingleMeasurement", "2 cups flour")
	ExitSuccess(ctx, 8, "2 cup")
	tr := Finish(ctx, "2 cups flour")

	if tr.Root.Name != "parseSingleMeasurement" {
		t.Fatalf("Root.Name = %q, want %q", tr.Root.Name, "parseSingleMeasurement")
	}
	if tr.Root.Outcome.Status != Success {
		t.Fatalf("Root.Outcome.Status = %v, want Success", tr.Root.Outcome.Status)
	}
	if tr.Root.Outcome.Consumed != 8 {
		t.Errorf("Root.Outcome.Consumed = %d, want 8", tr.Root.Outcome.Consumed)
	}
}

func TestNestedCallsAttachAsChildren(t *testing.T) {
	ctx := NewContext(context.Background())
	Enter(ctx, "parseOneMeasurement", "2 cups flour")
	Enter(ctx, "parseSingleMeasurement", "2 cups flour")
	Enter(ctx, "parseUnit", "cups flour")
	ExitSuccess(ctx, 4, "cup")
	ExitSuccess(ctx, 7, "2 cup")
	ExitSuccess(ctx, 7, "2 cup")
	tr := Finish(ctx, "2 cups flour")

	if tr.Root.Name != "parseOneMeasurement" {
		t.Fatalf("Root.Name = %q, want %q", tr.Root.Name, "parseOneMeasurement")
	}
	if len(tr.Root.Children) != 1 || tr.Root.Children[0].Name != "parseSingleMeasurement" {
		t.Fatalf("expected one child parseSingleMeasurement, got %+v", tr.Root.Children)
	}
	grandchildren := tr.Root.Children[0].Children
	if len(grandchildren) != 1 || grandchildren[0].Name != "parseUnit" {
		t.Fatalf("expected one grandchild parseUnit, got %+v", grandchildren)
	}
}

func TestFailedAlternativeRecordsError(t *testing.T) {
	ctx := NewContext(context.Background())
	Enter(ctx, "parseOneMeasurement", "garlic")
	Enter(ctx, "parseSingleMeasurement", "garlic")
	ExitFailure(ctx, "no leading value")
	Enter(ctx, "parseUnitOnly", "garlic")
	ExitFailure(ctx, "not a unit")
	ExitFailure(ctx, "all alternatives failed")
	tr := Finish(ctx, "garlic")

	if tr.Root.Outcome.Status != Failure {
		t.Fatalf("Root.Outcome.Status = %v, want Failure", tr.Root.Outcome.Status)
	}
	if len(tr.Root.Children) != 2 {
		t.Fatalf("expected two failed alternatives recorded, got %d", len(tr.Root.Children))
	}
	for _, c := range tr.Root.Children {
		if c.Outcome.Status != Failure {
			t.Errorf("child %q Outcome.Status = %v, want Failure", c.Name, c.Outcome.Status)
		}
	}
}

func TestFinishWithoutAnyNodeYieldsEmptyRoot(t *testing.T) {
	ctx := NewContext(context.Background())
	tr := Finish(ctx, "untouched")
	if tr.Root.Name != "root" || tr.Root.Outcome.Status != Incomplete {
		t.Fatalf("expected a fresh incomplete root, got %+v", tr.Root)
	}
}

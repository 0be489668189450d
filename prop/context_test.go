package prop

import "testing"

func TestContextTagCounts(t *testing.T) {
	ctx := NewContext()
	for i := 0; i < 10; i++ {
		ctx.countExample()
		ctx.Classify(i%2 == 0, "even")
	}
	counts := ctx.TagCounts()
	if len(counts) != 1 {
		t.Fatalf("expected 1 tag, got %d", len(counts))
	}
	if counts[0].Label != "even" || counts[0].Count != 5 {
		t.Fatalf("got %+v, want {even 5 ...}", counts[0])
	}
}

func TestContextStatSummary(t *testing.T) {
	ctx := NewContext()
	ctx.Stat("len", 1)
	ctx.Stat("len", 3)
	ctx.Stat("len", 5)
	summaries := ctx.StatSummaries()
	if len(summaries) != 1 {
		t.Fatalf("expected 1 stat, got %d", len(summaries))
	}
	s := summaries[0]
	if s.Min != 1 || s.Max != 5 || s.Mean != 3 {
		t.Fatalf("got %+v, want min=1 max=5 mean=3", s)
	}
}

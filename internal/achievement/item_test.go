package achievement

import "testing"

func TestFromParallelStartsInSync(t *testing.T) {
	items := FromParallel([]string{"a", "b"}, []bool{true, false}, []float32{1.5, 99})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Pending() {
			t.Fatalf("expected %s to start without a pending delta", item.Name)
		}
		if item.Status != Unchanged {
			t.Fatalf("expected unchanged status, got %v", item.Status)
		}
	}
	if !items[0].Selected || items[1].Selected {
		t.Fatalf("expected selection to mirror unlocked state, got %#v", items)
	}
	if items[1].Percentage != 99 {
		t.Fatalf("expected percentage 99, got %v", items[1].Percentage)
	}
}

func TestCounts(t *testing.T) {
	done, total := Counts([]Item{{Unlocked: true}, {}, {Unlocked: true}})
	if done != 2 || total != 3 {
		t.Fatalf("expected 2/3, got %d/%d", done, total)
	}
}

func TestTierFor(t *testing.T) {
	cases := map[float32]Tier{
		0.5:  Legendary,
		1:    Legendary,
		9.9:  Epic,
		25:   Rare,
		49.9: Uncommon,
		50.1: Common,
	}
	for pct, want := range cases {
		if got := TierFor(pct); got != want {
			t.Fatalf("TierFor(%v): expected %v, got %v", pct, want, got)
		}
	}
}

func TestCompletionTier(t *testing.T) {
	if got := CompletionTier(0, 0); got != Common {
		t.Fatalf("expected common for empty app, got %v", got)
	}
	if got := CompletionTier(95, 100); got != Legendary {
		t.Fatalf("expected legendary, got %v", got)
	}
	if got := CompletionTier(30, 100); got != Uncommon {
		t.Fatalf("expected uncommon, got %v", got)
	}
}

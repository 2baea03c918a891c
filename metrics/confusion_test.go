package metrics

import "testing"

func TestPercentagesArithmetic(t *testing.T) {
	c := Confusion{TP: 3, FP: 1, FN: 2, TN: 4}
	p := c.Percentages()

	want := Percentages{Se: 60, Sp: 80, PPV: 75, ACC: 70, validSe: true, validSp: true, validPPV: true, validACC: true}
	if p != want {
		t.Fatalf("Percentages = %+v, want %+v", p, want)
	}
}

func TestPercentagesZeroOnDegenerateDivisor(t *testing.T) {
	c := Confusion{}
	p := c.Percentages()

	if p.Se != 0 || p.Sp != 0 || p.PPV != 0 || p.ACC != 0 {
		t.Fatalf("Percentages = %+v, want all zero", p)
	}
	if p.validSe || p.validSp || p.validPPV || p.validACC {
		t.Fatalf("Percentages = %+v, want no metric marked valid", p)
	}
}

func TestObserve(t *testing.T) {
	tests := []struct {
		actual, predicted bool
		field             string
	}{
		{true, true, "TP"},
		{false, true, "FP"},
		{true, false, "FN"},
		{false, false, "TN"},
	}

	for _, tt := range tests {
		var c Confusion
		c.Observe(tt.actual, tt.predicted)
		if c.Total() != 1 {
			t.Fatalf("Observe(%v,%v): total = %d, want 1", tt.actual, tt.predicted, c.Total())
		}
		got := map[string]int64{"TP": c.TP, "FP": c.FP, "FN": c.FN, "TN": c.TN}[tt.field]
		if got != 1 {
			t.Fatalf("Observe(%v,%v): %s = %d, want 1", tt.actual, tt.predicted, tt.field, got)
		}
	}
}

func TestMetricIdentities(t *testing.T) {
	c := Confusion{TP: 10, FP: 5, FN: 3, TN: 20}
	p := c.Percentages()

	if c.Total() != 38 {
		t.Fatalf("total = %d, want 38", c.Total())
	}
	for _, v := range []int64{p.Se, p.Sp, p.PPV, p.ACC} {
		if v < 0 || v > 100 {
			t.Fatalf("metric %d out of [0,100]", v)
		}
	}
}

func TestAverageExcludesUndefinedRecords(t *testing.T) {
	defined := Confusion{TP: 5, TN: 5}.Percentages()   // all denominators positive
	undefinedSe := Confusion{TN: 10}.Percentages()     // TP+FN == 0 -> Se undefined

	avg := Average([]Percentages{defined, undefinedSe})

	// Se should average only over `defined` (Se=100), not be dragged to 50
	// by counting undefinedSe's zero value.
	if avg.Se != defined.Se {
		t.Fatalf("average Se = %d, want %d (undefined record excluded)", avg.Se, defined.Se)
	}
}

package watchlist

import (
	"errors"
	"math"
	"testing"
)

func TestBudgetFromHours(t *testing.T) {
	tests := []struct {
		name    string
		hours   float64
		want    int
		wantErr bool
	}{
		{"whole hours", 2, 120, false},
		{"fractional", 2.5, 150, false},
		{"zero", 0, 0, true},
		{"negative", -1, 0, true},
		{"nan", math.NaN(), 0, true},
		{"infinite", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BudgetFromHours(tt.hours)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBudget) {
					t.Errorf("BudgetFromHours(%v) error = %v, want ErrInvalidBudget", tt.hours, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("BudgetFromHours(%v) error = %v", tt.hours, err)
			}
			if got != tt.want {
				t.Errorf("BudgetFromHours(%v) = %d, want %d", tt.hours, got, tt.want)
			}
		})
	}
}

func TestEvaluate_CutLine(t *testing.T) {
	items := []Item{
		{ID: "a", Runtime: "120 min", Rating: 8.0},
		{ID: "b", Runtime: "90 min", Rating: 6.0},
	}
	budget := 150

	eval := Evaluate(items, &budget)

	if !eval.Items[0].Fits {
		t.Error("item a should fit (cumulative 120 <= 150)")
	}
	if eval.Items[0].CumulativeMinutes != 120 {
		t.Errorf("item a cumulative = %d, want 120", eval.Items[0].CumulativeMinutes)
	}
	if eval.Items[1].Fits {
		t.Error("item b should not fit (cumulative 210 > 150)")
	}
	if eval.Items[1].CumulativeMinutes != 210 {
		t.Errorf("item b cumulative = %d, want 210", eval.Items[1].CumulativeMinutes)
	}
	if eval.TotalMinutes != 210 {
		t.Errorf("TotalMinutes = %d, want 210", eval.TotalMinutes)
	}
	if eval.OverBudgetBy != 60 {
		t.Errorf("OverBudgetBy = %d, want 60", eval.OverBudgetBy)
	}
}

func TestEvaluate_NilBudgetMeansNoConstraint(t *testing.T) {
	items := []Item{
		{ID: "a", Runtime: "500 min"},
		{ID: "b", Runtime: "500 min"},
	}

	eval := Evaluate(items, nil)
	for i, ie := range eval.Items {
		if !ie.Fits {
			t.Errorf("Items[%d].Fits = false, want true with nil budget", i)
		}
	}
	if eval.OverBudgetBy != 0 {
		t.Errorf("OverBudgetBy = %d, want 0", eval.OverBudgetBy)
	}
	if eval.TotalMinutes != 1000 {
		t.Errorf("TotalMinutes = %d, want 1000", eval.TotalMinutes)
	}
}

func TestEvaluate_Monotonic(t *testing.T) {
	items := []Item{
		{ID: "a", Runtime: "60 min"},
		{ID: "b", Runtime: "60 min"},
		{ID: "c", Runtime: "0 min"}, // free, but order is sacrosanct
		{ID: "d", Runtime: "60 min"},
	}
	budget := 100

	eval := Evaluate(items, &budget)

	overflowSeen := false
	for i, ie := range eval.Items {
		if !ie.Fits {
			overflowSeen = true
		}
		if overflowSeen && ie.Fits {
			t.Errorf("Items[%d] fits after an earlier overflow", i)
		}
	}
	if !overflowSeen {
		t.Fatal("expected at least one item over budget")
	}
}

func TestEvaluate_UnparseableRuntimeDefaults(t *testing.T) {
	items := []Item{{ID: "a", Runtime: "N/A"}}
	budget := 119

	eval := Evaluate(items, &budget)
	if eval.TotalMinutes != 120 {
		t.Errorf("TotalMinutes = %d, want 120 default", eval.TotalMinutes)
	}
	if eval.Items[0].Fits {
		t.Error("item should not fit a 119 minute budget with the 120 default")
	}
}

func TestEvaluate_Empty(t *testing.T) {
	budget := 60
	eval := Evaluate(nil, &budget)
	if len(eval.Items) != 0 || eval.TotalMinutes != 0 || eval.OverBudgetBy != 0 {
		t.Errorf("Evaluate(nil) = %+v, want zero values", eval)
	}
}

package hedgedtwr

import "testing"

func TestAdjustedValue_NoHedgeRatio(t *testing.T) {
	// FX = 0 neutralizes the adjustment for every hedge factor.
	for _, h := range []float64{0, 0.5, 0.9, 0.95, 1, 1.5} {
		p := Period{PortfolioValue: 123456.78, HedgeRatio: 0, HedgeFactor: h}
		if got := p.AdjustedValue(); got != p.PortfolioValue {
			t.Errorf("AdjustedValue() with FX=0, h=%v = %v, want %v", h, got, p.PortfolioValue)
		}
	}
}

func TestAdjustedValue_PerfectHedgeFactor(t *testing.T) {
	// h = 1 neutralizes the adjustment for every hedge ratio.
	for _, fx := range []float64{0, 0.25, 0.5, 1, 2} {
		p := Period{PortfolioValue: 123456.78, HedgeRatio: fx, HedgeFactor: 1}
		if got := p.AdjustedValue(); got != p.PortfolioValue {
			t.Errorf("AdjustedValue() with FX=%v, h=1 = %v, want %v", fx, got, p.PortfolioValue)
		}
	}
}

func TestAdjustedValue_FullHedgeRatio(t *testing.T) {
	// FX = 1 reaches the maximal adjustment V × h.
	for _, h := range []float64{0, 0.5, 0.9, 0.95, 1} {
		p := Period{PortfolioValue: 100000, HedgeRatio: 1, HedgeFactor: h}
		if got, want := p.AdjustedValue(), 100000*h; got != want {
			t.Errorf("AdjustedValue() with FX=1, h=%v = %v, want %v", h, got, want)
		}
	}
}

func TestAdjustedValue(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want float64
	}{
		{"half hedged", Period{PortfolioValue: 100000, HedgeRatio: 0.5, HedgeFactor: 0.95}, 97500},
		{"deeper adjustment", Period{PortfolioValue: 100000, HedgeRatio: 0.6, HedgeFactor: 0.95}, 97000},
		{"zero value", Period{PortfolioValue: 0, HedgeRatio: 0.5, HedgeFactor: 0.95}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.AdjustedValue(); got != tt.want {
				t.Errorf("AdjustedValue() = %v, want %v", got, tt.want)
			}
		})
	}
}

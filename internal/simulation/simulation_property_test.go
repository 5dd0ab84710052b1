package simulation

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// validParams builds a generator over parameter ranges that always converge
// well inside the defensive trade cap.
func validParams() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(10.0, 100000.0),
		gen.Float64Range(1.1, 100.0),
		gen.Float64Range(0.5, 100.0),
		gen.Float64Range(0.5, 10.0),
	).Map(func(values []interface{}) Parameters {
		start := values[0].(float64)
		multiplier := values[1].(float64)
		return Parameters{
			StartingBalance: start,
			TargetBalance:   start * multiplier,
			RiskPercent:     values[2].(float64),
			RewardRatio:     values[3].(float64),
		}
	})
}

// Property: the balance sequence is strictly increasing and each trade's
// balance plus profit is exactly the next trade's balance.
func TestProperty_BalanceMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("balances chain and strictly increase", prop.ForAll(
		func(p Parameters) bool {
			result, err := Run(p)
			if err != nil {
				t.Logf("unexpected error for %+v: %v", p, err)
				return false
			}
			for i := 0; i < len(result.Trades)-1; i++ {
				current := result.Trades[i]
				next := result.Trades[i+1]
				if next.Balance <= current.Balance {
					t.Logf("balance not increasing at trade %d", current.Number)
					return false
				}
				if current.Balance+current.ProfitAmount != next.Balance {
					t.Logf("balance chain broken at trade %d", current.Number)
					return false
				}
			}
			return true
		},
		validParams(),
	))

	properties.TestingRun(t)
}

// Property: totalTrades equals the sequence length and trade numbers are
// exactly 1..totalTrades with no gaps.
func TestProperty_CountConsistency(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("trade numbers are contiguous from 1", prop.ForAll(
		func(p Parameters) bool {
			result, err := Run(p)
			if err != nil {
				return false
			}
			if result.Summary.TotalTrades != len(result.Trades) {
				return false
			}
			for i, trade := range result.Trades {
				if trade.Number != i+1 {
					return false
				}
			}
			return true
		},
		validParams(),
	))

	properties.TestingRun(t)
}

// Property: the run terminates exactly when the target is reached. The
// final balance meets the target and no earlier trade did.
func TestProperty_TerminationCorrectness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("loop stops at first trade reaching target", prop.ForAll(
		func(p Parameters) bool {
			result, err := Run(p)
			if err != nil {
				return false
			}
			if result.Summary.FinalBalance < p.TargetBalance {
				return false
			}
			last := result.Trades[len(result.Trades)-1]
			if last.Balance+last.ProfitAmount != result.Summary.FinalBalance {
				return false
			}
			for _, trade := range result.Trades[:len(result.Trades)-1] {
				if trade.Balance+trade.ProfitAmount >= p.TargetBalance {
					return false
				}
			}
			return true
		},
		validParams(),
	))

	properties.TestingRun(t)
}

// Property: doubling the starting balance doubles the first trade's risk and
// profit amounts. Scaling by a power of two is exact in floating point, so
// the comparison needs no tolerance.
func TestProperty_FirstTradeRiskScaling(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("doubling balance doubles first-trade amounts", prop.ForAll(
		func(p Parameters) bool {
			doubled := p
			doubled.StartingBalance = p.StartingBalance * 2
			doubled.TargetBalance = p.TargetBalance * 2

			base, err := Run(p)
			if err != nil {
				return false
			}
			scaled, err := Run(doubled)
			if err != nil {
				return false
			}

			return scaled.Trades[0].RiskAmount == 2*base.Trades[0].RiskAmount &&
				scaled.Trades[0].ProfitAmount == 2*base.Trades[0].ProfitAmount
		},
		validParams(),
	))

	properties.TestingRun(t)
}

// Package simulation implements the perfect-execution compounding engine.
//
// Given a starting balance, a target balance, a fixed risk percentage and a
// risk-reward ratio, it computes the sequence of consecutive winning trades
// needed to grow the account from start to target. Every trade is assumed to
// win; this is a planning illustration, not a trading system.
package simulation

import (
	apperrors "github.com/1cbyc/mt5-risk-calculator/internal/errors"
)

// Default parameter values, matching the CLI defaults.
const (
	DefaultStartingBalance = 200.0
	DefaultTargetBalance   = 2000.0
	DefaultRiskPercent     = 2.0
	DefaultRewardRatio     = 3.0
)

// maxTrades caps the loop against pathological inputs (e.g. a risk percent so
// close to zero that convergence would take effectively forever).
const maxTrades = 100000

// Parameters is the immutable input bundle for one simulation run.
type Parameters struct {
	StartingBalance float64 `json:"current_balance"`
	TargetBalance   float64 `json:"target_balance"`
	RiskPercent     float64 `json:"risk_per_trade_percent"`
	RewardRatio     float64 `json:"risk_reward_ratio"`
}

// DefaultParameters returns the documented default parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		StartingBalance: DefaultStartingBalance,
		TargetBalance:   DefaultTargetBalance,
		RiskPercent:     DefaultRiskPercent,
		RewardRatio:     DefaultRewardRatio,
	}
}

// Validate checks all four parameters before any iteration runs.
func (p Parameters) Validate() error {
	if p.StartingBalance <= 0 {
		return apperrors.NewValidationError("starting_balance", p.StartingBalance, "starting balance must be positive")
	}
	if p.TargetBalance <= p.StartingBalance {
		return apperrors.NewValidationError("target_balance", p.TargetBalance, "target must exceed starting balance")
	}
	if p.RiskPercent <= 0 || p.RiskPercent > 100 {
		return apperrors.NewValidationError("risk_percent", p.RiskPercent, "risk percent out of range")
	}
	if p.RewardRatio <= 0 {
		return apperrors.NewValidationError("reward_ratio", p.RewardRatio, "reward ratio must be positive")
	}
	return nil
}

// Trade is one simulated winning trade. Balance is the account balance before
// the trade is placed.
type Trade struct {
	Number       int     `json:"trade_number"`
	Balance      float64 `json:"account_balance"`
	RiskAmount   float64 `json:"risk_amount"`
	ProfitAmount float64 `json:"profit_amount"`
}

// Summary holds the derived statistics of a completed run.
type Summary struct {
	TotalTrades     int     `json:"total_trades"`
	MaxRiskTaken    float64 `json:"max_risk_taken"`
	FinalBalance    float64 `json:"final_balance"`
	StartingBalance float64 `json:"starting_balance"`
	TargetBalance   float64 `json:"target_balance"`
}

// Result is the full output of one run: the ordered trade sequence plus the
// summary. Trades are numbered 1..TotalTrades with no gaps.
type Result struct {
	Trades  []Trade `json:"trades"`
	Summary Summary `json:"summary"`
}

// Run simulates consecutive winning trades until the balance reaches the
// target. It is a pure function of its inputs: no I/O, no shared state, safe
// to call from any goroutine.
func Run(p Parameters) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	balance := p.StartingBalance
	maxRisk := 0.0
	trades := make([]Trade, 0, 64)

	for balance < p.TargetBalance {
		if len(trades) >= maxTrades {
			return nil, apperrors.NewDivergenceError(len(trades), balance)
		}

		risk := balance * (p.RiskPercent / 100)
		profit := risk * p.RewardRatio

		trades = append(trades, Trade{
			Number:       len(trades) + 1,
			Balance:      balance,
			RiskAmount:   risk,
			ProfitAmount: profit,
		})

		// Risk grows with balance here, but an explicit maximum stays
		// correct for variants with non-monotonic balance paths.
		if risk > maxRisk {
			maxRisk = risk
		}
		balance += profit
	}

	return &Result{
		Trades: trades,
		Summary: Summary{
			TotalTrades:     len(trades),
			MaxRiskTaken:    maxRisk,
			FinalBalance:    balance,
			StartingBalance: p.StartingBalance,
			TargetBalance:   p.TargetBalance,
		},
	}, nil
}

// Package cli provides the command-line interface for the roadmap application.
package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/1cbyc/mt5-risk-calculator/internal/logging"
	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
)

func newSimulateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate the recovery roadmap",
		Long: `Simulate consecutive winning trades until the target balance is reached.

Prints one row per trade showing the balance before the trade, the amount
risked, and the profit taken, followed by a summary and a reality check.`,
		Example: `  roadmap simulate
  roadmap simulate --balance 500 --target 5000
  roadmap simulate --balance 200 --target 2000 --risk 2 --reward 3
  roadmap simulate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			params := paramsFromFlags(cmd, app)

			start := time.Now()
			result, err := simulation.Run(params)
			if err != nil {
				return err
			}
			logging.LogSimulation(app.Logger, params.StartingBalance, params.TargetBalance,
				result.Summary.TotalTrades, time.Since(start))

			if output.IsJSON() {
				return output.JSON(result)
			}

			displayResult(output, params, result)
			return nil
		},
	}

	addParameterFlags(cmd, app)

	return cmd
}

// addParameterFlags registers the four simulation parameter flags with
// defaults taken from configuration.
func addParameterFlags(cmd *cobra.Command, app *App) {
	cmd.Flags().Float64("balance", app.Config.Simulation.StartingBalance, "Current account balance")
	cmd.Flags().Float64("target", app.Config.Simulation.TargetBalance, "Target account balance")
	cmd.Flags().Float64("risk", app.Config.Simulation.RiskPercent, "Risk per trade as percentage")
	cmd.Flags().Float64("reward", app.Config.Simulation.RewardRatio, "Risk-to-reward ratio (3.0 for 1:3)")
}

func paramsFromFlags(cmd *cobra.Command, app *App) simulation.Parameters {
	balance, _ := cmd.Flags().GetFloat64("balance")
	target, _ := cmd.Flags().GetFloat64("target")
	risk, _ := cmd.Flags().GetFloat64("risk")
	reward, _ := cmd.Flags().GetFloat64("reward")

	return simulation.Parameters{
		StartingBalance: balance,
		TargetBalance:   target,
		RiskPercent:     risk,
		RewardRatio:     reward,
	}
}

func displayResult(output *Output, params simulation.Parameters, result *simulation.Result) {
	output.Bold("The Recovery Roadmap - Perfect Execution Simulation")
	output.Println()
	output.Printf("  Starting Balance:     %s\n", FormatCurrency(params.StartingBalance))
	output.Printf("  Target Balance:       %s\n", FormatCurrency(params.TargetBalance))
	output.Printf("  Risk per Trade:       %s\n", FormatPercent(params.RiskPercent))
	output.Printf("  Risk-to-Reward Ratio: %s\n", FormatRiskReward(params.RewardRatio))
	output.Println()

	table := NewTable(output, "Trade #", "Account Balance", "Risk Amount", "Profit Amount")
	for _, trade := range result.Trades {
		table.AddRow(
			strconv.Itoa(trade.Number),
			FormatCurrency(trade.Balance),
			FormatCurrency(trade.RiskAmount),
			FormatCurrency(trade.ProfitAmount),
		)
	}
	table.Render()

	summary := result.Summary
	output.Println()
	output.Bold("Summary")
	output.Printf("  Total Trades Needed: %d\n", summary.TotalTrades)
	output.Printf("  Max Risk Taken:      %s\n", FormatCurrency(summary.MaxRiskTaken))
	output.Printf("  Final Balance:       %s\n", output.Green(FormatCurrency(summary.FinalBalance)))
	output.Println()

	output.Warning("Reality check: this simulation assumes zero losses (perfect execution).")
	output.Warning("With a 50%% win rate, you would need approximately %d trades.", summary.TotalTrades*2)
}

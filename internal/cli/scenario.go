// Package cli provides the command-line interface for the roadmap application.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/1cbyc/mt5-risk-calculator/internal/logging"
	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
	"github.com/1cbyc/mt5-risk-calculator/internal/store"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Saved scenario management",
		Long:  "Save, list, run, and delete named simulation parameter sets.",
	}

	cmd.AddCommand(newScenarioSaveCmd(app))
	cmd.AddCommand(newScenarioListCmd(app))
	cmd.AddCommand(newScenarioShowCmd(app))
	cmd.AddCommand(newScenarioRunCmd(app))
	cmd.AddCommand(newScenarioDeleteCmd(app))

	return cmd
}

func requireStore(app *App) error {
	if app.Store == nil {
		return fmt.Errorf("scenario store unavailable")
	}
	return nil
}

func newScenarioSaveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a scenario",
		Long: `Save a named set of simulation parameters.

The parameters are validated before saving, so a stored scenario always runs.`,
		Example: `  roadmap scenario save recovery --balance 200 --target 2000
  roadmap scenario save aggressive --risk 5 --reward 4 --notes "high risk"
  roadmap scenario save recovery --balance 300 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			name := args[0]
			params := paramsFromFlags(cmd, app)
			notes, _ := cmd.Flags().GetString("notes")
			force, _ := cmd.Flags().GetBool("force")

			if err := params.Validate(); err != nil {
				return err
			}

			scenario := &store.Scenario{
				Name:      name,
				Params:    params,
				Notes:     notes,
				CreatedAt: time.Now().UTC(),
			}

			if err := app.Store.SaveScenario(ctx, scenario, force); err != nil {
				output.Error("Failed to save scenario: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(scenario)
			}

			output.Success("✓ Scenario %q saved", name)
			displayScenario(output, scenario)
			return nil
		},
	}

	addParameterFlags(cmd, app)
	cmd.Flags().String("notes", "", "Notes for the scenario")
	cmd.Flags().Bool("force", false, "Overwrite an existing scenario")

	return cmd
}

func displayScenario(output *Output, sc *store.Scenario) {
	output.Printf("  Starting Balance:     %s\n", FormatCurrency(sc.Params.StartingBalance))
	output.Printf("  Target Balance:       %s\n", FormatCurrency(sc.Params.TargetBalance))
	output.Printf("  Risk per Trade:       %s\n", FormatPercent(sc.Params.RiskPercent))
	output.Printf("  Risk-to-Reward Ratio: %s\n", FormatRiskReward(sc.Params.RewardRatio))
	if sc.Notes != "" {
		output.Printf("  Notes:                %s\n", sc.Notes)
	}
}

func newScenarioListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			scenarios, err := app.Store.ListScenarios(ctx)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(scenarios)
			}

			if len(scenarios) == 0 {
				output.Dim("No saved scenarios. Use 'roadmap scenario save <name>' to create one.")
				return nil
			}

			output.Bold("Saved Scenarios")
			output.Printf("  %d scenarios\n\n", len(scenarios))

			table := NewTable(output, "Name", "Balance", "Target", "Risk", "R:R", "Created")
			for _, sc := range scenarios {
				table.AddRow(
					sc.Name,
					FormatCurrency(sc.Params.StartingBalance),
					FormatCurrency(sc.Params.TargetBalance),
					FormatPercent(sc.Params.RiskPercent),
					FormatRiskReward(sc.Params.RewardRatio),
					sc.CreatedAt.Format("02-Jan-2006 15:04"),
				)
			}
			table.Render()

			return nil
		},
	}
}

func newScenarioShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			scenario, err := app.Store.GetScenario(ctx, args[0])
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(scenario)
			}

			output.Bold("%s", scenario.Name)
			displayScenario(output, scenario)
			return nil
		},
	}
}

func newScenarioRunCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>",
		Short: "Run a saved scenario",
		Long:  "Load a saved scenario and run the simulation with its parameters.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			scenario, err := app.Store.GetScenario(ctx, args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := simulation.Run(scenario.Params)
			if err != nil {
				return err
			}
			logger := logging.WithScenario(app.Logger, scenario.Name)
			logging.LogSimulation(logger, scenario.Params.StartingBalance, scenario.Params.TargetBalance,
				result.Summary.TotalTrades, time.Since(start))

			if output.IsJSON() {
				return output.JSON(result)
			}

			displayResult(output, scenario.Params, result)
			return nil
		},
	}
}

func newScenarioDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := requireStore(app); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.Store.DeleteScenario(ctx, args[0]); err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]string{"deleted": args[0]})
			}

			output.Success("✓ Scenario %q deleted", args[0])
			return nil
		},
	}
}

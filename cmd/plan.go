package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sprintwise_backend/internal/app"
	"sprintwise_backend/internal/model"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [goals]",
	Short: "Parse goals and print a 30-day plan as JSON",
	Long: `Parse free-text goals and generate a 30-day plan, printed as JSON.

Goals are read from the argument, or from stdin when the argument is "-"
or omitted. Parsed goals must be confirmed before a plan is generated;
pass --confirm to accept them as parsed, otherwise only the parsed goals
are printed.

Example:
  sprintwise plan "Study AWS 1 hour 5 days, Gym 30 min 6 days" --confirm
  sprintwise plan "Run a 5K 3 times a week" --confirm --gift-to Sam`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		confirm, _ := cmd.Flags().GetBool("confirm")
		giftTo, _ := cmd.Flags().GetString("gift-to")

		raw, err := readGoals(cmd.InOrStdin(), args)
		if err != nil {
			exitWithError(err)
		}

		cfg, err := loadConfig()
		if err != nil {
			exitWithError(err)
		}
		services := app.NewServices(cfg)
		ctx := cmd.Context()

		parsed := services.Goals.Parse(ctx, raw)
		if len(parsed.Goals) == 0 {
			exitWithError(fmt.Errorf("no goals found in input"))
		}

		out := json.NewEncoder(cmd.OutOrStdout())
		out.SetIndent("", "  ")

		if !confirm {
			fmt.Fprintln(cmd.ErrOrStderr(), "Goals are unconfirmed; re-run with --confirm to generate the plan.")
			if err := out.Encode(parsed); err != nil {
				exitWithError(err)
			}
			return
		}

		q := &model.Questionnaire{GoalsRaw: raw, Goals: model.ConfirmGoals(parsed.Goals)}
		if giftTo != "" {
			q.GiftMode = model.GiftMode{IsGift: true, RecipientName: giftTo}
		}
		q.Normalize()
		if err := q.Validate(); err != nil {
			exitWithError(err)
		}

		plan, err := services.Plans.Generate(ctx, q)
		if err != nil {
			exitWithError(err)
		}
		if err := out.Encode(plan); err != nil {
			exitWithError(err)
		}
	},
}

func readGoals(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading goals from stdin: %w", err)
	}
	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return "", fmt.Errorf("no goals given")
	}
	return raw, nil
}

func init() {
	planCmd.Flags().Bool("confirm", false, "Confirm the parsed goals and generate the plan")
	planCmd.Flags().String("gift-to", "", "Generate the plan as a gift for this recipient")
	rootCmd.AddCommand(planCmd)
}

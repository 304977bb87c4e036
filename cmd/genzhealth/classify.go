// ABOUTME: CLI command for classifying a BMI value.
// ABOUTME: Prints Underweight, Normal, Overweight, or Obese.
package main

import (
	"fmt"
	"strconv"

	"github.com/harperreed/genzhealth/internal/models"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <bmi>",
	Short: "Classify a BMI value",
	Long: `Print the BMI category of a value.

THRESHOLDS:

  Underweight   below 18.5
  Normal        18.5 up to 25
  Overweight    25 up to 30
  Obese         30 and above

EXAMPLES:

  genzhealth classify 22.4     # Normal
  genzhealth classify 30       # Obese`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bmi, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid BMI: %s", args[0])
		}

		cat := models.ClassifyBMI(&bmi)
		if cat.IsMissing() {
			return fmt.Errorf("invalid BMI: %s", args[0])
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), cat)
		return err
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

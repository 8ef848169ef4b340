package main

import (
	"github.com/spf13/cobra"

	"github.com/vbonduro/verdearido/internal/calc"
	"github.com/vbonduro/verdearido/internal/domain"
	"github.com/vbonduro/verdearido/internal/validate"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a calculator on bare figures",
		Long: `Run the planting, diet or grazing formula without a stored farm and
print the result as JSON.`,
	}
	cmd.AddCommand(newCalcPlantingCmd(), newCalcDietCmd(), newCalcGrazingCmd())
	return cmd
}

type plantingFlags struct {
	Area float64 `json:"area" validate:"gt=0,lte=1000000"`
}

func newCalcPlantingCmd() *cobra.Command {
	var f plantingFlags
	cmd := &cobra.Command{
		Use:   "planting",
		Short: "Count the raquetes needed for an area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(f); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), calc.PlantingForArea(f.Area))
		},
	}
	cmd.Flags().Float64Var(&f.Area, "area", 0, "planted area in hectares")
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

type dietFlags struct {
	Purpose string  `json:"purpose" validate:"required,oneof=cria recria engorda leite"`
	Weight  float64 `json:"weight" validate:"gt=0,lte=2000"`
	Goal    string  `json:"goal" validate:"max=50"`
	Target  float64 `json:"target" validate:"gte=0,lte=1000"`
}

func newCalcDietCmd() *cobra.Command {
	var f dietFlags
	cmd := &cobra.Command{
		Use:   "diet",
		Short: "Formulate a daily diet for one animal",
		Long: `Formulate the daily forage ration, raquete count and supplement schedule
for one animal. A goal such as leite_20 or gmd_1_5 sets the target; --target
applies to goals that carry no number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(f); err != nil {
				return err
			}
			target := calc.ResolveTarget(f.Goal, f.Target)
			res := calc.DietFor(domain.Purpose(f.Purpose), f.Weight, f.Goal, target)
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&f.Purpose, "purpose", "", "group purpose: cria, recria, engorda or leite")
	cmd.Flags().Float64Var(&f.Weight, "weight", 0, "average live weight in kg")
	cmd.Flags().StringVar(&f.Goal, "goal", "", "production goal id")
	cmd.Flags().Float64Var(&f.Target, "target", 0, "production target when the goal carries none")
	_ = cmd.MarkFlagRequired("purpose")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

type grazingFlags struct {
	Area        float64  `json:"area" validate:"gt=0,lte=1000000"`
	Weight      float64  `json:"weight" validate:"gt=0,lte=2000"`
	Quantity    int      `json:"quantity" validate:"gt=0,lte=1000000"`
	Supplements []string `json:"supplement" validate:"max=20"`
}

func newCalcGrazingCmd() *cobra.Command {
	var f grazingFlags
	cmd := &cobra.Command{
		Use:   "grazing",
		Short: "Plan a paddock rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validate.Struct(f); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), calc.GrazingFor(f.Area, f.Weight, f.Quantity, f.Supplements))
		},
	}
	cmd.Flags().Float64Var(&f.Area, "area", 0, "paddock area in hectares")
	cmd.Flags().Float64Var(&f.Weight, "weight", 0, "average live weight in kg")
	cmd.Flags().IntVar(&f.Quantity, "quantity", 0, "number of animals")
	cmd.Flags().StringSliceVar(&f.Supplements, "supplement", nil, "supplement id, repeatable")
	for _, name := range []string{"area", "weight", "quantity"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"school-meal-api/neis"
	"school-meal-api/nutrition"
	"school-meal-api/view"
)

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	loc, err := cfg.location()
	if err != nil {
		return err
	}

	date, err := resolveDate(menuDate, time.Now(), loc)
	if err != nil {
		return fmt.Errorf("invalid --date %q: %w", menuDate, err)
	}

	client := neis.NewClient(cfg.neisConfig(), neis.WithLogger(logger.Named("neis")))
	records, err := client.Meals(cmd.Context(), date)
	return printMenu(cmd.OutOrStdout(), date, records, err)
}

// printMenu writes the meals for date, or the warning for fetchErr.
// Only fetch failures are returned; a day without meals is not an error.
func printMenu(w io.Writer, date time.Time, records []neis.MealRecord, fetchErr error) error {
	fmt.Fprintf(w, "%s\n\n", date.Format(dateLayout))

	switch {
	case errors.Is(fetchErr, neis.ErrNoMeal):
		fmt.Fprintln(w, view.NoMealWarning)
		return nil
	case fetchErr != nil:
		fmt.Fprintln(w, view.FetchFailedWarning)
		return fetchErr
	}

	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if rec.MealName != "" {
			fmt.Fprintf(w, "[%s]\n", rec.MealName)
		}
		fmt.Fprintln(w, rec.Dishes)
		fmt.Fprintln(w)

		entries, ok := nutrition.Parse(rec.NutritionRaw, rec.CalorieRaw)
		if !ok {
			fmt.Fprintln(w, view.NoNutritionCaption)
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "영양소\t값\t단위")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%.1f\t%s\n", e.Label, e.Value, e.Unit)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

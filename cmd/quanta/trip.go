package main

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/aretw0/quanta"
	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/units"
	"github.com/spf13/cobra"
)

var (
	tripKm      float64
	tripMiles   float64
	tripHours   float64
	tripMinutes float64
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Compute the average speed of a trip",
	Long: `Compute the average speed of a trip from its distance and duration.
Distance flags add up, as do duration flags.`,
	Example: `  quanta trip --km 100 --hours 1
  quanta trip --miles 26.2 --hours 3 --minutes 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		distance := units.Kilometres(tripKm).Add(quanta.Scale(tripMiles, units.Mile))
		duration := units.Hours(tripHours).Add(units.Minutes(tripMinutes))
		if !duration.Greater(quanta.Time{}) {
			return errors.New("trip duration must be positive")
		}

		speed := quanta.Quotient[dimension.Speed](distance, duration)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "distance: %.3f km (%.3f mi)\n", distance.Convert(units.Kilometre), distance.Convert(units.Mile))
		fmt.Fprintf(out, "duration: %.3f h\n", duration.Convert(units.Hour))
		fmt.Fprintf(out, "speed:    %.4f m/s | %.2f km/h | %.2f mph | %.2f kn\n",
			speed.Convert(units.MetrePerSecond),
			speed.Convert(units.KilometrePerHour),
			speed.Convert(units.MilePerHour),
			speed.Convert(units.Knot))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tripCmd)
	tripCmd.Flags().Float64Var(&tripKm, "km", 0, "Distance in kilometres")
	tripCmd.Flags().Float64Var(&tripMiles, "miles", 0, "Distance in miles")
	tripCmd.Flags().Float64Var(&tripHours, "hours", 0, "Duration in hours")
	tripCmd.Flags().Float64Var(&tripMinutes, "minutes", 0, "Duration in minutes")
}

package quanta_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/quanta"
	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/units"
)

// Example_speed computes an average speed from a distance and a duration.
func Example_speed() {
	distance := units.Kilometres(100)
	duration := units.Hours(1)

	speed := quanta.Quotient[dimension.Speed](distance, duration)

	fmt.Printf("%.4f m/s\n", speed.Value())
	fmt.Printf("%.1f km/h\n", speed.Convert(units.KilometrePerHour))
	fmt.Printf("%.2f mph\n", speed.Convert(units.MilePerHour))
	// Output:
	// 27.7778 m/s
	// 100.0 km/h
	// 62.14 mph
}

// ExampleProduct derives a force from a mass and an acceleration.
func ExampleProduct() {
	mass := units.Kilograms(1200)
	accel := quanta.Scale(3, units.MetrePerSecond2)

	force := quanta.Product[dimension.Force](mass, accel)
	fmt.Println(force)
	// Output:
	// 3600 kg·m·s⁻²
}

// ExampleReciprocal converts fuel consumption into fuel economy.
func ExampleReciprocal() {
	consumption := units.LitresPer100Km(5)
	economy := quanta.Reciprocal[dimension.Economy](1, consumption)

	fmt.Printf("%.1f mpg\n", economy.Convert(units.MilePerGallon))
	// Output:
	// 47.0 mpg
}

// ExampleNewScheduler schedules labels with time quantities and drains them in due order.
func ExampleNewScheduler() {
	s := quanta.NewScheduler()
	if _, err := s.Add(units.Milliseconds(20), "kettle boiled"); err != nil {
		log.Fatal(err)
	}
	if _, err := s.Add(units.Milliseconds(5), "kettle on"); err != nil {
		log.Fatal(err)
	}

	err := s.Drain(context.Background(), func(n quanta.Notification) {
		fmt.Println(n.Label)
	})
	if err != nil {
		log.Fatal(err)
	}
	// Output:
	// kettle on
	// kettle boiled
}

package units

import (
	"github.com/aretw0/quanta/pkg/dimension"
	"github.com/aretw0/quanta/pkg/quantity"
)

// Entry describes one unit constant for display.
type Entry struct {
	Name      string           `json:"name"`
	Symbol    string           `json:"symbol"`
	Dimension dimension.Vector `json:"dimension"`
	Value     float64          `json:"value"`
}

func entry[D dimension.Dimension](name, symbol string, q quantity.Quantity[D]) Entry {
	return Entry{Name: name, Symbol: symbol, Dimension: q.Dimension(), Value: q.Value()}
}

// Table lists every unit constant, grouped by dimension in declaration order.
// The slice is freshly allocated on each call.
func Table() []Entry {
	return []Entry{
		entry("millimetre", "mm", Millimetre),
		entry("centimetre", "cm", Centimetre),
		entry("decimetre", "dm", Decimetre),
		entry("metre", "m", Metre),
		entry("kilometre", "km", Kilometre),
		entry("inch", "in", Inch),
		entry("foot", "ft", Foot),
		entry("yard", "yd", Yard),
		entry("mile", "mi", Mile),
		entry("nautical mile", "nmi", NauticalMile),

		entry("square millimetre", "mm²", Millimetre2),
		entry("square centimetre", "cm²", Centimetre2),
		entry("square decimetre", "dm²", Decimetre2),
		entry("square metre", "m²", Metre2),
		entry("square kilometre", "km²", Kilometre2),
		entry("square inch", "in²", Inch2),
		entry("square foot", "ft²", Foot2),
		entry("square mile", "mi²", Mile2),

		entry("cubic millimetre", "mm³", Millimetre3),
		entry("cubic centimetre", "cm³", Centimetre3),
		entry("litre", "l", Litre),
		entry("cubic metre", "m³", Metre3),
		entry("cubic kilometre", "km³", Kilometre3),
		entry("cubic inch", "in³", Inch3),
		entry("cubic foot", "ft³", Foot3),
		entry("cubic mile", "mi³", Mile3),
		entry("US gallon", "gal", USGallon),
		entry("imperial gallon", "imp gal", ImperialGallon),

		entry("millisecond", "ms", Millisecond),
		entry("second", "s", Second),
		entry("minute", "min", Minute),
		entry("hour", "h", Hour),
		entry("day", "d", Day),
		entry("week", "wk", Week),
		entry("hertz", "Hz", Hertz),

		entry("gramme", "g", Gramme),
		entry("kilogram", "kg", Kilogram),
		entry("tonne", "t", Tonne),
		entry("ounce", "oz", Ounce),
		entry("pound", "lb", Pound),
		entry("stone", "st", Stone),

		entry("metre per second", "m/s", MetrePerSecond),
		entry("kilometre per hour", "km/h", KilometrePerHour),
		entry("mile per hour", "mph", MilePerHour),
		entry("knot", "kn", Knot),
		entry("metre per second squared", "m/s²", MetrePerSecond2),

		entry("newton", "N", Newton),
		entry("pascal", "Pa", Pascal),
		entry("joule", "J", Joule),
		entry("watt", "W", Watt),
		entry("newton metre", "N·m", NewtonMetre),

		entry("litre per 100 km", "l/100km", LitrePer100Km),
		entry("mile per gallon", "mpg", MilePerGallon),
	}
}

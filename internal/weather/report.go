package weather

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lox/brightcast/internal/format"
)

const (
	placeName = "Bright, VIC"

	noDescription = "none available"
)

// grouped renders visibility with thousands separators.
var grouped = message.NewPrinter(language.English)

// RenderReport produces the fixed-layout text report: current conditions,
// one outlook line per daily entry, the alert count, and the first alert
// when any are active. Missing optional fields render as fallbacks rather
// than failing the render.
func RenderReport(f *Forecast) string {
	var b strings.Builder

	cur := f.Current

	fmt.Fprintf(&b, "Timezone:    %s\n", f.Timezone)
	fmt.Fprintf(&b, "Location:    %s (%.4f, %.4f)\n", placeName, f.Lat, f.Lon)
	fmt.Fprintf(&b, "Time:        %s\n", format.DateTime(cur.Dt))
	fmt.Fprintf(&b, "Sunrise:     %s\n", format.TimeOnly(cur.Sunrise))
	fmt.Fprintf(&b, "Sunset:      %s\n", format.TimeOnly(cur.Sunset))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Wind speed:  %s\n", windSpeed(cur.WindSpeed))
	fmt.Fprintf(&b, "UV index:    %s\n", number(cur.UVI))
	fmt.Fprintf(&b, "Humidity:    %s\n", percent(cur.Humidity))
	fmt.Fprintf(&b, "Cloud cover: %s\n", percent(cur.Clouds))
	fmt.Fprintf(&b, "Visibility:  %s\n", metres(cur.Visibility))
	fmt.Fprintf(&b, "Temperature: %s (feels like %s)\n", celsius(cur.Temp), celsius(cur.FeelsLike))
	fmt.Fprintf(&b, "Conditions:  %s\n", description(cur.Weather))

	if len(f.Daily) > 0 {
		b.WriteString("\nDaily outlook:\n")
		for _, day := range f.Daily {
			fmt.Fprintf(&b, "  %s: %s, wind %s, %s\n",
				format.DayName(day.Dt), description(day.Weather), windSpeed(day.WindSpeed), celsius(day.Temp.Day))
		}
	}

	fmt.Fprintf(&b, "\nAlerts issued: %d\n", len(f.Alerts))

	if len(f.Alerts) > 0 {
		a := f.Alerts[0]
		b.WriteString("\n")
		fmt.Fprintf(&b, "Alert: %s (issued by %s)\n", a.Event, a.SenderName)
		fmt.Fprintf(&b, "Start: %s\n", format.DateTime(a.Start))
		fmt.Fprintf(&b, "End:   %s\n", format.DateTime(a.End))
		fmt.Fprintf(&b, "%s\n", a.Description)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func description(conditions []Condition) string {
	if len(conditions) == 0 || conditions[0].Description == "" {
		return noDescription
	}
	return conditions[0].Description
}

// number renders at source precision, e.g. 4.63 not 4.630000.
func number(v *float64) string {
	if v == nil {
		return format.Unknown
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func windSpeed(v *float64) string {
	if v == nil {
		return format.Unknown
	}
	return number(v) + " m/s"
}

func celsius(v *float64) string {
	if v == nil {
		return format.Unknown
	}
	return fmt.Sprintf("%.1f°C", *v)
}

func percent(v *int) string {
	if v == nil {
		return format.Unknown
	}
	return fmt.Sprintf("%d%%", *v)
}

func metres(v *int) string {
	if v == nil {
		return format.Unknown
	}
	return grouped.Sprintf("%d m", *v)
}

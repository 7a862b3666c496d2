package weather

import "fmt"

// Forecast is one decoded One Call response. Timezone and Current are
// required; every displayed numeric or epoch field is optional and renders
// with a fallback when the provider omits it.
type Forecast struct {
	Timezone string      `json:"timezone"`
	Lat      float64     `json:"lat"`
	Lon      float64     `json:"lon"`
	Current  *Conditions `json:"current"`
	Daily    []Day       `json:"daily"`
	Alerts   []Alert     `json:"alerts"`
}

type Conditions struct {
	Dt         *int64      `json:"dt"`
	Sunrise    *int64      `json:"sunrise"`
	Sunset     *int64      `json:"sunset"`
	Temp       *float64    `json:"temp"`
	FeelsLike  *float64    `json:"feels_like"`
	Humidity   *int        `json:"humidity"`
	UVI        *float64    `json:"uvi"`
	Clouds     *int        `json:"clouds"`
	Visibility *int        `json:"visibility"`
	WindSpeed  *float64    `json:"wind_speed"`
	Weather    []Condition `json:"weather"`
}

type Day struct {
	Dt        *int64      `json:"dt"`
	Temp      DayTemp     `json:"temp"`
	WindSpeed *float64    `json:"wind_speed"`
	Weather   []Condition `json:"weather"`
}

type DayTemp struct {
	Day *float64 `json:"day"`
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Alert struct {
	SenderName  string `json:"sender_name"`
	Event       string `json:"event"`
	Start       *int64 `json:"start"`
	End         *int64 `json:"end"`
	Description string `json:"description"`
}

func (f *Forecast) validate() error {
	if f.Timezone == "" {
		return fmt.Errorf("response missing timezone")
	}
	if f.Current == nil {
		return fmt.Errorf("response missing current conditions")
	}
	return nil
}

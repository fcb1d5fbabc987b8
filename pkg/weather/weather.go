// Package weather serves synthetic farm weather until a real feed is wired in.
package weather

import (
	"context"
	"time"
)

type Current struct {
	Location    string   `json:"location"`
	Timestamp   string   `json:"timestamp"`
	Temperature int      `json:"temperature"`
	Humidity    int      `json:"humidity"`
	WindSpeed   int      `json:"wind_speed"`
	Alerts      []string `json:"alerts"`
}

type Day struct {
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   int     `json:"wind_speed"`
	Conditions  string  `json:"conditions"`
}

type Provider interface {
	Current(ctx context.Context) (Current, error)
	Forecast(ctx context.Context) ([]Day, error)
}

const (
	forecastDays = 5
	location     = "Demo Farm"
)

var conditions = [forecastDays]string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Thunderstorms"}

type mock struct{ now func() time.Time }

// NewMock derives readings from the clock: the current reading varies with
// the second, the forecast is a fixed ramp starting today.
func NewMock(now func() time.Time) Provider {
	if now == nil {
		now = time.Now
	}
	return &mock{now: now}
}

func (m *mock) Current(context.Context) (Current, error) {
	t := m.now().UTC()
	s := t.Second()
	return Current{
		Location:    location,
		Timestamp:   t.Format(time.RFC3339),
		Temperature: 28 + s%8,
		Humidity:    60 + s%20,
		WindSpeed:   5 + s%15,
		Alerts:      []string{},
	}, nil
}

func (m *mock) Forecast(context.Context) ([]Day, error) {
	today := m.now()
	out := make([]Day, forecastDays)
	for i := range out {
		out[i] = Day{
			Date:        today.AddDate(0, 0, i).Format(time.DateOnly),
			Temperature: 25 + float64(i)*1.5,
			Humidity:    60 + i,
			WindSpeed:   5 + i,
			Conditions:  conditions[i%len(conditions)],
		}
	}
	return out, nil
}

package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"travel-buddy/models"
)

// PlotNearbyPlaces renders an HTML map of a places lookup: the caller's
// position as one series and every place, labelled with its distance, as another.
func PlotNearbyPlaces(w io.Writer, origin models.GeoPoint, places []models.PlaceResult) error {
	// echarts geo coordinates are [lon, lat].
	you := []opts.GeoData{
		{Name: "You", Value: []float64{origin.Longitude, origin.Latitude}},
	}
	points := make([]opts.GeoData, 0, len(places))
	for _, p := range places {
		points = append(points, opts.GeoData{
			Name:  fmt.Sprintf("%s (%s)", p.Name, p.DistanceLabel),
			Value: []float64{p.Longitude, p.Latitude},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Nearby Places",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Nearby places",
			Subtitle: fmt.Sprintf("%d results around %.4f, %.4f", len(places), origin.Latitude, origin.Longitude),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("You", types.ChartEffectScatter, you,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Places", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return fmt.Errorf("failed to render places map: %w", err)
	}
	return nil
}

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StaleResponses counts page responses dropped because a newer request was issued
	StaleResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "artgrid_stale_responses_total",
			Help: "Total number of page responses discarded as stale",
		},
	)

	// PageFetches counts applied page fetches by result
	PageFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "artgrid_page_fetches_total",
			Help: "Total number of page fetches applied to the grid",
		},
		[]string{"result"}, // "ok", "error"
	)

	// SelectedArtworks tracks the current size of the selection
	SelectedArtworks = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "artgrid_selected_artworks",
			Help: "Number of artwork ids currently selected",
		},
	)
)

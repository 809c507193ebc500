package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/joho/godotenv"

	"github.com/urban-viz/bikeflow/api"
	"github.com/urban-viz/bikeflow/config"
	"github.com/urban-viz/bikeflow/controller"
	"github.com/urban-viz/bikeflow/dataset"
	"github.com/urban-viz/bikeflow/internal"
	"github.com/urban-viz/bikeflow/metrics"
	"github.com/urban-viz/bikeflow/scene"
	"github.com/urban-viz/bikeflow/traffic"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", "", "path to config.yml (default: config.yml)")
	minute := flag.Int("minute", traffic.UnsetFilter, "time filter as minute-of-day [0,1439], -1 for none")
	top := flag.Int("top", 10, "oneshot: number of stations to print")
	flag.Parse()

	internal.InitLogging()
	_ = godotenv.Load()

	var paths []string
	if *configPath != "" {
		paths = append(paths, *configPath)
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		log.Fatalf("config error: %v", err)
	}
	metrics.Init()

	stations, trips, err := dataset.LoadAll(config.Config.Data)
	if err != nil {
		// Fatal: the pipeline never initializes on a failed load.
		log.Fatalf("dataset load failed: %v", err)
	}

	lons := make([]float64, len(stations))
	lats := make([]float64, len(stations))
	for i, s := range stations {
		lons[i], lats[i] = s.Lon, s.Lat
	}
	viewport := scene.FitViewport(960, 600, lons, lats, 0.05)
	binder := scene.NewBinder(scene.NewMemorySurface(), viewport)

	ctrl := controller.New(stations, trips, binder, controller.Options{
		WindowMinutes: config.Config.Filter.WindowMinutes,
		BaseRange:     traffic.Range{Min: config.Config.Radius.BaseMin, Max: config.Config.Radius.BaseMax},
		FilteredRange: traffic.Range{Min: config.Config.Radius.FilteredMin, Max: config.Config.Radius.FilteredMax},
	})

	switch *mode {
	case "oneshot":
		runOneshot(ctrl, *minute, *top)
	case "serve":
		if *minute != traffic.UnsetFilter {
			ctrl.OnSliderInput(*minute)
		}
		srv := api.NewServer(ctrl, config.Config.Server.Port)
		srv.Start()
		srv.HandleGracefulShutdown()
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

// runOneshot prints the busiest stations for the requested filter and
// exits.
func runOneshot(ctrl *controller.Controller, minute, top int) {
	if minute != traffic.UnsetFilter {
		ctrl.OnSliderInput(minute)
		fmt.Printf("time filter: %s\n", controller.FormatMinute(ctrl.TimeFilter()))
	} else {
		fmt.Printf("time filter: %s\n", controller.UnsetLabel)
	}

	stations := append([]*dataset.Station(nil), ctrl.Stations()...)
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].TotalTraffic > stations[j].TotalTraffic
	})
	if top > len(stations) {
		top = len(stations)
	}
	for i := 0; i < top; i++ {
		s := stations[i]
		fmt.Printf("%-8s r=%5.1f  %s\n",
			s.ID, ctrl.Scale().Radius(s.TotalTraffic, ctrl.FilterActive()), scene.TooltipText(s))
	}
}

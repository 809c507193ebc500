package dataset

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/urban-viz/bikeflow/config"
	"github.com/urban-viz/bikeflow/metrics"
)

// fetchDocument reads a dataset from a local path or an http(s) URL.
func fetchDocument(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(source)
}

// LoadStations loads and parses the station document from source.
func LoadStations(source string) ([]*Station, error) {
	start := time.Now()
	data, err := fetchDocument(source)
	if err != nil {
		metrics.ObserveDatasetLoad("stations", time.Since(start), err)
		return nil, fmt.Errorf("load stations: %w", err)
	}
	stations, err := ParseStations(bytes.NewReader(data))
	metrics.ObserveDatasetLoad("stations", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	return stations, nil
}

// LoadTrips loads and parses the trip log from source. When cachePath is
// non-empty a gob cache of the parsed log is consulted first and written
// back after a successful CSV parse; cache failures fall through to the
// CSV source.
func LoadTrips(source, cachePath string) ([]Trip, error) {
	start := time.Now()
	if cachePath != "" {
		if trips, err := ReadTripCacheFile(cachePath); err == nil {
			metrics.ObserveDatasetLoad("trips", time.Since(start), nil)
			log.Printf("trip log: loaded %d trips from cache %s", len(trips), cachePath)
			return trips, nil
		}
	}
	data, err := fetchDocument(source)
	if err != nil {
		metrics.ObserveDatasetLoad("trips", time.Since(start), err)
		return nil, fmt.Errorf("load trips: %w", err)
	}
	trips, err := ParseTrips(bytes.NewReader(data))
	metrics.ObserveDatasetLoad("trips", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	if cachePath != "" {
		if err := WriteTripCacheFile(cachePath, trips); err != nil {
			log.Printf("trip log: cache write failed: %v", err)
		}
	}
	return trips, nil
}

// LoadAll loads the station and trip datasets concurrently and waits for
// both. Neither dataset is usable without the other, so the first error
// wins and the result is discarded.
func LoadAll(cfg config.DataConfig) ([]*Station, []Trip, error) {
	var (
		wg       sync.WaitGroup
		stations []*Station
		trips    []Trip
		sErr     error
		tErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stations, sErr = LoadStations(cfg.StationsSource)
	}()
	go func() {
		defer wg.Done()
		trips, tErr = LoadTrips(cfg.TripsSource, cfg.TripCachePath)
	}()
	wg.Wait()
	if sErr != nil {
		return nil, nil, sErr
	}
	if tErr != nil {
		return nil, nil, tErr
	}
	log.Printf("datasets loaded: %d stations, %d trips", len(stations), len(trips))
	return stations, trips, nil
}

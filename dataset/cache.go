package dataset

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
)

// SerializeTrips encodes a parsed trip log to bytes using gob encoding.
// Parsing a month of trips from CSV dominates startup time; the gob form
// decodes an order of magnitude faster on subsequent runs.
func SerializeTrips(trips []Trip) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(trips); err != nil {
		return nil, fmt.Errorf("failed to encode trip log: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeTrips decodes a trip log previously written by SerializeTrips.
func DeserializeTrips(data []byte) ([]Trip, error) {
	var trips []Trip
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&trips); err != nil {
		return nil, fmt.Errorf("failed to decode trip log: %w", err)
	}
	return trips, nil
}

// WriteTripCacheFile writes the parsed trip log to path.
func WriteTripCacheFile(path string, trips []Trip) error {
	data, err := SerializeTrips(trips)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadTripCacheFile reads a trip log cache written by WriteTripCacheFile.
// A corrupt or missing cache returns an error; callers fall back to the
// CSV source.
func ReadTripCacheFile(path string) ([]Trip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DeserializeTrips(data)
}

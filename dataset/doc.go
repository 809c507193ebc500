/*
Package dataset provides station and trip log loading and the data model
shared by the traffic pipeline.

Both datasets are loaded once at startup, concurrently, and retained for
the session. Stations carry derived traffic counters that the traffic
package overwrites in place on every aggregation pass; trips are immutable
after load.

Sources may be local files or http(s) URLs:

	stations, trips, err := dataset.LoadAll(config.Config.Data)
	if err != nil {
	    log.Fatalf("dataset load: %v", err)
	}

The trip log parser is header-driven, so exports with extra columns (ride
id, bike type, member flags) load without configuration. A gob cache of
the parsed log can be enabled via data.tripCachePath to skip CSV parsing
on subsequent runs.
*/
package dataset

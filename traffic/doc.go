/*
Package traffic implements the aggregation half of the pipeline: the
per-station rollup of a trip log, the sliding time-of-day window applied
to it, and the square-root scale that maps the resulting counts to circle
radii.

Every function is pure given its arguments; Aggregate mutates only the
derived counters of the stations it is handed, fully overwriting them on
each call, so the same base station list can be re-aggregated against any
trip subset.
*/
package traffic

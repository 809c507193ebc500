/*
Package scene keeps one visual mark per station bound to the rendering
surface, keyed by station id.

The binder upholds two rules that the rest of the pipeline relies on:
marks persist across recomputations (a circle for station X stays station
X; it is updated in place, never destroyed and recreated while its key
survives), and radius updates and position updates are dispatched
independently. Filter changes touch only radii; viewport changes touch
only positions.
*/
package scene

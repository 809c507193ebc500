/*
Package controller wires the two update triggers to the traffic pipeline.

Slider input re-runs filter → aggregate → scale → rebind-radius against
the already-loaded trip log and the persistent base station list;
viewport-change notifications run only the reposition half. The controller
owns the time-filter value; nothing else in the engine reads or writes it
directly.

Handlers are synchronous and run to completion, mirroring the event-loop
model of the map client driving them. The controller is not safe for
concurrent use; callers that fan in events from multiple goroutines (the
HTTP surface does) must serialize their calls.
*/
package controller

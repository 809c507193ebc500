package scene

// FixedViewport is a Projector over a static bounding box: it maps
// lon/lat linearly into a Width x Height pixel viewport, north up. It
// stands in for a live map engine in the serve and oneshot paths, where
// no client viewport transform exists server-side.
type FixedViewport struct {
	Width, Height  float64
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// FitViewport builds a FixedViewport spanning the bounding box of the
// given coordinates with a relative margin on each side.
func FitViewport(width, height float64, lons, lats []float64, margin float64) *FixedViewport {
	v := &FixedViewport{Width: width, Height: height}
	if len(lons) == 0 || len(lats) == 0 {
		v.MaxLon, v.MaxLat = 1, 1
		return v
	}
	v.MinLon, v.MaxLon = lons[0], lons[0]
	v.MinLat, v.MaxLat = lats[0], lats[0]
	for _, lon := range lons {
		if lon < v.MinLon {
			v.MinLon = lon
		}
		if lon > v.MaxLon {
			v.MaxLon = lon
		}
	}
	for _, lat := range lats {
		if lat < v.MinLat {
			v.MinLat = lat
		}
		if lat > v.MaxLat {
			v.MaxLat = lat
		}
	}
	padLon := (v.MaxLon - v.MinLon) * margin
	padLat := (v.MaxLat - v.MinLat) * margin
	v.MinLon -= padLon
	v.MaxLon += padLon
	v.MinLat -= padLat
	v.MaxLat += padLat
	return v
}

// Project maps lon/lat to viewport pixels. Latitude grows northward but
// screen y grows downward, so the y axis is inverted.
func (v *FixedViewport) Project(lon, lat float64) (x, y float64) {
	spanLon := v.MaxLon - v.MinLon
	spanLat := v.MaxLat - v.MinLat
	if spanLon == 0 || spanLat == 0 {
		return 0, 0
	}
	x = (lon - v.MinLon) / spanLon * v.Width
	y = (v.MaxLat - lat) / spanLat * v.Height
	return x, y
}

package scene

// Projector converts a geographic coordinate to the current screen
// position. The map engine owns the viewport transform, so results are
// valid only until the next viewport-change notification.
type Projector interface {
	Project(lon, lat float64) (x, y float64)
}

// MarkStyle is the static presentation applied once when a mark is
// created. It never changes afterward; only radius and position do.
type MarkStyle struct {
	Fill    string
	Stroke  string
	Opacity float64
}

// DefaultMarkStyle matches the reference rendering of the traffic map.
var DefaultMarkStyle = MarkStyle{
	Fill:    "steelblue",
	Stroke:  "white",
	Opacity: 0.6,
}

// Surface is the rendering target for circle marks. Implementations map
// these calls onto their scene graph (SVG, canvas, or the in-memory
// surface below). Keys are station ids; SetRadius, SetPosition and
// SetTooltip address marks previously created with CreateMark.
type Surface interface {
	CreateMark(id string, style MarkStyle)
	SetRadius(id string, r float64)
	SetPosition(id string, x, y float64)
	SetTooltip(id string, text string)
	RemoveMark(id string)
}

// MarkState is the rendered state of one mark on a MemorySurface.
type MarkState struct {
	Style   MarkStyle
	Radius  float64
	X, Y    float64
	Tooltip string
}

// MemorySurface is a Surface that renders to memory. The serve and
// oneshot paths use it as the authoritative mark store; tests use it to
// assert on rendered state.
type MemorySurface struct {
	marks map[string]*MarkState
}

// NewMemorySurface returns an empty in-memory surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{marks: map[string]*MarkState{}}
}

func (m *MemorySurface) CreateMark(id string, style MarkStyle) {
	m.marks[id] = &MarkState{Style: style}
}

func (m *MemorySurface) SetRadius(id string, r float64) {
	if mk, ok := m.marks[id]; ok {
		mk.Radius = r
	}
}

func (m *MemorySurface) SetPosition(id string, x, y float64) {
	if mk, ok := m.marks[id]; ok {
		mk.X, mk.Y = x, y
	}
}

func (m *MemorySurface) SetTooltip(id string, text string) {
	if mk, ok := m.marks[id]; ok {
		mk.Tooltip = text
	}
}

func (m *MemorySurface) RemoveMark(id string) {
	delete(m.marks, id)
}

// Mark returns the rendered state for id, or nil when absent.
func (m *MemorySurface) Mark(id string) *MarkState {
	return m.marks[id]
}

// Len reports how many marks exist.
func (m *MemorySurface) Len() int {
	return len(m.marks)
}

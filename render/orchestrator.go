package render

type layerEntry struct {
	layer    Layer
	priority RenderPriority
	index    int // registration order for stable sort
}

// SceneRenderer draws one frame by running registered layers in priority order
type SceneRenderer struct {
	layers   []layerEntry
	regCount int
}

// NewSceneRenderer creates an empty renderer
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (r *SceneRenderer) Register(l Layer, priority RenderPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    r.regCount,
	}
	r.regCount++

	// Insertion sort: find position and insert
	pos := len(r.layers)
	for i, e := range r.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	r.layers = append(r.layers, layerEntry{})
	copy(r.layers[pos+1:], r.layers[pos:])
	r.layers[pos] = entry
}

// Len returns the number of registered layers
func (r *SceneRenderer) Len() int {
	return len(r.layers)
}

// Render executes the layer pipeline against s. Layers own clearing, the background
// layer is expected to reset the surface
func (r *SceneRenderer) Render(f Frame, s Surface) {
	if s == nil {
		return
	}
	for _, entry := range r.layers {
		// Skip if layer implements VisibilityToggle and is not visible
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(f) {
			continue
		}
		entry.layer.Render(f, s)
	}
}

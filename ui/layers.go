package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spectaculife/renderer"
)

// LayerID uniquely identifies a toggleable view layer.
type LayerID string

// Standard layer IDs.
const (
	LayerLife    LayerID = "life"
	LayerSoil    LayerID = "soil"
	LayerAir     LayerID = "air"
	LayerRouting LayerID = "routing"
)

// LayerDescriptor defines a layer that can be toggled.
type LayerDescriptor struct {
	ID          LayerID
	Name        string
	Description string
	Key         int32  // Keyboard key to toggle (0 = no key)
	KeyLabel    string // Key label for display
}

// LayerRegistry manages layer visibility and metadata.
type LayerRegistry struct {
	descriptors []LayerDescriptor
	byID        map[LayerID]LayerDescriptor
	enabled     map[LayerID]bool
}

// NewLayerRegistry creates a registry with the standard layers, all
// visible except routing.
func NewLayerRegistry() *LayerRegistry {
	reg := &LayerRegistry{
		byID:    make(map[LayerID]LayerDescriptor),
		enabled: make(map[LayerID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *LayerRegistry) registerDefaults() {
	r.Register(LayerDescriptor{
		ID:          LayerLife,
		Name:        "Life",
		Description: "Living cells colored by role",
		Key:         rl.KeyOne,
		KeyLabel:    "1",
	}, true)
	r.Register(LayerDescriptor{
		ID:          LayerSoil,
		Name:        "Soil",
		Description: "Organics bands, warmed by soil energy",
		Key:         rl.KeyTwo,
		KeyLabel:    "2",
	}, true)
	r.Register(LayerDescriptor{
		ID:          LayerAir,
		Name:        "Air",
		Description: "Pollution haze",
		Key:         rl.KeyThree,
		KeyLabel:    "3",
	}, true)
	r.Register(LayerDescriptor{
		ID:          LayerRouting,
		Name:        "Routing",
		Description: "Energy transfer directions (zoomed in)",
		Key:         rl.KeyFour,
		KeyLabel:    "4",
	}, false)
}

// Register adds a layer to the registry.
func (r *LayerRegistry) Register(desc LayerDescriptor, enabled bool) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = enabled
}

// Toggle switches a layer on/off and returns the new state.
func (r *LayerRegistry) Toggle(id LayerID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a layer's state.
func (r *LayerRegistry) SetEnabled(id LayerID, enabled bool) {
	if _, ok := r.byID[id]; ok {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether a layer is visible.
func (r *LayerRegistry) IsEnabled(id LayerID) bool {
	return r.enabled[id]
}

// All returns all registered layers in registration order.
func (r *LayerRegistry) All() []LayerDescriptor {
	return r.descriptors
}

// HandleKeyPress toggles the layer bound to key.
// Returns the layer ID, its new state and whether a toggle occurred.
func (r *LayerRegistry) HandleKeyPress(key int32) (LayerID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// HandleKeyQueue drains next until it returns 0, toggling the layer bound
// to each key, and returns how many toggles happened. Pass rl.GetKeyPressed
// to consume every key queued during a frame.
func (r *LayerRegistry) HandleKeyQueue(next func() int32) int {
	n := 0
	for key := next(); key != 0; key = next() {
		if _, _, ok := r.HandleKeyPress(key); ok {
			n++
		}
	}
	return n
}

// RenderLayers converts the cell layer toggles for the renderer.
func (r *LayerRegistry) RenderLayers() renderer.Layers {
	return renderer.Layers{
		Life: r.enabled[LayerLife],
		Soil: r.enabled[LayerSoil],
		Air:  r.enabled[LayerAir],
	}
}

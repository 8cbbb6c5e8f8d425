package service

import (
	"slices"
	"strings"
)

// ModelInfo describes one preset model the platform can serve.
type ModelInfo struct {
	ID         string `json:"id"`
	Capability string `json:"capability"`
	Engine     string `json:"engine"`
}

// ModelStatus is the API view of a model: the static catalog entry plus
// live availability from the worker fleet.
type ModelStatus struct {
	ModelInfo
	Available bool `json:"available"`
	Resident  bool `json:"resident"`
}

// ModelCatalog is the static table of preset models and voices. Arbitrary
// user-defined models are never admitted.
type ModelCatalog struct {
	models map[string]ModelInfo
	voices []string
}

// DefaultCatalog returns the built-in model set.
func DefaultCatalog() *ModelCatalog {
	return NewModelCatalog([]ModelInfo{
		{ID: "sdxl", Capability: "image", Engine: "comfyui"},
		{ID: "sd15", Capability: "image", Engine: "comfyui"},
		{ID: "flux-schnell", Capability: "image", Engine: "comfyui"},
		{ID: "svd", Capability: "video", Engine: "comfyui"},
		{ID: "animatediff", Capability: "video", Engine: "comfyui"},
		{ID: "llama3-8b", Capability: "text", Engine: "koboldcpp"},
		{ID: "mistral-7b", Capability: "text", Engine: "koboldcpp"},
		{ID: "piper-en", Capability: "audio", Engine: "whisper"},
	}, []string{"amy", "ryan", "northern-english-male"})
}

// NewModelCatalog builds a catalog from explicit entries.
func NewModelCatalog(models []ModelInfo, voices []string) *ModelCatalog {
	m := make(map[string]ModelInfo, len(models))
	for _, info := range models {
		m[info.ID] = info
	}
	return &ModelCatalog{models: m, voices: voices}
}

// Lookup returns the catalog entry for a model id.
func (c *ModelCatalog) Lookup(id string) (ModelInfo, bool) {
	info, ok := c.models[id]
	return info, ok
}

// VoiceAllowed reports whether a voice id is in the preset voice set.
func (c *ModelCatalog) VoiceAllowed(id string) bool {
	return slices.Contains(c.voices, id)
}

// Voices lists the preset voice ids.
func (c *ModelCatalog) Voices() []string {
	return slices.Clone(c.voices)
}

// List merges the catalog with the live fleet: a model is available when
// some non-dead worker serves its capability, resident when a worker
// reports it loaded.
func (c *ModelCatalog) List(fleet []WorkerInfo) []ModelStatus {
	out := make([]ModelStatus, 0, len(c.models))
	for _, info := range c.models {
		st := ModelStatus{ModelInfo: info}
		for _, w := range fleet {
			if w.State == WorkerDead {
				continue
			}
			if slices.Contains(w.LoadedModels, info.ID) {
				st.Resident = true
				st.Available = true
				break
			}
			if slices.Contains(w.Capabilities, info.Capability) {
				st.Available = true
			}
		}
		out = append(out, st)
	}
	slices.SortFunc(out, func(a, b ModelStatus) int {
		if a.Capability != b.Capability {
			return strings.Compare(a.Capability, b.Capability)
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

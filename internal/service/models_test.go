package service

import "testing"

func TestCatalog_ListMergesFleetState(t *testing.T) {
	r := NewRegistry(testLogger())
	addTestWorker(r, &fakeRunner{}, "w1", []string{"image"}, []string{"sdxl"})

	catalog := DefaultCatalog()
	models := catalog.List(r.Snapshot())

	byID := make(map[string]ModelStatus)
	for _, m := range models {
		byID[m.ID] = m
	}

	sdxl := byID["sdxl"]
	if !sdxl.Resident || !sdxl.Available {
		t.Errorf("sdxl = %+v, want resident and available", sdxl)
	}

	// flux-schnell is an image model: servable by the worker, not loaded.
	flux := byID["flux-schnell"]
	if flux.Resident {
		t.Errorf("flux-schnell reported resident: %+v", flux)
	}
	if !flux.Available {
		t.Errorf("flux-schnell not available despite image worker: %+v", flux)
	}

	// No worker serves text.
	llama := byID["llama3-8b"]
	if llama.Available {
		t.Errorf("llama3-8b available with no text worker: %+v", llama)
	}
}

func TestCatalog_Voices(t *testing.T) {
	c := DefaultCatalog()
	if !c.VoiceAllowed("amy") {
		t.Error("amy should be a preset voice")
	}
	if c.VoiceAllowed("hal9000") {
		t.Error("hal9000 should not be a preset voice")
	}
}

package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Nosdarm/rpg-sub000/internal/models"
)

func TestMockContentGenerator_KnownTypesParse(t *testing.T) {
	gen := NewMockContentGenerator()
	for _, et := range []string{
		models.EntityLocation, models.EntityNPC, models.EntityItem, models.EntityQuest,
		models.EntityFaction, models.EntityWorldEvent, models.EntityLoreEntry,
	} {
		out, err := gen.Generate(context.Background(), "g", &models.TriggerRequest{EntityType: et, Context: json.RawMessage("{}")})
		if err != nil {
			t.Fatalf("%s: generate error: %v", et, err)
		}
		if !json.Valid(out.ParsedData) {
			t.Fatalf("%s: sample parsed data must be valid JSON, got %s", et, out.ParsedData)
		}
		if out.Confidence == nil {
			t.Fatalf("%s: expected a confidence score", et)
		}
	}
}

func TestMockContentPersister_RejectsInvalidData(t *testing.T) {
	p := NewMockContentPersister()
	if _, err := p.Persist(context.Background(), "g", models.EntityItem, json.RawMessage(`{"x":`)); err == nil {
		t.Fatal("expected error for invalid parsed data")
	}
	ids, err := p.Persist(context.Background(), "g", models.EntityItem, json.RawMessage(`{"name":"x"}`))
	if err != nil || len(ids) != 1 {
		t.Fatalf("expected one created id, got %v err=%v", ids, err)
	}
}

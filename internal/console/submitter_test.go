package console

import (
	"context"
	"testing"

	apperrors "github.com/Nosdarm/rpg-sub000/internal/errors"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

func TestSubmitter_HappyPath(t *testing.T) {
	gw := &mockGateway{}
	s := NewTriggerSubmitter(gw)

	g, err := s.Submit(context.Background(), "guild-1", "user-9", models.EntityItem,
		`{"material":"gold"}`, "202", "404")
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if g.Status != models.StatusPendingModeration {
		t.Fatalf("expected PENDING_MODERATION, got %s", g.Status)
	}
	if gw.triggerGuild != "guild-1" {
		t.Fatalf("unexpected guild %q", gw.triggerGuild)
	}
	req := gw.triggerReq
	if req.EntityType != "item" || string(req.Context) != `{"material":"gold"}` {
		t.Fatalf("unexpected request: %#v", req)
	}
	if req.LocationID == nil || *req.LocationID != 202 {
		t.Fatalf("expected location id 202, got %#v", req.LocationID)
	}
	if req.PlayerID == nil || *req.PlayerID != 404 {
		t.Fatalf("expected player id 404, got %#v", req.PlayerID)
	}
	if req.TriggeredByUserID == nil || *req.TriggeredByUserID != "user-9" {
		t.Fatalf("expected triggering user recorded, got %#v", req.TriggeredByUserID)
	}
}

func TestSubmitter_BlankContextMeansEmptyObject(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		gw := &mockGateway{}
		s := NewTriggerSubmitter(gw)
		if _, err := s.Submit(context.Background(), "g", "", models.EntityNPC, text, "", ""); err != nil {
			t.Fatalf("context %q: submit error: %v", text, err)
		}
		if string(gw.triggerReq.Context) != "{}" {
			t.Fatalf("context %q: expected {}, got %q", text, gw.triggerReq.Context)
		}
		if gw.triggerReq.LocationID != nil || gw.triggerReq.PlayerID != nil {
			t.Fatalf("blank ids must be omitted, got %#v", gw.triggerReq)
		}
	}
}

func TestSubmitter_NonNumericIDsNeverReachGateway(t *testing.T) {
	tests := []struct {
		name                   string
		locationText, playText string
		wantField              string
	}{
		{"bad location", "abc", "", "location_id"},
		{"bad player", "", "12x", "player_id"},
		{"float location", "1.5", "", "location_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &mockGateway{}
			s := NewTriggerSubmitter(gw)
			_, err := s.Submit(context.Background(), "g", "", models.EntityQuest, "", tt.locationText, tt.playText)
			ve, ok := apperrors.AsValidation(err)
			if !ok || ve.Field != tt.wantField {
				t.Fatalf("expected %s validation error, got %v", tt.wantField, err)
			}
			if gw.triggerReq != nil {
				t.Fatal("gateway must not be called on local validation failure")
			}
		})
	}
}

func TestSubmitter_EntityTypeRequired(t *testing.T) {
	gw := &mockGateway{}
	s := NewTriggerSubmitter(gw)

	for _, et := range []string{"", "dragon"} {
		_, err := s.Submit(context.Background(), "g", "", et, "", "", "")
		ve, ok := apperrors.AsValidation(err)
		if !ok || ve.Field != "entity_type" {
			t.Fatalf("entity type %q: expected entity_type error, got %v", et, err)
		}
	}
	if gw.triggerReq != nil {
		t.Fatal("gateway must not be called")
	}
}

func TestSubmitter_InvalidContextJSON(t *testing.T) {
	gw := &mockGateway{}
	s := NewTriggerSubmitter(gw)

	_, err := s.Submit(context.Background(), "g", "", models.EntityItem, `{"material":`, "", "")
	ve, ok := apperrors.AsValidation(err)
	if !ok || ve.Field != "generation_context" {
		t.Fatalf("expected generation_context error, got %v", err)
	}
	if gw.triggerReq != nil {
		t.Fatal("gateway must not be called")
	}
}

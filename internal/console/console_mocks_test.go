package console

import (
	"context"
	"errors"

	"github.com/Nosdarm/rpg-sub000/internal/gateway"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// mockGateway records calls and serves canned responses. Individual
// behaviors can be overridden per test via the fn fields.
type mockGateway struct {
	triggerGuild string
	triggerReq   *models.TriggerRequest
	triggerFn    func(guildID string, req *models.TriggerRequest) (*models.PendingGeneration, error)

	listCalls []listCall
	listFn    func(guildID string, status models.GenerationStatus, page, pageSize int) (*models.PendingGenerationPage, error)

	record *models.PendingGeneration
	getErr error

	approveCalls int
	approveFn    func(guildID, id, masterID string) (*models.PendingGeneration, error)

	updateReq *models.UpdateRequest
	updateFn  func(guildID, id string, req *models.UpdateRequest) (*models.PendingGeneration, error)
}

type listCall struct {
	status   models.GenerationStatus
	page     int
	pageSize int
}

func (m *mockGateway) Trigger(_ context.Context, guildID string, req *models.TriggerRequest) (*models.PendingGeneration, error) {
	m.triggerGuild = guildID
	m.triggerReq = req
	if m.triggerFn != nil {
		return m.triggerFn(guildID, req)
	}
	return &models.PendingGeneration{ID: "new", GuildID: guildID, EntityType: req.EntityType, Status: models.StatusPendingModeration}, nil
}

func (m *mockGateway) List(_ context.Context, guildID string, status models.GenerationStatus, page, pageSize int) (*models.PendingGenerationPage, error) {
	m.listCalls = append(m.listCalls, listCall{status: status, page: page, pageSize: pageSize})
	if m.listFn != nil {
		return m.listFn(guildID, status, page, pageSize)
	}
	return &models.PendingGenerationPage{Items: []*models.PendingGeneration{}, CurrentPage: page, PageSize: pageSize}, nil
}

func (m *mockGateway) GetByID(_ context.Context, guildID, id string) (*models.PendingGeneration, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.record == nil || m.record.ID != id {
		return nil, errors.New("not found")
	}
	return m.record, nil
}

func (m *mockGateway) Approve(_ context.Context, guildID, id, masterID string) (*models.PendingGeneration, error) {
	m.approveCalls++
	if m.approveFn != nil {
		return m.approveFn(guildID, id, masterID)
	}
	master := masterID
	return &models.PendingGeneration{ID: id, GuildID: guildID, Status: models.StatusSaved, MasterID: &master}, nil
}

func (m *mockGateway) Update(_ context.Context, guildID, id string, req *models.UpdateRequest) (*models.PendingGeneration, error) {
	m.updateReq = req
	if m.updateFn != nil {
		return m.updateFn(guildID, id, req)
	}
	g := &models.PendingGeneration{ID: id, GuildID: guildID, Status: models.StatusPendingModeration}
	if req.NewStatus != nil {
		g.Status = *req.NewStatus
	}
	if len(req.NewParsedData) > 0 {
		g.ParsedData = []byte(req.NewParsedData)
	}
	if req.MasterNotes != nil {
		g.MasterNotes = req.MasterNotes
	}
	return g, nil
}

var _ gateway.Gateway = (*mockGateway)(nil)

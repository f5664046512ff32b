package console

import (
	"context"

	"github.com/Nosdarm/rpg-sub000/internal/gateway"
	"github.com/Nosdarm/rpg-sub000/internal/models"
)

// Lister owns the filter and pagination state of the pending worklist.
// A failed refresh keeps the previously loaded page so the view stays
// on the last known-good state.
type Lister struct {
	gw       gateway.Gateway
	guildID  string
	pageSize int

	statusFilter *models.GenerationStatus
	page         int
	current      *models.PendingGenerationPage
}

func NewLister(gw gateway.Gateway, guildID string, pageSize int) *Lister {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Lister{gw: gw, guildID: guildID, pageSize: pageSize, page: 1}
}

// Refresh reloads the current page with the current filter.
func (l *Lister) Refresh(ctx context.Context) error {
	var status models.GenerationStatus
	if l.statusFilter != nil {
		status = *l.statusFilter
	}
	page, err := l.gw.List(ctx, l.guildID, status, l.page, l.pageSize)
	if err != nil {
		return err
	}
	l.current = page
	return nil
}

// SetStatusFilter changes the filter and reloads. Changing the filter
// always restarts pagination at page 1.
func (l *Lister) SetStatusFilter(ctx context.Context, status *models.GenerationStatus) error {
	l.statusFilter = status
	l.page = 1
	return l.Refresh(ctx)
}

// HasNext reports whether a further page exists.
func (l *Lister) HasNext() bool {
	return l.current != nil && l.page < l.current.TotalPages
}

// HasPrev reports whether a previous page exists.
func (l *Lister) HasPrev() bool {
	return l.page > 1
}

// NextPage advances one page. A no-op on the last page.
func (l *Lister) NextPage(ctx context.Context) error {
	if !l.HasNext() {
		return nil
	}
	l.page++
	if err := l.Refresh(ctx); err != nil {
		l.page--
		return err
	}
	return nil
}

// PrevPage goes back one page. A no-op on the first page.
func (l *Lister) PrevPage(ctx context.Context) error {
	if !l.HasPrev() {
		return nil
	}
	l.page--
	if err := l.Refresh(ctx); err != nil {
		l.page++
		return err
	}
	return nil
}

// Items returns the currently loaded records. Empty is a valid state,
// not an error.
func (l *Lister) Items() []*models.PendingGeneration {
	if l.current == nil {
		return nil
	}
	return l.current.Items
}

// Empty reports whether the current filter matched nothing.
func (l *Lister) Empty() bool {
	return l.current != nil && len(l.current.Items) == 0
}

// Page returns the 1-based current page number.
func (l *Lister) Page() int { return l.page }

// TotalItems returns the total match count of the current filter.
func (l *Lister) TotalItems() int64 {
	if l.current == nil {
		return 0
	}
	return l.current.TotalItems
}

// Select resolves a listed record id for the caller. The returned id
// is the only coupling between the worklist and the review editor.
func (l *Lister) Select(id string) (string, bool) {
	for _, g := range l.Items() {
		if g.ID == id {
			return g.ID, true
		}
	}
	return "", false
}

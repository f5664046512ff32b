package console

import (
	"testing"
	"time"
)

func TestDashboard_DefaultsToList(t *testing.T) {
	d := NewDashboard(time.Second)
	if d.View() != ViewList {
		t.Fatalf("expected list view, got %s", d.View())
	}
	if d.SelectedID() != "" {
		t.Fatal("no record selected initially")
	}
}

func TestDashboard_SelectRoutesToDetail(t *testing.T) {
	d := NewDashboard(time.Second)
	d.SelectRecord("id-1")
	if d.View() != ViewDetail || d.SelectedID() != "id-1" {
		t.Fatalf("unexpected state: view=%s selected=%s", d.View(), d.SelectedID())
	}

	d.SwitchTo(ViewList)
	if d.SelectedID() != "" {
		t.Fatal("leaving the detail view must clear the selection")
	}
}

func TestDashboard_SwitchingViewsClearsFeedback(t *testing.T) {
	d := NewDashboard(time.Minute)
	d.ShowFeedback("approved", false)
	if d.Feedback() == nil {
		t.Fatal("expected feedback shown")
	}
	d.SwitchTo(ViewTrigger)
	if d.Feedback() != nil {
		t.Fatal("switching views must clear feedback")
	}
}

func TestDashboard_ManualDismiss(t *testing.T) {
	d := NewDashboard(time.Minute)
	d.ShowFeedback("rejected", false)
	d.DismissFeedback()
	if d.Feedback() != nil {
		t.Fatal("expected feedback dismissed")
	}
}

func TestDashboard_AutoDismiss(t *testing.T) {
	d := NewDashboard(20 * time.Millisecond)
	d.ShowFeedback("saved", false)

	deadline := time.After(time.Second)
	for d.Feedback() != nil {
		select {
		case <-deadline:
			t.Fatal("feedback was not auto-dismissed")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDashboard_NewMessageReplacesOld(t *testing.T) {
	d := NewDashboard(time.Minute)
	d.ShowFeedback("first", false)
	d.ShowFeedback("gateway trigger failed", true)

	fb := d.Feedback()
	if fb == nil || fb.Text != "gateway trigger failed" || !fb.IsError {
		t.Fatalf("unexpected feedback: %#v", fb)
	}
}

package entities

import (
	"testing"
	"time"
)

func TestSyncCompletedAt(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name        string
		task        Task
		wantStamped *time.Time
	}{
		{
			name:        "completing stamps now",
			task:        Task{Completed: true},
			wantStamped: &now,
		},
		{
			name:        "already completed keeps original stamp",
			task:        Task{Completed: true, CompletedAt: &earlier},
			wantStamped: &earlier,
		},
		{
			name:        "reopening clears stamp",
			task:        Task{Completed: false, CompletedAt: &earlier},
			wantStamped: nil,
		},
		{
			name:        "open task stays unstamped",
			task:        Task{},
			wantStamped: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := tt.task
			task.SyncCompletedAt(now)

			switch {
			case tt.wantStamped == nil && task.CompletedAt != nil:
				t.Fatalf("CompletedAt: got %v, want nil", *task.CompletedAt)
			case tt.wantStamped != nil && task.CompletedAt == nil:
				t.Fatalf("CompletedAt: got nil, want %v", *tt.wantStamped)
			case tt.wantStamped != nil && !task.CompletedAt.Equal(*tt.wantStamped):
				t.Fatalf("CompletedAt: got %v, want %v", *task.CompletedAt, *tt.wantStamped)
			}
		})
	}
}

func TestSyncCompletedAtToggleTwice(t *testing.T) {
	task := Task{Title: "Pay bills"}
	now := time.Now()

	task.Completed = !task.Completed
	task.SyncCompletedAt(now)
	if task.CompletedAt == nil {
		t.Fatal("first toggle should stamp CompletedAt")
	}

	task.Completed = !task.Completed
	task.SyncCompletedAt(now.Add(time.Minute))
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("second toggle should restore open state, got completed=%v completed_at=%v", task.Completed, task.CompletedAt)
	}
}

func TestDuePredicates(t *testing.T) {
	today := DateOf(time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC))
	yesterday := today.AddDays(-1)
	inTwoDays := today.AddDays(2)
	inThreeDays := today.AddDays(3)

	tests := []struct {
		name        string
		task        Task
		wantOverdue bool
		wantDueSoon bool
	}{
		{"no due date", Task{}, false, false},
		{"due yesterday", Task{DueDate: &yesterday}, true, false},
		{"due yesterday but done", Task{DueDate: &yesterday, Completed: true}, false, false},
		{"due today", Task{DueDate: &today}, false, true},
		{"due in two days", Task{DueDate: &inTwoDays}, false, true},
		{"due in three days", Task{DueDate: &inThreeDays}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(today); got != tt.wantOverdue {
				t.Errorf("IsOverdue: got %v, want %v", got, tt.wantOverdue)
			}
			if got := tt.task.IsDueSoon(today); got != tt.wantDueSoon {
				t.Errorf("IsDueSoon: got %v, want %v", got, tt.wantDueSoon)
			}
		})
	}
}

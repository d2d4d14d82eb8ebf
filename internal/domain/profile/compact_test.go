package profile

import (
	"fmt"
	"testing"
)

func TestCompactLog_UnderCapUntouched(t *testing.T) {
	log := make([]ActivityRecord, MaxActivityLog)
	out := CompactLog(log)
	if len(out) != MaxActivityLog {
		t.Fatalf("expected %d entries, got %d", MaxActivityLog, len(out))
	}
}

func TestCompactLog_KeepsMostRecentInOrder(t *testing.T) {
	const n = 130
	log := make([]ActivityRecord, 0, n)
	for i := 0; i < n; i++ {
		log = append(log, ActivityRecord{
			ActivityType: fmt.Sprintf("activity-%d", i),
			Timestamp:    int64(i),
		})
	}

	out := CompactLog(log)

	if len(out) != MaxActivityLog {
		t.Fatalf("expected %d entries, got %d", MaxActivityLog, len(out))
	}
	for i, rec := range out {
		wantTS := int64(n - MaxActivityLog + i)
		if rec.Timestamp != wantTS {
			t.Fatalf("entry %d: expected timestamp %d, got %d", i, wantTS, rec.Timestamp)
		}
	}
}

func TestApply_BoundedHistory(t *testing.T) {
	p := Default()
	for i := 0; i < MaxActivityLog+25; i++ {
		p.Apply(ActivityEvent{ActivityType: "Solved coding problem", Timestamp: int64(i + 1)}, 0)
	}

	if len(p.ActivityLog) != MaxActivityLog {
		t.Fatalf("expected capped log of %d, got %d", MaxActivityLog, len(p.ActivityLog))
	}
	if got := p.ActivityLog[0].Timestamp; got != 26 {
		t.Fatalf("oldest surviving entry should be 26, got %d", got)
	}
	if got := p.ActivityLog[len(p.ActivityLog)-1].Timestamp; got != int64(MaxActivityLog+25) {
		t.Fatalf("newest entry should be %d, got %d", MaxActivityLog+25, got)
	}
}

package profile

import (
	"reflect"
	"testing"
)

func TestApply_DomainOverwrite(t *testing.T) {
	p := Default()
	p.CareerDomain = DomainSoftware

	p.Apply(ActivityEvent{Domain: DomainDesign}, 1000)

	if p.CareerDomain != DomainDesign {
		t.Fatalf("expected domain %q, got %q", DomainDesign, p.CareerDomain)
	}
}

func TestApply_SkillUnionIsIdempotent(t *testing.T) {
	p := Default()
	ev := ActivityEvent{Skills: []string{"Go", "Redis", "Go"}}

	p.Apply(ev, 1000)
	first := append([]string(nil), p.Skills...)

	p.Apply(ev, 2000)

	if !reflect.DeepEqual(p.Skills, first) {
		t.Fatalf("second merge changed skills: %v -> %v", first, p.Skills)
	}
	if !reflect.DeepEqual(p.Skills, []string{"Go", "Redis"}) {
		t.Fatalf("unexpected skills: %v", p.Skills)
	}
}

func TestApply_SkillInsertionOrderPreserved(t *testing.T) {
	p := Default()

	p.Apply(ActivityEvent{Skills: []string{"C"}}, 1000)
	p.Apply(ActivityEvent{Skills: []string{"A", "C", "B"}}, 2000)

	want := []string{"C", "A", "B"}
	if !reflect.DeepEqual(p.Skills, want) {
		t.Fatalf("expected %v, got %v", want, p.Skills)
	}
}

func TestApply_ActivityRecordFallsBackToProfileDomain(t *testing.T) {
	p := Default()
	p.CareerDomain = DomainCooking

	p.Apply(ActivityEvent{ActivityType: "Watched tutorial video"}, 5000)

	if len(p.ActivityLog) != 1 {
		t.Fatalf("expected 1 record, got %d", len(p.ActivityLog))
	}
	rec := p.ActivityLog[0]
	if rec.Domain != DomainCooking {
		t.Fatalf("expected record domain %q, got %q", DomainCooking, rec.Domain)
	}
	if rec.Timestamp != 5000 {
		t.Fatalf("expected fallback timestamp 5000, got %d", rec.Timestamp)
	}
}

func TestApply_EventTimestampWinsOverNow(t *testing.T) {
	p := Default()

	p.Apply(ActivityEvent{ActivityType: "Read article", Timestamp: 777}, 5000)

	if p.ActivityLog[0].Timestamp != 777 {
		t.Fatalf("expected event timestamp 777, got %d", p.ActivityLog[0].Timestamp)
	}
}

func TestApply_EmptyEventMergesNothing(t *testing.T) {
	p := Default()
	p.CareerDomain = DomainSoftware
	p.Apply(ActivityEvent{Skills: []string{"Go"}}, 1000)

	before := len(p.ActivityLog)
	p.Apply(ActivityEvent{}, 2000)

	if len(p.ActivityLog) != before {
		t.Fatalf("empty event appended an activity record")
	}
	if !reflect.DeepEqual(p.Skills, []string{"Go"}) {
		t.Fatalf("empty event changed skills: %v", p.Skills)
	}
	if p.CareerDomain != DomainSoftware {
		t.Fatalf("empty event changed domain: %q", p.CareerDomain)
	}
}

func TestActivityEvent_Empty(t *testing.T) {
	if !(ActivityEvent{}).Empty() {
		t.Fatal("zero event should be empty")
	}
	if (ActivityEvent{ActivityType: "x"}).Empty() {
		t.Fatal("event with activity type should not be empty")
	}
	if (ActivityEvent{Skills: []string{"Go"}}).Empty() {
		t.Fatal("event with skills should not be empty")
	}
}

func TestCareerDomain_Valid(t *testing.T) {
	for _, d := range []CareerDomain{
		DomainSoftware, DomainDesign, DomainAccounts, DomainBusiness,
		DomainCooking, DomainPainting, DomainMedical, DomainGeneral,
	} {
		if !d.Valid() {
			t.Fatalf("%q should be valid", d)
		}
	}
	if CareerDomain("astronaut").Valid() {
		t.Fatal("unknown domain should be invalid")
	}
	if CareerDomain("").Valid() {
		t.Fatal("empty domain should be invalid")
	}
}

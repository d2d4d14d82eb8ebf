package profile

// CareerDomain is the closed set of professional fields used to tag
// activity events and job postings. Classifiers upstream emit these as
// free text, so anything outside the known set is treated as unset.
type CareerDomain string

const (
	DomainSoftware CareerDomain = "software"
	DomainDesign   CareerDomain = "design"
	DomainAccounts CareerDomain = "accounts"
	DomainBusiness CareerDomain = "business"
	DomainCooking  CareerDomain = "cooking"
	DomainPainting CareerDomain = "painting"
	DomainMedical  CareerDomain = "medical"
	DomainGeneral  CareerDomain = "general"
)

func (d CareerDomain) Valid() bool {
	switch d {
	case DomainSoftware, DomainDesign, DomainAccounts, DomainBusiness,
		DomainCooking, DomainPainting, DomainMedical, DomainGeneral:
		return true
	}
	return false
}

// ActivityEvent is one observed user action, emitted by an external
// page observer. Ephemeral; consumed exactly once by the synthesizer.
type ActivityEvent struct {
	Domain       CareerDomain `json:"domain,omitempty"`
	ActivityType string       `json:"activityType,omitempty"`
	Skills       []string     `json:"skills,omitempty"`
	Timestamp    int64        `json:"timestamp,omitempty"`
}

// Empty reports whether the event carries nothing to merge. Such
// events are still persisted as keep-alives (updatedAt is stamped).
func (e ActivityEvent) Empty() bool {
	return e.Domain == "" && e.ActivityType == "" && len(e.Skills) == 0
}

// ActivityRecord is one entry of a profile's activity log.
type ActivityRecord struct {
	Domain       CareerDomain `json:"domain,omitempty"`
	ActivityType string       `json:"activityType"`
	Timestamp    int64        `json:"timestamp"`
}

// Profile is the durable per-user aggregate. The store at
// profiles/{userId} is the owner; no authoritative copy is held in
// memory across calls.
type Profile struct {
	CareerDomain CareerDomain     `json:"careerDomain,omitempty"`
	Skills       []string         `json:"skills"`
	ActivityLog  []ActivityRecord `json:"activityLog"`
	Strengths    []string         `json:"strengths"`
	UpdatedAt    int64            `json:"updatedAt"`
}

// Default returns the empty-default document created on first access.
func Default() Profile {
	return Profile{
		Skills:      []string{},
		ActivityLog: []ActivityRecord{},
		Strengths:   []string{},
	}
}

// AddSkills unions the given skill names into the profile, preserving
// insertion order and deduplicating by exact string match.
func (p *Profile) AddSkills(skills []string) {
	for _, s := range skills {
		if s == "" {
			continue
		}
		if p.hasSkill(s) {
			continue
		}
		p.Skills = append(p.Skills, s)
	}
}

func (p *Profile) hasSkill(name string) bool {
	for _, s := range p.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// Apply folds one event into the profile: last-write career domain,
// idempotent skill union, activity-log append, then compaction. The
// now argument (epoch ms) is used when the event has no timestamp.
func (p *Profile) Apply(ev ActivityEvent, now int64) {
	if ev.Domain != "" && ev.Domain != p.CareerDomain {
		p.CareerDomain = ev.Domain
	}

	p.AddSkills(ev.Skills)

	if ev.ActivityType != "" {
		domain := ev.Domain
		if domain == "" {
			domain = p.CareerDomain
		}
		ts := ev.Timestamp
		if ts == 0 {
			ts = now
		}
		p.ActivityLog = append(p.ActivityLog, ActivityRecord{
			Domain:       domain,
			ActivityType: ev.ActivityType,
			Timestamp:    ts,
		})
	}

	p.ActivityLog = CompactLog(p.ActivityLog)
}

package report

import (
	"testing"
	"time"
)

func validSafetyPerception() SafetyPerception {
	return SafetyPerception{
		UserType:    Cyclist,
		RoadType:    Intersection,
		SafetyLevel: Unsafe,
		Reasons:     []string{"no cycle lane"},
		Images:      []string{"img1.png"},
	}
}

func validQuick() Quick {
	return Quick{
		RoadType:             Section,
		Condition:            PavementCondition,
		ConditionDescription: "large pothole",
		Severity:             2,
		Images:               []string{"img1.png"},
	}
}

func validIncident() Incident {
	return Incident{
		RoadType:     Turn,
		IncidentType: "damaged guardrail",
		Description:  "guardrail bent into the lane",
		Images:       []string{"img1.png"},
	}
}

func validAudit() Audit {
	return Audit{
		AuditRoadType:    "urban arterial",
		CreatedAt:        time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Author:           "auditor-7",
		WeatherCondition: "dry",
		Answers: AuditAnswers{
			Pedestrian: []string{"yes", "no"},
			Car:        []string{"yes"},
		},
	}
}

func TestIsValidWellFormed(t *testing.T) {
	testCases := []struct {
		name string
		r    Report
		kind Kind
	}{
		{name: "safety perception", r: validSafetyPerception(), kind: KindSafetyPerception},
		{name: "quick", r: validQuick(), kind: KindQuick},
		{name: "incident", r: validIncident(), kind: KindIncident},
		{name: "audit", r: validAudit(), kind: KindAudit},
	}

	for _, testCase := range testCases {
		if !IsValid(testCase.r, testCase.kind) {
			t.Errorf("%s: expected a minimal well-formed report to be valid", testCase.name)
		}
	}
}

func TestIsValidMissingFields(t *testing.T) {
	testCases := []struct {
		name string
		r    Report
		kind Kind
	}{
		{name: "perception without user type", kind: KindSafetyPerception,
			r: func() Report { v := validSafetyPerception(); v.UserType = ""; return v }()},
		{name: "perception without road type", kind: KindSafetyPerception,
			r: func() Report { v := validSafetyPerception(); v.RoadType = ""; return v }()},
		{name: "perception without safety level", kind: KindSafetyPerception,
			r: func() Report { v := validSafetyPerception(); v.SafetyLevel = ""; return v }()},
		{name: "perception without reasons", kind: KindSafetyPerception,
			r: func() Report { v := validSafetyPerception(); v.Reasons = nil; return v }()},
		{name: "perception without images", kind: KindSafetyPerception,
			r: func() Report { v := validSafetyPerception(); v.Images = nil; return v }()},
		{name: "quick without road type", kind: KindQuick,
			r: func() Report { v := validQuick(); v.RoadType = ""; return v }()},
		{name: "quick without condition", kind: KindQuick,
			r: func() Report { v := validQuick(); v.Condition = ""; return v }()},
		{name: "quick without description", kind: KindQuick,
			r: func() Report { v := validQuick(); v.ConditionDescription = ""; return v }()},
		{name: "quick with unset severity", kind: KindQuick,
			r: func() Report { v := validQuick(); v.Severity = 0; return v }()},
		{name: "quick with severity out of range", kind: KindQuick,
			r: func() Report { v := validQuick(); v.Severity = SeverityMax + 1; return v }()},
		{name: "quick without images", kind: KindQuick,
			r: func() Report { v := validQuick(); v.Images = nil; return v }()},
		{name: "incident without road type", kind: KindIncident,
			r: func() Report { v := validIncident(); v.RoadType = ""; return v }()},
		{name: "incident without incident type", kind: KindIncident,
			r: func() Report { v := validIncident(); v.IncidentType = ""; return v }()},
		{name: "incident without description", kind: KindIncident,
			r: func() Report { v := validIncident(); v.Description = ""; return v }()},
		{name: "incident without images", kind: KindIncident,
			r: func() Report { v := validIncident(); v.Images = nil; return v }()},
		{name: "audit without road type", kind: KindAudit,
			r: func() Report { v := validAudit(); v.AuditRoadType = ""; return v }()},
		{name: "audit without author", kind: KindAudit,
			r: func() Report { v := validAudit(); v.Author = ""; return v }()},
		{name: "audit without timestamp", kind: KindAudit,
			r: func() Report { v := validAudit(); v.CreatedAt = time.Time{}; return v }()},
		{name: "audit with overlong answers", kind: KindAudit,
			r: func() Report {
				v := validAudit()
				v.Answers.Motocyclist = make([]string, len(MotocyclistQuestions)+1)
				for i := range v.Answers.Motocyclist {
					v.Answers.Motocyclist[i] = "yes"
				}
				return v
			}()},
		{name: "audit with blank answer", kind: KindAudit,
			r: func() Report { v := validAudit(); v.Answers.Pedestrian = []string{""}; return v }()},
	}

	for _, testCase := range testCases {
		if IsValid(testCase.r, testCase.kind) {
			t.Errorf("%s: expected report to be invalid", testCase.name)
		}
	}
}

func TestIsValidFailClosed(t *testing.T) {
	if IsValid(nil, KindQuick) {
		t.Errorf("nil report: expected invalid")
	}
	if IsValid(validQuick(), KindIncident) {
		t.Errorf("kind mismatch: expected invalid")
	}
	if IsValid(validQuick(), Kind("drone_survey")) {
		t.Errorf("unrecognized kind: expected invalid (default-deny)")
	}
}

func TestAuditNeedsNoImages(t *testing.T) {
	v := validAudit()
	v.Images = nil
	if !IsValid(v, KindAudit) {
		t.Errorf("audit without images: expected valid")
	}
}

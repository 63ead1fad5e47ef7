package report

import (
	"fmt"
	"time"
)

// Envelope is the wire form of a report. All kind-specific fields are optional
// on the wire; Decode rejects an envelope whose fields do not form a complete
// report of its tagged kind, so a typed Report never exists half-built.
type Envelope struct {
	ReportType Kind    `json:"report_type"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	UserType    UserType    `json:"user_type,omitempty"`
	RoadType    RoadType    `json:"road_type,omitempty"`
	SafetyLevel SafetyLevel `json:"safety_level,omitempty"`
	Reasons     []string    `json:"reasons,omitempty"`

	ConditionType        ConditionType `json:"condition_type,omitempty"`
	ConditionDescription string        `json:"condition_description,omitempty"`
	SeverityLevel        int           `json:"severity_level,omitempty"`

	IncidentType string `json:"incident_type,omitempty"`
	Description  string `json:"description,omitempty"`

	AuditRoadType    string       `json:"audit_road_type,omitempty"`
	CreatedAt        time.Time    `json:"created_at,omitempty"`
	Author           string       `json:"author,omitempty"`
	WeatherCondition string       `json:"weather_condition,omitempty"`
	Answers          AuditAnswers `json:"answers,omitempty"`

	Images []string `json:"images,omitempty"`
}

// Decode builds the typed report tagged by the envelope.
func (e Envelope) Decode() (Report, error) {
	var r Report
	switch e.ReportType {
	case KindSafetyPerception:
		r = SafetyPerception{
			UserType:    e.UserType,
			RoadType:    e.RoadType,
			SafetyLevel: e.SafetyLevel,
			Reasons:     e.Reasons,
			Images:      e.Images,
		}
	case KindQuick:
		r = Quick{
			RoadType:             e.RoadType,
			Condition:            e.ConditionType,
			ConditionDescription: e.ConditionDescription,
			Severity:             e.SeverityLevel,
			Images:               e.Images,
		}
	case KindIncident:
		if e.IncidentType != "" && !KnownIncident(e.IncidentType) {
			return nil, fmt.Errorf("unknown incident type %q", e.IncidentType)
		}
		r = Incident{
			RoadType:     e.RoadType,
			IncidentType: e.IncidentType,
			Description:  e.Description,
			Images:       e.Images,
		}
	case KindAudit:
		r = Audit{
			AuditRoadType:    e.AuditRoadType,
			CreatedAt:        e.CreatedAt,
			Author:           e.Author,
			WeatherCondition: e.WeatherCondition,
			Answers:          e.Answers,
			Images:           e.Images,
		}
	default:
		return nil, fmt.Errorf("unrecognized report type %q", e.ReportType)
	}
	if !IsValid(r, e.ReportType) {
		return nil, fmt.Errorf("incomplete %s report", e.ReportType)
	}
	return r, nil
}

// Encode is the inverse of Decode for a typed report; lat/lon are supplied by
// the caller since the observation location lives outside the report payload.
func Encode(r Report, lat, lon float64) (Envelope, error) {
	e := Envelope{ReportType: r.Kind(), Latitude: lat, Longitude: lon}
	switch v := r.(type) {
	case SafetyPerception:
		e.UserType = v.UserType
		e.RoadType = v.RoadType
		e.SafetyLevel = v.SafetyLevel
		e.Reasons = v.Reasons
		e.Images = v.Images
	case Quick:
		e.RoadType = v.RoadType
		e.ConditionType = v.Condition
		e.ConditionDescription = v.ConditionDescription
		e.SeverityLevel = v.Severity
		e.Images = v.Images
	case Incident:
		e.RoadType = v.RoadType
		e.IncidentType = v.IncidentType
		e.Description = v.Description
		e.Images = v.Images
	case Audit:
		e.AuditRoadType = v.AuditRoadType
		e.CreatedAt = v.CreatedAt
		e.Author = v.Author
		e.WeatherCondition = v.WeatherCondition
		e.Answers = v.Answers
		e.Images = v.Images
	default:
		return Envelope{}, fmt.Errorf("unsupported report %T", r)
	}
	return e, nil
}

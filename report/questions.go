package report

// Audit question banks. Answer sequences in AuditAnswers are positionally
// aligned with these; the banks are fixed and shared with the service.

var PedestrianQuestions = []string{
	"Are sidewalks present on both sides of the road?",
	"Are crosswalks marked and visible?",
	"Is the crossing distance acceptable for elderly pedestrians?",
	"Is street lighting sufficient at crossing points?",
	"Are pedestrian signals installed and working?",
	"Are obstacles blocking the pedestrian path?",
}

var CyclistQuestions = []string{
	"Is a dedicated cycle lane present?",
	"Is the cycle lane separated from motor traffic?",
	"Is the pavement surface safe for narrow tires?",
	"Are drains and gratings flush with the surface?",
	"Is the road section lit at night?",
}

var MotocyclistQuestions = []string{
	"Is the pavement free of loose gravel and spills?",
	"Are guardrails fitted with motorcyclist protection?",
	"Are curves signed with advisory speeds?",
	"Is the road marking skid-resistant?",
}

var CarQuestions = []string{
	"Is the posted speed appropriate for the layout?",
	"Are lanes clearly marked?",
	"Is roadside protection present where needed?",
	"Are intersections controlled (signs or signals)?",
	"Is the stopping sight distance adequate?",
}

// QuestionBank returns the audit question bank for a user type, or nil when
// the user type has no bank (trucks and buses are not audited).
func QuestionBank(ut UserType) []string {
	switch ut {
	case Pedestrian:
		return PedestrianQuestions
	case Cyclist:
		return CyclistQuestions
	case Motocyclist:
		return MotocyclistQuestions
	case Car:
		return CarQuestions
	}
	return nil
}

// Incident reason lists. An incident report's IncidentType is drawn from one
// of these.

var InfrastructureIncidents = []string{
	"pavement collapse",
	"flooded roadway",
	"fallen tree or debris",
	"bridge or culvert damage",
	"landslide",
	"missing manhole cover",
}

var EquipmentIncidents = []string{
	"traffic light failure",
	"downed power line on road",
	"damaged guardrail",
	"missing or damaged traffic sign",
	"street lighting outage",
	"malfunctioning railway barrier",
}

// KnownIncident reports whether s appears in either incident reason list.
func KnownIncident(s string) bool {
	for _, v := range InfrastructureIncidents {
		if v == s {
			return true
		}
	}
	for _, v := range EquipmentIncidents {
		if v == s {
			return true
		}
	}
	return false
}

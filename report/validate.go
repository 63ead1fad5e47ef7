package report

// IsValid reports whether r is a complete report of the given kind. The caller
// may pass a value whose shape does not match kind; any mismatch, nil report
// or unrecognized kind yields false. Pure: no state is consulted or mutated.
func IsValid(r Report, kind Kind) bool {
	if r == nil || r.Kind() != kind {
		return false
	}
	switch kind {
	case KindSafetyPerception:
		v, ok := r.(SafetyPerception)
		if !ok {
			return false
		}
		return v.UserType != "" && v.RoadType != "" && v.SafetyLevel != "" &&
			len(v.Reasons) > 0 && len(v.Images) > 0
	case KindQuick:
		v, ok := r.(Quick)
		if !ok {
			return false
		}
		return v.RoadType != "" && v.Condition != "" && v.ConditionDescription != "" &&
			v.Severity >= SeverityMin && v.Severity <= SeverityMax && len(v.Images) > 0
	case KindIncident:
		v, ok := r.(Incident)
		if !ok {
			return false
		}
		return v.RoadType != "" && v.IncidentType != "" && v.Description != "" &&
			len(v.Images) > 0
	case KindAudit:
		v, ok := r.(Audit)
		if !ok {
			return false
		}
		// Audits carry no image requirement. Answers must stay within their
		// question banks and contain no blank selections.
		return v.AuditRoadType != "" && v.Author != "" && !v.CreatedAt.IsZero() &&
			v.WeatherCondition != "" &&
			answersAligned(v.Answers.Pedestrian, PedestrianQuestions) &&
			answersAligned(v.Answers.Cyclist, CyclistQuestions) &&
			answersAligned(v.Answers.Motocyclist, MotocyclistQuestions) &&
			answersAligned(v.Answers.Car, CarQuestions)
	}
	return false
}

func answersAligned(answers, bank []string) bool {
	if len(answers) > len(bank) {
		return false
	}
	for _, a := range answers {
		if a == "" {
			return false
		}
	}
	return true
}

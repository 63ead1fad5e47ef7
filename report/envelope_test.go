package report

import "testing"

func TestEnvelopeDecode(t *testing.T) {
	testCases := []struct {
		name        string
		env         Envelope
		expectKind  Kind
		expectError bool
	}{
		{
			name: "quick round trip",
			env: Envelope{
				ReportType:           KindQuick,
				RoadType:             Section,
				ConditionType:        PavementCondition,
				ConditionDescription: "large pothole",
				SeverityLevel:        2,
				Images:               []string{"img1.png"},
			},
			expectKind: KindQuick,
		},
		{
			name:        "unrecognized kind",
			env:         Envelope{ReportType: Kind("drone_survey")},
			expectError: true,
		},
		{
			name: "incident with unknown reason",
			env: Envelope{
				ReportType:   KindIncident,
				RoadType:     Turn,
				IncidentType: "alien landing",
				Description:  "unlisted",
				Images:       []string{"img1.png"},
			},
			expectError: true,
		},
		{
			name: "quick missing description",
			env: Envelope{
				ReportType:    KindQuick,
				RoadType:      Section,
				ConditionType: PavementCondition,
				SeverityLevel: 2,
				Images:        []string{"img1.png"},
			},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		r, err := testCase.env.Decode()
		if testCase.expectError != (err != nil) {
			t.Errorf("%s: expected error: %v, got: %v", testCase.name, testCase.expectError, err)
			continue
		}
		if err != nil {
			continue
		}
		if r.Kind() != testCase.expectKind {
			t.Errorf("%s: expected kind %s, got %s", testCase.name, testCase.expectKind, r.Kind())
		}
	}
}

func TestEncodeDecodeAgree(t *testing.T) {
	for _, r := range []Report{validSafetyPerception(), validQuick(), validIncident(), validAudit()} {
		env, err := Encode(r, 35.12, -90.12)
		if err != nil {
			t.Errorf("Encode(%s): unexpected error %v", r.Kind(), err)
			continue
		}
		back, err := env.Decode()
		if err != nil {
			t.Errorf("Decode(%s): unexpected error %v", r.Kind(), err)
			continue
		}
		if back.Kind() != r.Kind() {
			t.Errorf("round trip changed kind: %s -> %s", r.Kind(), back.Kind())
		}
	}
}

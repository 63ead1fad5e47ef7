package report

import "time"

// Kind tags the four report shapes the service accepts.
type Kind string

const (
	KindSafetyPerception Kind = "safety_perception"
	KindQuick            Kind = "quick"
	KindIncident         Kind = "incident"
	KindAudit            Kind = "audit"
)

type UserType string

const (
	Pedestrian  UserType = "pedestrian"
	Cyclist     UserType = "cyclist"
	Motocyclist UserType = "motocyclist"
	Car         UserType = "car"
	Truck       UserType = "truck"
	Bus         UserType = "bus"
)

type RoadType string

const (
	Intersection RoadType = "intersection"
	Section      RoadType = "section"
	RoundAbout   RoadType = "roundabout"
	Straight     RoadType = "straight"
	Turn         RoadType = "turn"
)

type SafetyLevel string

const (
	Safe       SafetyLevel = "safe"
	Unsafe     SafetyLevel = "unsafe"
	VeryUnsafe SafetyLevel = "very_unsafe"
)

// ConditionType enumerates the infrastructure condition categories a quick
// report can flag.
type ConditionType string

const (
	PavementCondition ConditionType = "pavement_condition"
	RoadMarking       ConditionType = "road_marking"
	TrafficSign       ConditionType = "traffic_sign"
	TrafficLight      ConditionType = "traffic_light"
	StreetLighting    ConditionType = "street_lighting"
	Sidewalk          ConditionType = "sidewalk"
	CrossWalk         ConditionType = "crosswalk"
	Drainage          ConditionType = "drainage"
	RoadsideObstacle  ConditionType = "roadside_obstacle"
	GuardRail         ConditionType = "guardrail"
	Vegetation        ConditionType = "vegetation"
	WorkZone          ConditionType = "work_zone"
)

// Severity bounds for quick reports. 0 means unset.
const (
	SeverityMin = 1
	SeverityMax = 5
)

// Report is one citizen observation. The concrete type matches its Kind tag;
// a value built through Decode is guaranteed consistent.
type Report interface {
	Kind() Kind
}

type SafetyPerception struct {
	UserType    UserType
	RoadType    RoadType
	SafetyLevel SafetyLevel
	Reasons     []string
	Images      []string
}

func (SafetyPerception) Kind() Kind { return KindSafetyPerception }

type Quick struct {
	RoadType             RoadType
	Condition            ConditionType
	ConditionDescription string
	Severity             int
	Images               []string
}

func (Quick) Kind() Kind { return KindQuick }

type Incident struct {
	RoadType     RoadType
	IncidentType string
	Description  string
	Images       []string
}

func (Incident) Kind() Kind { return KindIncident }

// AuditAnswers holds the selected answers per user type. Index i of each
// sequence answers question i of the matching question bank.
type AuditAnswers struct {
	Pedestrian  []string `json:"pedestrian"`
	Cyclist     []string `json:"cyclist"`
	Motocyclist []string `json:"motocyclist"`
	Car         []string `json:"car"`
}

type Audit struct {
	AuditRoadType    string
	CreatedAt        time.Time
	Author           string
	WeatherCondition string
	Answers          AuditAnswers
	Images           []string
}

func (Audit) Kind() Kind { return KindAudit }

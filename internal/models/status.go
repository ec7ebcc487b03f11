package models

// ProjectStatus is the canonical project status. Values match the persisted wire format.
type ProjectStatus string

const (
	ProjectStatusPlanning       ProjectStatus = "Planning"
	ProjectStatusInProgress     ProjectStatus = "In Progress"
	ProjectStatusNearCompletion ProjectStatus = "Near Completion"
	ProjectStatusCompleted      ProjectStatus = "Completed"
)

// ProjectStatuses lists every project status in display order.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusNearCompletion,
	ProjectStatusCompleted,
}

func (s ProjectStatus) Valid() bool {
	for _, status := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Color returns the badge color token used by the dashboard.
func (s ProjectStatus) Color() string {
	switch s {
	case ProjectStatusPlanning:
		return "warning"
	case ProjectStatusInProgress:
		return "primary"
	case ProjectStatusNearCompletion:
		return "secondary"
	case ProjectStatusCompleted:
		return "success"
	default:
		return "muted"
	}
}

// UnitStatus is shared by a unit's overall status and its activity statuses.
type UnitStatus string

const (
	UnitStatusBehindSchedule UnitStatus = "behind-schedule"
	UnitStatusInProgress     UnitStatus = "in-progress"
	UnitStatusCompleted      UnitStatus = "completed"
)

var UnitStatuses = []UnitStatus{
	UnitStatusBehindSchedule,
	UnitStatusInProgress,
	UnitStatusCompleted,
}

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitStatusBehindSchedule, UnitStatusInProgress, UnitStatusCompleted:
		return true
	}
	return false
}

func (s UnitStatus) Color() string {
	switch s {
	case UnitStatusCompleted:
		return "success"
	case UnitStatusInProgress:
		return "warning"
	case UnitStatusBehindSchedule:
		return "danger"
	default:
		return "muted"
	}
}

type UnitType string

const (
	UnitTypeVilla          UnitType = "Villa"
	UnitTypeTownhouse      UnitType = "Townhouse"
	UnitTypeApartment      UnitType = "Apartment"
	UnitTypeLuxuryVilla    UnitType = "Luxury Villa"
	UnitTypeInfrastructure UnitType = "Infrastructure"
)

func (t UnitType) Valid() bool {
	switch t {
	case UnitTypeVilla, UnitTypeTownhouse, UnitTypeApartment, UnitTypeLuxuryVilla, UnitTypeInfrastructure:
		return true
	}
	return false
}

// InfrastructureType is the sub type of an Infrastructure unit.
type InfrastructureType string

const (
	InfrastructureGym            InfrastructureType = "Gym & Facility Office"
	InfrastructureSwimmingPool   InfrastructureType = "Swimming Pool"
	InfrastructureMosque         InfrastructureType = "Mosque"
	InfrastructureGateHouse      InfrastructureType = "Gate House"
	InfrastructureRoad           InfrastructureType = "Road & Landscaping"
	InfrastructureCommercial     InfrastructureType = "Commercial Building"
	InfrastructureMiniGolfCourse InfrastructureType = "Mini Golf Course"
)

var InfrastructureTypes = []InfrastructureType{
	InfrastructureGym,
	InfrastructureSwimmingPool,
	InfrastructureMosque,
	InfrastructureGateHouse,
	InfrastructureRoad,
	InfrastructureCommercial,
	InfrastructureMiniGolfCourse,
}

func (t InfrastructureType) Valid() bool {
	for _, it := range InfrastructureTypes {
		if t == it {
			return true
		}
	}
	return false
}

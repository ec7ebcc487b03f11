package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activities holds the six construction phase statuses tracked per unit.
type Activities struct {
	Foundation UnitStatus `gorm:"column:foundation_status;type:varchar(32)" json:"foundation"`
	Structure  UnitStatus `gorm:"column:structure_status;type:varchar(32)" json:"structure"`
	Roofing    UnitStatus `gorm:"column:roofing_status;type:varchar(32)" json:"roofing"`
	MEP        UnitStatus `gorm:"column:mep_status;type:varchar(32)" json:"mep"`
	Interior   UnitStatus `gorm:"column:interior_status;type:varchar(32)" json:"interior"`
	Finishing  UnitStatus `gorm:"column:finishing_status;type:varchar(32)" json:"finishing"`
}

// ActivityNames lists the activities in construction order.
var ActivityNames = []string{"foundation", "structure", "roofing", "mep", "interior", "finishing"}

// Named returns the activity statuses keyed by activity name, in ActivityNames order.
func (a Activities) Named() []NamedActivity {
	return []NamedActivity{
		{Name: "foundation", Status: a.Foundation},
		{Name: "structure", Status: a.Structure},
		{Name: "roofing", Status: a.Roofing},
		{Name: "mep", Status: a.MEP},
		{Name: "interior", Status: a.Interior},
		{Name: "finishing", Status: a.Finishing},
	}
}

type NamedActivity struct {
	Name   string
	Status UnitStatus
}

type Unit struct {
	ID               string              `gorm:"type:varchar(64);primarykey" json:"id"`
	ProjectID        string              `gorm:"type:varchar(64);not null;index" json:"project_id"`
	UnitNumber       string              `gorm:"type:varchar(64);not null" json:"unit_number"`
	UnitType         UnitType            `gorm:"type:varchar(32);not null" json:"unit_type"`
	SubType          *InfrastructureType `gorm:"type:varchar(64)" json:"sub_type"`
	Bedrooms         *int                `json:"bedrooms"`
	Status           UnitStatus          `gorm:"type:varchar(32);not null;index" json:"status"`
	Progress         int                 `gorm:"not null;default:0" json:"progress"`
	TargetCompletion string              `gorm:"type:varchar(64)" json:"target_completion"`
	CurrentPhase     string              `gorm:"type:varchar(64)" json:"current_phase"`

	Activities Activities `gorm:"embedded" json:"activities"`

	Challenges  datatypes.JSONSlice[string] `gorm:"column:unit_challenges" json:"challenges"`
	Photos      datatypes.JSONSlice[string] `json:"photos"`
	LastUpdated time.Time                   `json:"last_updated"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	ID               string        `gorm:"type:varchar(64);primarykey" json:"id"`
	Title            string        `gorm:"type:varchar(255);not null" json:"title"`
	Location         string        `gorm:"type:varchar(255);not null" json:"location"`
	Description      *string       `gorm:"type:text" json:"description"`
	Manager          string        `gorm:"type:varchar(255)" json:"manager"`
	StartDate        string        `gorm:"type:varchar(64)" json:"start_date"`
	TargetCompletion string        `gorm:"type:varchar(64)" json:"target_completion"`
	CurrentPhase     string        `gorm:"type:varchar(255)" json:"current_phase"`
	Budget           string        `gorm:"type:varchar(64)" json:"budget"`
	Price            *float64      `json:"price"`
	TargetMilestone  string        `gorm:"type:text" json:"target_milestone"`
	Status           ProjectStatus `gorm:"type:varchar(32);not null;default:'Planning';index" json:"status"`
	TotalUnits       int           `gorm:"not null;default:0" json:"total_units"`
	CompletedUnits   int           `gorm:"not null;default:0" json:"completed_units"`
	Progress         int           `gorm:"not null;default:0" json:"progress"`

	ActivitiesInProgress datatypes.JSONSlice[string] `json:"activities_in_progress"`
	CompletedActivities  datatypes.JSONSlice[string] `json:"completed_activities"`
	Challenges           datatypes.JSONSlice[string] `json:"challenges"`
	Amenities            datatypes.JSONSlice[string] `json:"amenities"`
	Images               datatypes.JSONSlice[string] `json:"images"`
	ProgressImages       datatypes.JSONSlice[string] `json:"progress_images"`

	WeeklyNotes  string `gorm:"type:text" json:"weekly_notes"`
	MonthlyNotes string `gorm:"type:text" json:"monthly_notes"`

	AreaSqft  *int `json:"area_sqft"`
	Bedrooms  *int `json:"bedrooms"`
	Bathrooms *int `json:"bathrooms"`

	CreatedBy *uint64   `gorm:"index" json:"created_by"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Units []Unit `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"units,omitempty"`
}

// BeforeCreate assigns an opaque id when none was supplied.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}

// Package seed holds the pre-migration portfolio dataset in its seed vocabulary.
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/projects.yaml
var defaultDataset []byte

type Dataset struct {
	Projects []Project `yaml:"projects"`
}

// Project is a seed project. Status uses planning | in-progress | near-completion | completed.
type Project struct {
	ID                   string        `yaml:"id"`
	Name                 string        `yaml:"name"`
	Status               string        `yaml:"status"`
	Progress             int           `yaml:"progress"`
	TotalUnits           int           `yaml:"totalUnits"`
	CompletedUnits       int           `yaml:"completedUnits"`
	TargetCompletion     string        `yaml:"targetCompletion"`
	CurrentPhase         string        `yaml:"currentPhase"`
	Manager              string        `yaml:"manager"`
	Location             string        `yaml:"location"`
	StartDate            string        `yaml:"startDate"`
	Budget               string        `yaml:"budget"`
	TargetMilestone      string        `yaml:"targetMilestone"`
	ActivitiesInProgress []string      `yaml:"activitiesInProgress"`
	CompletedActivities  []string      `yaml:"completedActivities"`
	Challenges           []string      `yaml:"challenges"`
	ProgressImages       []string      `yaml:"progressImages"`
	WeeklyNotes          string        `yaml:"weeklyNotes"`
	MonthlyNotes         string        `yaml:"monthlyNotes"`
	Generate             *GenerateSpec `yaml:"generate,omitempty"`
	Units                []Unit        `yaml:"units,omitempty"`
}

// GenerateSpec describes units to synthesize when a project lists none.
type GenerateSpec struct {
	Residential    int      `yaml:"residential"`
	Infrastructure []string `yaml:"infrastructure"`
	Luxury         bool     `yaml:"luxury"`
}

type Unit struct {
	ID               string     `yaml:"id"`
	UnitNumber       string     `yaml:"unitNumber"`
	Type             string     `yaml:"type"`
	SubType          string     `yaml:"subType,omitempty"`
	Bedrooms         *int       `yaml:"bedrooms,omitempty"`
	Status           string     `yaml:"status"`
	Progress         int        `yaml:"progress"`
	TargetCompletion string     `yaml:"targetCompletion"`
	CurrentPhase     string     `yaml:"currentPhase"`
	Activities       Activities `yaml:"activities"`
	Challenges       []string   `yaml:"challenges"`
	Photos           []string   `yaml:"photos"`
	LastUpdated      string     `yaml:"lastUpdated"`
}

type Activities struct {
	Foundation string `yaml:"foundation"`
	Structure  string `yaml:"structure"`
	Roofing    string `yaml:"roofing"`
	MEP        string `yaml:"mep"`
	Interior   string `yaml:"interior"`
	Finishing  string `yaml:"finishing"`
}

var (
	ErrEmptyDataset     = errors.New("seed dataset has no projects")
	ErrMissingProjectID = errors.New("seed project is missing an id")
	ErrDuplicateProject = errors.New("duplicate seed project id")
)

// Default returns the embedded seed dataset.
func Default() (*Dataset, error) {
	return Parse(defaultDataset)
}

// Load reads a seed dataset from a YAML file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a YAML seed dataset.
func Parse(data []byte) (*Dataset, error) {
	var dataset Dataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse seed dataset: %w", err)
	}
	if len(dataset.Projects) == 0 {
		return nil, ErrEmptyDataset
	}

	seen := make(map[string]struct{}, len(dataset.Projects))
	for _, p := range dataset.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("%w (name %q)", ErrMissingProjectID, p.Name)
		}
		if _, exists := seen[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProject, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &dataset, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/constants"
	"github.com/yukikurage/portfolio-dashboard-api/internal/metrics"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
	"github.com/yukikurage/portfolio-dashboard-api/internal/storage"
	"github.com/yukikurage/portfolio-dashboard-api/internal/utils"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrVersionConflict  = errors.New("project was modified by another request")
	ErrTitleRequired    = fmt.Errorf("%w: title is required", portfolio.ErrInvalid)
	ErrLocationRequired = fmt.Errorf("%w: location is required", portfolio.ErrInvalid)
	ErrStatusRequired   = fmt.Errorf("%w: status is required", portfolio.ErrInvalid)
	ErrNoImages         = fmt.Errorf("%w: no images provided", portfolio.ErrInvalid)
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	unitRepo    repository.UnitRepository
	store       storage.BlobStore
	log         *zap.Logger
	now         func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, unitRepo repository.UnitRepository, store storage.BlobStore, log *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		unitRepo:    unitRepo,
		store:       store,
		log:         log,
		now:         time.Now,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Title                string
	Location             string
	Description          *string
	Manager              string
	StartDate            string
	TargetCompletion     string
	CurrentPhase         string
	Budget               string
	Price                *float64
	TargetMilestone      string
	Status               models.ProjectStatus
	TotalUnits           int
	CompletedUnits       int
	Progress             int
	ActivitiesInProgress []string
	CompletedActivities  []string
	Challenges           []string
	Amenities            []string
	WeeklyNotes          string
	MonthlyNotes         string
	AreaSqft             *int
	Bedrooms             *int
	Bathrooms            *int
	CreatedBy            *uint64
}

// UpdateProjectInput represents input for updating a project. Nil fields are left unchanged.
// Version must equal the stored version.
type UpdateProjectInput struct {
	Version              int
	Title                *string
	Location             *string
	Description          *string
	Manager              *string
	StartDate            *string
	TargetCompletion     *string
	CurrentPhase         *string
	Budget               *string
	Price                *float64
	TargetMilestone      *string
	Status               *models.ProjectStatus
	TotalUnits           *int
	CompletedUnits       *int
	Progress             *int
	ActivitiesInProgress *[]string
	CompletedActivities  *[]string
	Challenges           *[]string
	Amenities            *[]string
	Images               *[]string
	ProgressImages       *[]string
	WeeklyNotes          *string
	MonthlyNotes         *string
	AreaSqft             *int
	Bedrooms             *int
	Bathrooms            *int
}

// UpdateNotesInput holds the weekly and monthly notes. Nil fields are left unchanged.
type UpdateNotesInput struct {
	Version      int
	WeeklyNotes  *string
	MonthlyNotes *string
}

// ImageFile is one file of an upload batch.
type ImageFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// ImageResult is the outcome for one image of a batch.
// Kept marks an image whose object does not belong to the project and was left in storage.
type ImageResult struct {
	Name  string `json:"name,omitempty"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
	Kept  bool   `json:"kept,omitempty"`
}

// UploadResult lists the per-file outcomes of an upload and the updated project.
type UploadResult struct {
	Project *models.Project `json:"project"`
	Files   []ImageResult   `json:"files"`
}

// Uploaded counts successfully stored files.
func (r *UploadResult) Uploaded() int {
	n := 0
	for _, f := range r.Files {
		if f.Error == "" {
			n++
		}
	}
	return n
}

// DeleteResult reports a deleted project and the cleanup of its images.
type DeleteResult struct {
	ProjectID    string        `json:"project_id"`
	UnitsDeleted int64         `json:"units_deleted"`
	Images       []ImageResult `json:"images"`
}

// ListProjects returns the projects matching filter, newest first
func (s *ProjectService) ListProjects(filter portfolio.Filter) ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return filter.Apply(projects), nil
}

// Stats aggregates the projects matching filter
func (s *ProjectService) Stats(filter portfolio.Filter) (portfolio.Stats, error) {
	projects, err := s.ListProjects(filter)
	if err != nil {
		return portfolio.Stats{}, err
	}
	return portfolio.Aggregate(projects), nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProject validates the input and creates a project
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	location := strings.TrimSpace(input.Location)
	if location == "" {
		return nil, ErrLocationRequired
	}
	if input.Status == "" {
		return nil, ErrStatusRequired
	}

	project := &models.Project{
		Title:                title,
		Location:             location,
		Description:          input.Description,
		Manager:              input.Manager,
		StartDate:            input.StartDate,
		TargetCompletion:     input.TargetCompletion,
		CurrentPhase:         input.CurrentPhase,
		Budget:               input.Budget,
		Price:                priceFor(input.Price, input.Budget),
		TargetMilestone:      input.TargetMilestone,
		Status:               input.Status,
		TotalUnits:           input.TotalUnits,
		CompletedUnits:       input.CompletedUnits,
		Progress:             input.Progress,
		ActivitiesInProgress: jsonList(input.ActivitiesInProgress),
		CompletedActivities:  jsonList(input.CompletedActivities),
		Challenges:           jsonList(input.Challenges),
		Amenities:            jsonList(input.Amenities),
		Images:               jsonList(nil),
		ProgressImages:       jsonList(nil),
		WeeklyNotes:          input.WeeklyNotes,
		MonthlyNotes:         input.MonthlyNotes,
		AreaSqft:             input.AreaSqft,
		Bedrooms:             input.Bedrooms,
		Bathrooms:            input.Bathrooms,
		CreatedBy:            input.CreatedBy,
	}

	if err := portfolio.ValidateProject(project); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// UpdateProject applies the input to the project guarded by its version.
// Images dropped from the image list are removed from blob storage after the update.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if project.Version != input.Version {
		return nil, ErrVersionConflict
	}

	previousImages := slices.Clone([]string(project.Images))
	if err := applyProjectUpdate(project, input); err != nil {
		return nil, err
	}
	if err := portfolio.ValidateProject(project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(project, input.Version); err != nil {
		if errors.Is(err, repository.ErrStaleVersion) {
			return nil, ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	var dropped []string
	for _, url := range previousImages {
		if !slices.Contains(project.Images, url) {
			dropped = append(dropped, url)
		}
	}
	s.removeImages(ctx, project.ID, dropped)

	return project, nil
}

func applyProjectUpdate(project *models.Project, input UpdateProjectInput) error {
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return ErrTitleRequired
		}
		project.Title = title
	}
	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		if location == "" {
			return ErrLocationRequired
		}
		project.Location = location
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.Manager != nil {
		project.Manager = *input.Manager
	}
	if input.StartDate != nil {
		project.StartDate = *input.StartDate
	}
	if input.TargetCompletion != nil {
		project.TargetCompletion = *input.TargetCompletion
	}
	if input.CurrentPhase != nil {
		project.CurrentPhase = *input.CurrentPhase
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
		if input.Price == nil {
			project.Price = priceFor(nil, project.Budget)
		}
	}
	if input.Price != nil {
		project.Price = input.Price
	}
	if input.TargetMilestone != nil {
		project.TargetMilestone = *input.TargetMilestone
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.TotalUnits != nil {
		project.TotalUnits = *input.TotalUnits
	}
	if input.CompletedUnits != nil {
		project.CompletedUnits = *input.CompletedUnits
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.ActivitiesInProgress != nil {
		project.ActivitiesInProgress = jsonList(*input.ActivitiesInProgress)
	}
	if input.CompletedActivities != nil {
		project.CompletedActivities = jsonList(*input.CompletedActivities)
	}
	if input.Challenges != nil {
		project.Challenges = jsonList(*input.Challenges)
	}
	if input.Amenities != nil {
		project.Amenities = jsonList(*input.Amenities)
	}
	if input.Images != nil {
		project.Images = jsonList(*input.Images)
	}
	if input.ProgressImages != nil {
		project.ProgressImages = jsonList(*input.ProgressImages)
	}
	if input.WeeklyNotes != nil {
		project.WeeklyNotes = *input.WeeklyNotes
	}
	if input.MonthlyNotes != nil {
		project.MonthlyNotes = *input.MonthlyNotes
	}
	if input.AreaSqft != nil {
		project.AreaSqft = input.AreaSqft
	}
	if input.Bedrooms != nil {
		project.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms != nil {
		project.Bathrooms = input.Bathrooms
	}
	return nil
}

// UpdateNotes updates only the weekly and monthly notes
func (s *ProjectService) UpdateNotes(id string, input UpdateNotesInput) (*models.Project, error) {
	fields := make(map[string]interface{}, 2)
	if input.WeeklyNotes != nil {
		fields["weekly_notes"] = *input.WeeklyNotes
	}
	if input.MonthlyNotes != nil {
		fields["monthly_notes"] = *input.MonthlyNotes
	}

	if len(fields) == 0 {
		project, err := s.GetProject(id)
		if err != nil {
			return nil, err
		}
		if project.Version != input.Version {
			return nil, ErrVersionConflict
		}
		return project, nil
	}

	if err := s.projectRepo.UpdateFields(id, input.Version, fields); err != nil {
		if !errors.Is(err, repository.ErrStaleVersion) {
			return nil, fmt.Errorf("failed to update notes: %w", err)
		}
		if _, findErr := s.GetProject(id); findErr != nil {
			return nil, findErr
		}
		return nil, ErrVersionConflict
	}

	return s.GetProject(id)
}

// DeleteProject deletes the project row and its units, then removes each image from blob
// storage. Image removal failures are reported per image and do not undo the delete.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (*DeleteResult, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	units, err := s.unitRepo.CountByProject(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count units: %w", err)
	}

	if err := s.projectRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	urls := append(slices.Clone([]string(project.Images)), project.ProgressImages...)
	result := &DeleteResult{
		ProjectID:    id,
		UnitsDeleted: units,
		Images:       s.removeImages(ctx, id, urls),
	}

	s.log.Info("deleted project",
		zap.String("project_id", id),
		zap.Int64("units", units),
		zap.Int("images", len(urls)),
	)
	return result, nil
}

// UploadImages stores the files one at a time and appends the successful URLs to the
// project's images. A failing file is recorded and skipped.
func (s *ProjectService) UploadImages(ctx context.Context, id string, files []ImageFile) (*UploadResult, error) {
	if len(files) == 0 {
		return nil, ErrNoImages
	}

	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if len(project.Images)+len(files) > constants.MaxProjectImages {
		return nil, fmt.Errorf("%w: a project holds at most %d images", portfolio.ErrTooManyImages, constants.MaxProjectImages)
	}

	result := &UploadResult{Files: make([]ImageResult, 0, len(files))}
	var uploaded []string
	for _, file := range files {
		url, err := s.uploadImage(ctx, project.ID, file)
		if err != nil {
			metrics.IncrementImageOperation("upload", "failed")
			s.log.Warn("failed to upload image",
				zap.String("project_id", project.ID),
				zap.String("file", file.Name),
				zap.Error(err),
			)
			result.Files = append(result.Files, ImageResult{Name: file.Name, Error: err.Error()})
			continue
		}
		metrics.IncrementImageOperation("upload", "succeeded")
		uploaded = append(uploaded, url)
		result.Files = append(result.Files, ImageResult{Name: file.Name, URL: url})
	}

	if len(uploaded) > 0 {
		version := project.Version
		project.Images = append(project.Images, uploaded...)
		if err := s.projectRepo.Update(project, version); err != nil {
			s.removeImages(ctx, project.ID, uploaded)
			if errors.Is(err, repository.ErrStaleVersion) {
				return nil, ErrVersionConflict
			}
			return nil, fmt.Errorf("failed to save images: %w", err)
		}
	}

	result.Project = project
	return result, nil
}

func (s *ProjectService) uploadImage(ctx context.Context, projectID string, file ImageFile) (string, error) {
	if err := storage.CheckImage(file.Name, file.Size); err != nil {
		return "", err
	}

	key, err := utils.GenerateObjectKey(projectID, filepath.Ext(file.Name), s.now())
	if err != nil {
		return "", err
	}

	r, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer r.Close()

	return s.store.Upload(ctx, key, r)
}

// removeImages removes the objects uploaded for projectID. Keys without the project's
// prefix belong to another project or an external host and are kept.
func (s *ProjectService) removeImages(ctx context.Context, projectID string, urls []string) []ImageResult {
	results := make([]ImageResult, 0, len(urls))
	for _, url := range urls {
		res := ImageResult{URL: url}
		key := storage.KeyFromURL(url)
		if !strings.HasPrefix(key, projectID+"-") {
			res.Kept = true
			results = append(results, res)
			continue
		}
		if err := s.store.Remove(ctx, []string{key}); err != nil {
			res.Error = err.Error()
			metrics.IncrementImageOperation("remove", "failed")
			s.log.Warn("failed to remove image", zap.String("url", url), zap.Error(err))
		} else {
			metrics.IncrementImageOperation("remove", "succeeded")
		}
		results = append(results, res)
	}
	return results
}

// priceFor keeps an explicit price, else derives one from the budget text.
func priceFor(price *float64, budget string) *float64 {
	if price != nil {
		return price
	}
	if v := portfolio.ExtractPrice(budget); v > 0 {
		return &v
	}
	return nil
}

func jsonList(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](values)
}

package services

import (
	"finu/internal/models"
	"finu/internal/repositories"
)

// DirectoryServiceInterface serves the static scholarship directory and
// the stock savings tips
type DirectoryServiceInterface interface {
	ListScholarships(filter repositories.ScholarshipFilter) ([]models.Scholarship, error)
	ListTips() []models.Tip
}

// DirectoryService reads the scholarship directory. The directory is
// reference data shared by all users.
type DirectoryService struct {
	scholarships repositories.ScholarshipRepositoryInterface
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(scholarships repositories.ScholarshipRepositoryInterface) DirectoryServiceInterface {
	return &DirectoryService{
		scholarships: scholarships,
	}
}

// ListScholarships returns scholarships matching the filter
func (s *DirectoryService) ListScholarships(filter repositories.ScholarshipFilter) ([]models.Scholarship, error) {
	return s.scholarships.List(filter)
}

// ListTips returns the stock savings tips shown on the dashboard
func (s *DirectoryService) ListTips() []models.Tip {
	return models.DefaultTips()
}

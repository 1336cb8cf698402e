package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finu/internal/models"

	"gorm.io/gorm"
)

// ScholarshipFilter narrows a scholarship listing. Empty fields match
// everything.
type ScholarshipFilter struct {
	Query    string
	State    string
	Category string
}

// ScholarshipRepositoryInterface defines database operations for the
// scholarship directory
type ScholarshipRepositoryInterface interface {
	List(filter ScholarshipFilter) ([]models.Scholarship, error)
	Count() (int64, error)
	Seed(scholarships []models.Scholarship) error
}

// ScholarshipRepository handles database operations for scholarships
type ScholarshipRepository struct {
	db *gorm.DB
}

// NewScholarshipRepository creates a new scholarship repository
func NewScholarshipRepository(db *gorm.DB) ScholarshipRepositoryInterface {
	return &ScholarshipRepository{
		db: db,
	}
}

// List retrieves scholarships matching the filter, ordered by name.
// States and categories are stored as JSON arrays, so those filters
// match on the serialized text.
func (r *ScholarshipRepository) List(filter ScholarshipFilter) ([]models.Scholarship, error) {
	var scholarships []models.Scholarship

	query := r.db.Model(&models.Scholarship{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(provider) LIKE ?", pattern, pattern)
	}
	if state := strings.TrimSpace(filter.State); state != "" {
		query = query.Where("states LIKE ? OR states LIKE ?", `%"All India"%`, `%"`+state+`"%`)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("categories LIKE ?", `%"`+category+`"%`)
	}

	if err := query.Order("name ASC").Find(&scholarships).Error; err != nil {
		return nil, fmt.Errorf("failed to list scholarships: %w", err)
	}

	return scholarships, nil
}

// Count returns the number of scholarships in the directory
func (r *ScholarshipRepository) Count() (int64, error) {
	var count int64

	if err := r.db.Model(&models.Scholarship{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count scholarships: %w", err)
	}

	return count, nil
}

// Seed inserts the given scholarships if the directory is empty
func (r *ScholarshipRepository) Seed(scholarships []models.Scholarship) error {
	if len(scholarships) == 0 {
		return errors.New("no scholarships to seed")
	}

	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := r.db.Create(&scholarships).Error; err != nil {
		return fmt.Errorf("failed to seed scholarships: %w", err)
	}

	return nil
}

package repositories_test

import (
	"testing"
	"time"

	"finu/internal/database"
	"finu/internal/models"
	"finu/internal/repositories"

	"github.com/stretchr/testify/suite"
)

type ScholarshipRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo repositories.ScholarshipRepositoryInterface
}

func TestScholarshipRepositorySuite(t *testing.T) {
	suite.Run(t, new(ScholarshipRepositoryTestSuite))
}

func (s *ScholarshipRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewScholarshipRepository(s.db.DB)
}

func (s *ScholarshipRepositoryTestSuite) directory() []models.Scholarship {
	deadline := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)
	return []models.Scholarship{
		{
			Name:       "Post Matric Scholarship for SC Students",
			Provider:   "Ministry of Social Justice",
			Amount:     "Upto ₹13,500 p.a.",
			Deadline:   deadline,
			States:     models.StringList{"All India"},
			Categories: models.StringList{"SC"},
			Link:       "https://scholarships.gov.in",
		},
		{
			Name:       "Merit Cum Means Scholarship",
			Provider:   "Ministry of Minority Affairs",
			Amount:     "Full Course Fee",
			Deadline:   deadline,
			States:     models.StringList{"All India"},
			Categories: models.StringList{"Minority"},
			Link:       "https://scholarships.gov.in",
		},
		{
			Name:       "Mukhyamantri Medhavi Vidyarthi Yojana",
			Provider:   "Government of Madhya Pradesh",
			Amount:     "Full Course Fee",
			Deadline:   deadline,
			States:     models.StringList{"Madhya Pradesh"},
			Categories: models.StringList{"General", "OBC"},
			Link:       "https://medhavikalyan.mp.gov.in",
		},
	}
}

func (s *ScholarshipRepositoryTestSuite) seedDirectory() {
	s.Require().NoError(s.repo.Seed(s.directory()))
}

func (s *ScholarshipRepositoryTestSuite) TestSeed_PopulatesEmptyDirectory() {
	s.seedDirectory()

	count, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *ScholarshipRepositoryTestSuite) TestSeed_SkipsWhenDirectoryNotEmpty() {
	s.seedDirectory()
	s.Require().NoError(s.repo.Seed(s.directory()))

	count, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *ScholarshipRepositoryTestSuite) TestSeed_RejectsEmptyInput() {
	s.Error(s.repo.Seed(nil))
}

func (s *ScholarshipRepositoryTestSuite) TestList_All() {
	s.seedDirectory()

	scholarships, err := s.repo.List(repositories.ScholarshipFilter{})
	s.Require().NoError(err)
	s.Len(scholarships, 3)
	// Ordered by name
	s.Equal("Merit Cum Means Scholarship", scholarships[0].Name)
}

func (s *ScholarshipRepositoryTestSuite) TestList_QueryMatchesNameCaseInsensitive() {
	s.seedDirectory()

	scholarships, err := s.repo.List(repositories.ScholarshipFilter{Query: "medhavi"})
	s.Require().NoError(err)
	s.Require().Len(scholarships, 1)
	s.Equal("Mukhyamantri Medhavi Vidyarthi Yojana", scholarships[0].Name)
}

func (s *ScholarshipRepositoryTestSuite) TestList_QueryMatchesProvider() {
	s.seedDirectory()

	scholarships, err := s.repo.List(repositories.ScholarshipFilter{Query: "minority affairs"})
	s.Require().NoError(err)
	s.Require().Len(scholarships, 1)
	s.Equal("Merit Cum Means Scholarship", scholarships[0].Name)
}

func (s *ScholarshipRepositoryTestSuite) TestList_StateIncludesAllIndia() {
	s.seedDirectory()

	// A Madhya Pradesh student sees state schemes plus the national ones
	scholarships, err := s.repo.List(repositories.ScholarshipFilter{State: "Madhya Pradesh"})
	s.Require().NoError(err)
	s.Len(scholarships, 3)

	// A student elsewhere only sees the national schemes
	scholarships, err = s.repo.List(repositories.ScholarshipFilter{State: "Kerala"})
	s.Require().NoError(err)
	s.Len(scholarships, 2)
}

func (s *ScholarshipRepositoryTestSuite) TestList_CategoryFilter() {
	s.seedDirectory()

	scholarships, err := s.repo.List(repositories.ScholarshipFilter{Category: "OBC"})
	s.Require().NoError(err)
	s.Require().Len(scholarships, 1)
	s.Equal("Mukhyamantri Medhavi Vidyarthi Yojana", scholarships[0].Name)
}

func (s *ScholarshipRepositoryTestSuite) TestList_CombinedFilters() {
	s.seedDirectory()

	scholarships, err := s.repo.List(repositories.ScholarshipFilter{
		Query: "scholarship",
		State: "Kerala",
	})
	s.Require().NoError(err)
	s.Len(scholarships, 2)
}

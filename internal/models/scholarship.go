package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores a list of strings as a JSON column
type StringList []string

func (sl StringList) Value() (driver.Value, error) {
	if sl == nil {
		return "[]", nil
	}
	data, err := json.Marshal(sl)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (sl *StringList) Scan(value interface{}) error {
	if value == nil {
		*sl = StringList{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, sl)
	case string:
		return json.Unmarshal([]byte(v), sl)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// Scholarship is a directory entry in the scholarship listing. The amount is
// free text because providers publish ranges and in-kind awards ("Full Course
// Fee", "Upto ₹13,500 p.a.").
type Scholarship struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	Provider   string     `gorm:"type:varchar(255);not null" json:"provider"`
	Amount     string     `gorm:"type:varchar(100)" json:"amount"`
	Deadline   time.Time  `gorm:"index" json:"deadline"`
	States     StringList `gorm:"type:text" json:"states"`
	Categories StringList `gorm:"type:text" json:"categories"`
	Income     string     `gorm:"type:varchar(100)" json:"income,omitempty"`
	Link       string     `gorm:"type:varchar(500)" json:"link"`
	CreatedAt  time.Time  `gorm:"not null" json:"-"`
}

func (s *Scholarship) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	if s.Name == "" {
		return errors.New("scholarship name is required")
	}
	if s.Provider == "" {
		return errors.New("scholarship provider is required")
	}

	return nil
}

func (s *Scholarship) TableName() string {
	return "scholarships"
}

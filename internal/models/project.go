package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProjectNameNotUnique    = errors.New("the project name must be unique")
	ErrSubProjectNameNotUnique = errors.New("the sub project name must be unique for the project")
	ErrSubProjectMismatch      = errors.New("the sub project does not belong to the project")
)

// Project is an organizational unit that receives allocations of funding.
type Project struct {
	DefaultModel
	Name        string `json:"name" gorm:"uniqueIndex" example:"Clean Water Initiative"` // Name of the project
	Description string `json:"description" example:"Wells for three villages"`           // Description of the project
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	if p.Name == "" {
		return Validationf("the project name must not be empty")
	}

	return nil
}

// SubProject belongs to exactly one project.
type SubProject struct {
	DefaultModel
	ProjectID   uuid.UUID `json:"projectId" gorm:"uniqueIndex:sub_project_name" example:"0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"` // The project this sub project belongs to
	Project     Project   `json:"-"`
	Name        string    `json:"name" gorm:"uniqueIndex:sub_project_name" example:"Village A"` // Name of the sub project, unique per project
	Description string    `json:"description" example:"First well"`                             // Description of the sub project
}

func (s *SubProject) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	if s.Name == "" {
		return Validationf("the sub project name must not be empty")
	}

	return nil
}

func (s *SubProject) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	return tx.First(&Project{}, s.ProjectID).Error
}

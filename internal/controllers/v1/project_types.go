package v1

import (
	"fmt"

	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectEditable struct {
	Name        string `json:"name" example:"Clean Water Initiative"`          // Name of the project, must be unique
	Description string `json:"description" example:"Wells for three villages"` // Description of the project
}

// model returns the database resource for the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type ProjectLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`                     // The project itself
	SubProjects string `json:"subProjects" example:"https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2/sub-projects"` // Sub projects of the project
	Budgets     string `json:"budgets" example:"https://example.com/api/v1/budgets?project=0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`           // Allocation budgets of the project
	Ledger      string `json:"ledger" example:"https://example.com/api/v1/reports/ledger?project=0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`     // Ledger of the project's allocations and expenses
}

// Project is the API v1 representation of a project.
type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.DBContextURL))

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:        model.Name,
			Description: model.Description,
		},
		Links: ProjectLinks{
			Self:        fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			SubProjects: fmt.Sprintf("%s/v1/projects/%s/sub-projects", url, model.ID),
			Budgets:     fmt.Sprintf("%s/v1/budgets?project=%s", url, model.ID),
			Ledger:      fmt.Sprintf("%s/v1/reports/ledger?project=%s", url, model.ID),
		},
	}
}

type ProjectListResponse struct {
	Data  []Project `json:"data"`                                                          // List of projects
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProjectResponse `json:"data"`                                                          // List of created Projects
}

func (p *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                          // Data for the project
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this project
}

type SubProjectEditable struct {
	Name        string `json:"name" example:"Village A"`         // Name of the sub project, unique per project
	Description string `json:"description" example:"First well"` // Description of the sub project
}

// model returns the database resource for the editable fields
func (editable SubProjectEditable) model(projectID uuid.UUID) models.SubProject {
	return models.SubProject{
		ProjectID:   projectID,
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type SubProjectLinks struct {
	Project string `json:"project" example:"https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`                 // The project of the sub project
	Ledger  string `json:"ledger" example:"https://example.com/api/v1/reports/ledger?subProject=5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"` // Ledger of the sub project's allocations and expenses
}

// SubProject is the API v1 representation of a sub project.
type SubProject struct {
	models.DefaultModel
	ProjectID uuid.UUID `json:"projectId" example:"0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"` // The project this sub project belongs to
	SubProjectEditable
	Links SubProjectLinks `json:"links"`
}

func newSubProject(c *gin.Context, model models.SubProject) SubProject {
	url := c.GetString(string(models.DBContextURL))

	return SubProject{
		DefaultModel: model.DefaultModel,
		ProjectID:    model.ProjectID,
		SubProjectEditable: SubProjectEditable{
			Name:        model.Name,
			Description: model.Description,
		},
		Links: SubProjectLinks{
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
			Ledger:  fmt.Sprintf("%s/v1/reports/ledger?subProject=%s", url, model.ID),
		},
	}
}

type SubProjectListResponse struct {
	Data  []SubProject `json:"data"`                                                          // List of sub projects
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SubProjectCreateResponse struct {
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SubProjectResponse `json:"data"`                                                          // List of created sub projects
}

func (s *SubProjectCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SubProjectResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SubProjectResponse struct {
	Data  *SubProject `json:"data"`                                                          // Data for the sub project
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this sub project
}

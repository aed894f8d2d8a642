package v1

import (
	"net/http"

	"github.com/fundledger/backend/internal/auth"
	"github.com/fundledger/backend/internal/httputil"
	"github.com/fundledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterProjectRoutes registers the routes for projects and their sub
// projects with the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	read := auth.RequireRole(auth.ReadRoles...)
	write := auth.RequireRole(auth.ProjectWriteRoles...)

	// Root group
	{
		r.OPTIONS("", OptionsProjectList)
		r.GET("", read, GetProjects)
		r.POST("", write, CreateProjects)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", read, GetProject)
		r.OPTIONS("/:id/sub-projects", OptionsSubProjectList)
		r.GET("/:id/sub-projects", read, GetSubProjects)
		r.POST("/:id/sub-projects", write, CreateSubProjects)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/projects/{id}/sub-projects [options]
func OptionsSubProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create projects
// @Description	Creates new projects
// @Tags			Projects
// @Produce		json
// @Success		201			{object}	ProjectCreateResponse
// @Failure		400			{object}	ProjectCreateResponse
// @Failure		403			{object}	httpError
// @Failure		500			{object}	ProjectCreateResponse
// @Param			projects	body		[]ProjectEditable	true	"Projects"
// @Security		Bearer
// @Router			/v1/projects [post]
func CreateProjects(c *gin.Context) {
	var editables []ProjectEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProjectCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProjectCreateResponse{}

	for _, editable := range editables {
		project := editable.model()
		err = models.DB.Create(&project).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newProject(c, project)
		r.Data = append(r.Data, ProjectResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List projects
// @Description	Returns all projects ordered by name
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		403	{object}	httpError
// @Failure		500	{object}	ProjectListResponse
// @Security		Bearer
// @Router			/v1/projects [get]
func GetProjects(c *gin.Context) {
	var projects []models.Project
	err := models.DB.Order("name ASC").Find(&projects).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Project, 0)
	for _, project := range projects {
		data = append(data, newProject(c, project))
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: data})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		400	{object}	ProjectResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}

// @Summary		Create sub projects
// @Description	Creates new sub projects for the project
// @Tags			Projects
// @Produce		json
// @Success		201				{object}	SubProjectCreateResponse
// @Failure		400				{object}	SubProjectCreateResponse
// @Failure		403				{object}	httpError
// @Failure		404				{object}	SubProjectCreateResponse
// @Failure		500				{object}	SubProjectCreateResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subProjects		body		[]SubProjectEditable	true	"Sub projects"
// @Security		Bearer
// @Router			/v1/projects/{id}/sub-projects [post]
func CreateSubProjects(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubProjectCreateResponse{
			Error: &s,
		})
		return
	}

	var editables []SubProjectEditable
	err = httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubProjectCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SubProjectCreateResponse{}

	for _, editable := range editables {
		subProject := editable.model(uri.ID.UUID)
		err = models.DB.Create(&subProject).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSubProject(c, subProject)
		r.Data = append(r.Data, SubProjectResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List sub projects
// @Description	Returns the sub projects of the project ordered by name
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	SubProjectListResponse
// @Failure		400	{object}	SubProjectListResponse
// @Failure		403	{object}	httpError
// @Failure		404	{object}	SubProjectListResponse
// @Failure		500	{object}	SubProjectListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		Bearer
// @Router			/v1/projects/{id}/sub-projects [get]
func GetSubProjects(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubProjectListResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubProjectListResponse{
			Error: &s,
		})
		return
	}

	var subProjects []models.SubProject
	err = models.DB.Where(&models.SubProject{ProjectID: uri.ID.UUID}).Order("name ASC").Find(&subProjects).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SubProjectListResponse{
			Error: &s,
		})
		return
	}

	data := make([]SubProject, 0)
	for _, subProject := range subProjects {
		data = append(data, newSubProject(c, subProject))
	}

	c.JSON(http.StatusOK, SubProjectListResponse{Data: data})
}

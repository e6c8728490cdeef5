package v1

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", optionsDetail)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	ListResponse[client.Category]
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		502		{object}	httpError
// @Param			type	query		string	false	"Only return categories of this type, INCOME or EXPENSE"
// @Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	_ = c.BindQuery(&filter)

	categoryType := client.CategoryType(filter.Type)
	if filter.Type != "" && !categoryType.Valid() {
		fail(c, errTypeInvalid)
		return
	}

	categories, err := co.api(c).Categories().List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]client.Category, 0, len(categories))
	for _, category := range categories {
		if filter.Type == "" || category.Type == categoryType {
			data = append(data, category)
		}
	}

	c.JSON(http.StatusOK, ListResponse[client.Category]{Data: data})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	Response[client.Category]
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		502			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	createResource[client.Category, client.CategoryRequest, CategoryEditable](c, co.api(c).Categories())
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Response[client.Category]
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	getResource(c, co.api(c).Categories())
}

// @Summary		Update category
// @Description	Replaces a specific category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[client.Category]
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		502			{object}	httpError
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	updateResource[client.Category, client.CategoryRequest, CategoryEditable](c, co.api(c).Categories())
}

// @Summary		Delete category
// @Description	Deletes a category. Categories that are used by transactions cannot be deleted.
// @Tags			Categories
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		502	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	deleteResource(c, co.api(c).Categories())
}

package sandbox

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

func registerCategoryRoutes(r *gin.RouterGroup) {
	r.GET("", getCategories)
	r.POST("", createCategory)
	r.GET("/:id", getCategory)
	r.PUT("/:id", updateCategory)
	r.DELETE("/:id", deleteCategory)
}

func newCategory(m models.Category) client.Category {
	return client.Category{
		ID:   m.ID.String(),
		Name: m.Name,
		Icon: m.Icon,
		Type: m.Type,
	}
}

func getCategories(c *gin.Context) {
	var categories []models.Category
	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	data := make([]client.Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, data)
}

func getCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var category models.Category
	err := models.DB.First(&category, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

func createCategory(c *gin.Context) {
	var request client.CategoryRequest
	if !bindBody(c, &request) {
		return
	}

	category := models.Category{
		Name: request.Name,
		Icon: request.Icon,
		Type: request.Type,
	}

	err := models.DB.Create(&category).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, newCategory(category))
}

func updateCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var category models.Category
	err := models.DB.First(&category, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	var request client.CategoryRequest
	if !bindBody(c, &request) {
		return
	}

	category.Name = request.Name
	category.Icon = request.Icon
	category.Type = request.Type

	err = models.DB.Omit(clause.Associations).Save(&category).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, newCategory(category))
}

func deleteCategory(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var category models.Category
	err := models.DB.First(&category, "id = ?", id).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	err = models.DB.Delete(&category).Error
	if err != nil {
		problem(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

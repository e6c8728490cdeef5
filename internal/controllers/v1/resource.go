package v1

import (
	"net/http"

	"github.com/finance-dashboard/backend/internal/client"
	"github.com/finance-dashboard/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// ListResponse is the response for a list of resources.
type ListResponse[T any] struct {
	Data  []T     `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Response is the response for a single resource.
type Response[T any] struct {
	Data  *T      `json:"data"`                                                          // Data for the resource
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// editable is implemented by the bodies of pass-through resources.
type editable[R any] interface {
	request() R
}

// The functions below forward requests for resources that the BFF
// does not process to the finance API.

func listResources[T, R any](c *gin.Context, r client.Resource[T, R]) {
	list, err := r.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	if list == nil {
		list = []T{}
	}

	c.JSON(http.StatusOK, ListResponse[T]{Data: list})
}

func getResource[T, R any](c *gin.Context, r client.Resource[T, R]) {
	resource, err := r.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[T]{Data: &resource})
}

func createResource[T, R any, E editable[R]](c *gin.Context, r client.Resource[T, R]) {
	var e E
	err := httputil.BindData(c, &e)
	if err != nil {
		fail(c, err)
		return
	}

	resource, err := r.Create(c.Request.Context(), e.request())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[T]{Data: &resource})
}

func updateResource[T, R any, E editable[R]](c *gin.Context, r client.Resource[T, R]) {
	var e E
	err := httputil.BindData(c, &e)
	if err != nil {
		fail(c, err)
		return
	}

	resource, err := r.Update(c.Request.Context(), c.Param("id"), e.request())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[T]{Data: &resource})
}

func deleteResource[T, R any](c *gin.Context, r client.Resource[T, R]) {
	err := r.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// optionsDetail answers OPTIONS requests for pass-through resources.
func optionsDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// createRequest is a request body that builds a new entity
type createRequest[E any] interface {
	toDomain() *E
}

// updateRequest is a request body that carries a partial update
type updateRequest[E any] interface {
	toPatch() records.Patch[E]
}

// ResourceHandler serves the CRUD routes of one resource
type ResourceHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// resourceHandler binds C to create and P to patch entities of type E, and
// renders them through respond.
type resourceHandler[E any, C createRequest[E], P updateRequest[E], R any] struct {
	name    string
	scope   string
	service records.Service[E]
	respond func(*E) R
	logger  logger.Logger
}

func newResourceHandler[E any, C createRequest[E], P updateRequest[E], R any](name, scope string, service records.Service[E], respond func(*E) R, logger logger.Logger) ResourceHandler {
	return &resourceHandler[E, C, P, R]{
		name:    name,
		scope:   scope,
		service: service,
		respond: respond,
		logger:  logger,
	}
}

// Create handles the POST request creating one record
func (handler *resourceHandler[E, C, P, R]) Create(ctx *gin.Context) {
	var request C
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid "+handler.name+" data: "+err.Error())
		return
	}

	created, err := handler.service.Create(withActor(ctx), request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, handler.respond(created))
}

// List handles the GET request listing records filtered by the query string
func (handler *resourceHandler[E, C, P, R]) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, handler.scope)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	list, err := handler.service.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	var listResponse = []R{}
	for _, e := range list {
		listResponse = append(listResponse, handler.respond(e))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request for one record
func (handler *resourceHandler[E, C, P, R]) GetByID(ctx *gin.Context) {
	e, err := handler.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.respond(e))
}

// Update handles the PATCH request. Only supplied fields change and an empty
// body still bumps updatedAt.
func (handler *resourceHandler[E, C, P, R]) Update(ctx *gin.Context) {
	var request P
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(ctx, "invalid "+handler.name+" data: "+err.Error())
		return
	}

	updated, err := handler.service.Update(withActor(ctx), ctx.Param("id"), request.toPatch())
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, handler.respond(updated))
}

// DeleteByID handles the DELETE request for one record
func (handler *resourceHandler[E, C, P, R]) DeleteByID(ctx *gin.Context) {
	if err := handler.service.DeleteByID(withActor(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func registerResource(group *gin.RouterGroup, path string, handler ResourceHandler) {
	group.POST(path, handler.Create)
	group.GET(path, handler.List)
	group.GET(path+"/:id", handler.GetByID)
	group.PATCH(path+"/:id", handler.Update)
	group.DELETE(path+"/:id", handler.DeleteByID)
}

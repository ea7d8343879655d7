package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// ActorHeader names the user performing a request, recorded in the activity log.
const ActorHeader = "X-User-ID"

// withActor returns the request context carrying the caller from ActorHeader.
// Values that are not UUIDs are ignored.
func withActor(ctx *gin.Context) context.Context {
	c := ctx.Request.Context()
	actor := ctx.GetHeader(ActorHeader)
	if actor == "" {
		return c
	}
	if _, err := uuid.Parse(actor); err != nil {
		return c
	}
	return records.WithActor(c, actor)
}

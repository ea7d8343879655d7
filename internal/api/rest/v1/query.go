package v1

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/pandamaske/biibii-sub002/internal/pkg/utils"
)

// Scope parameters accepted by list endpoints
const (
	scopeBaby = "babyId"
	scopeUser = "userId"
)

// parseListQuery reads the common list parameters. scope names the query
// parameter that must be present, or is empty when the list is unscoped.
func parseListQuery(ctx *gin.Context, scope string) (*records.Query, error) {
	query := records.NewQuery()

	query.BabyID = ctx.Query(scopeBaby)
	query.UserID = ctx.Query(scopeUser)
	query.Search = ctx.Query("search")

	switch scope {
	case scopeBaby:
		if query.BabyID == "" {
			return nil, records.Invalidf("babyId is required")
		}
	case scopeUser:
		if query.UserID == "" {
			return nil, records.Invalidf("userId is required")
		}
	}

	var err error
	if query.From, err = utils.ParseOptionalTime(ctx.Query("from")); err != nil {
		return nil, records.Invalid(err)
	}
	if query.To, err = utils.ParseOptionalTime(ctx.Query("to")); err != nil {
		return nil, records.Invalid(err)
	}
	query.From = utc(query.From)
	query.To = utc(query.To)

	if limit := ctx.Query("limit"); len(limit) > 0 {
		if query.Limit, err = parseInt("limit", limit); err != nil {
			return nil, err
		}
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		if query.Offset, err = parseInt("offset", offset); err != nil {
			return nil, err
		}
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		return nil, err
	}
	return query, nil
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, records.Invalid(fmt.Errorf("%s must be an integer, got %q", name, value))
	}
	return n, nil
}

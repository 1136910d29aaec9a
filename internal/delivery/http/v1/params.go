package v1

import (
	"strconv"

	"go-ats-backend/internal/query"
	"go-ats-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// parseID reads a numeric path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid id parameter")
	}
	return id, nil
}

// parseListParams reads the universal page/limit/order query parameters.
// Missing or malformed page and limit fall back to the defaults; order is
// validated downstream against the entity's column allow-list.
func parseListParams(c *gin.Context) query.Params {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return query.Params{
		Page:  page,
		Limit: limit,
		Order: c.Query("order"),
	}
}

func queryInt64(c *gin.Context, name string) *int64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryInt64s reads a repeated query parameter into an id slice, skipping
// values that fail to parse.
func queryInt64s(c *gin.Context, name string) []int64 {
	raw := c.QueryArray(name)
	if len(raw) == 0 {
		return nil
	}
	out := make([]int64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

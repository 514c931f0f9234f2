package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pankaj-shinde04/store-rating/internal/application/dto"
)

// Helpers de query string. Los valores mal formados se ignoran y se aplica el default del caso de uso.

func pageQuery(c *fiber.Ctx) dto.PageQuery {
	return dto.PageQuery{Page: c.QueryInt("page"), Limit: c.QueryInt("limit")}
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func queryBool(c *fiber.Ctx, key string) *bool {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

func queryInt64(c *fiber.Ctx, key string) int64 {
	n, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// queryDate acepta YYYY-MM-DD o RFC3339.
func queryDate(c *fiber.Ctx, key string) *time.Time {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/interview/pkg/candidate"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// candidateQuery reads search, sort and paging parameters. Unknown sort
// keys fall back to the defaults; a limit outside 1..maxPageSize or a
// negative offset is an error.
func candidateQuery(c *fiber.Ctx) (candidate.Query, error) {
	q := candidate.Query{
		Search: strings.TrimSpace(c.Query("search")),
		SortBy: candidate.ParseSortKey(c.Query("sortBy")),
		Order:  candidate.ParseOrder(c.Query("order")),
		Limit:  defaultPageSize,
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageSize {
			return q, fmt.Errorf("limit must be between 1 and %d", maxPageSize)
		}
		q.Limit = n
	}
	if v := strings.TrimSpace(c.Query("offset")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return q, fmt.Errorf("offset must be a non-negative integer")
		}
		q.Offset = n
	}
	return q, nil
}

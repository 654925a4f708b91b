package pagination

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Params represents pagination parameters
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// DefaultPage is the page served when none is requested
const DefaultPage = 1

// DefaultLimit is the default number of items per page
const DefaultLimit = 4

// GetParams extracts pagination parameters from request.
//
// There is no upper bound on limit: a large limit returns the whole collection.
func GetParams(c *fiber.Ctx) *Params {
	return NewParams(c.Query("page"), c.Query("limit"))
}

// NewParams builds Params from raw query values, falling back to the
// defaults for anything missing, unparsable or below 1.
func NewParams(rawPage, rawLimit string) *Params {
	page := parsePositive(rawPage, DefaultPage)
	limit := parsePositive(rawLimit, DefaultLimit)

	return &Params{
		Page:   page,
		Limit:  limit,
		Offset: offset(page, limit),
	}
}

// offset is (page-1)*limit, saturated at math.MaxInt so an overflowing
// page still lands past the last row.
func offset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func parsePositive(raw string, def int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// TotalPages returns ceil(total / limit)
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return int(pages)
}

// Page is the paginated envelope
type Page[T any] struct {
	Items       []T `json:"items"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// NewPage creates a new paginated envelope. A nil slice is encoded as [].
func NewPage[T any](items []T, params *Params, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:       items,
		TotalPages:  TotalPages(total, params.Limit),
		CurrentPage: params.Page,
	}
}

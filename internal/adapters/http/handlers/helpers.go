package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses the :id route parameter as an unsigned integer.
// Malformed ids are a 400 at the call site, never a 404.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// file: internals/helpers/bind.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BindAndValidate parses the JSON body into out and runs struct validation.
// On validation failure it writes the 422 envelope itself and returns the
// written response error, so controllers just `return` it.
func BindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, out *T) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.Struct(out); err != nil {
		fields := map[string][]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				key := strings.ToLower(fe.Field())
				fields[key] = append(fields[key], fe.Tag())
			}
		}
		return JsonValidationError(c, fields)
	}
	return nil
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"restaurantapi/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ListFoods godoc
// @Summary List foods
// @Tags foods
// @Produce json
// @Success 200 {array} model.Food
// @Failure 500 {object} errorPayload
// @Router /api/foods [get]
func ListFoods(svc service.FoodService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c, log, "list_foods", err)
		}
		return c.JSON(items)
	}
}

// CreateFood godoc
// @Summary Create a food
// @Tags foods
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param name formData string false "Name"
// @Param price formData string false "Price"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Param image formData file false "Image"
// @Success 200 {object} createdResponse
// @Failure 500 {object} errorPayload
// @Router /api/foods [post]
func CreateFood(svc service.FoodService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseFoodRequest(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, err.Error())
		}
		defer req.Close()

		id, err := svc.Create(c.UserContext(), req.Input, req.Upload)
		if err != nil {
			return internalError(c, log, "create_food", err)
		}
		return c.JSON(createdResponse{Message: "Food Added!", ID: id})
	}
}

// UpdateFood godoc
// @Summary Update a food
// @Description Overwrites name, price, category and description. The image is replaced only when a new file is sent.
// @Tags foods
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Food ID"
// @Param name formData string false "Name"
// @Param price formData string false "Price"
// @Param category formData string false "Category"
// @Param description formData string false "Description"
// @Param image formData file false "Image"
// @Success 200 {object} messageResponse
// @Failure 500 {object} errorPayload
// @Router /api/foods/{id} [put]
func UpdateFood(svc service.FoodService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := parseFoodRequest(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, err.Error())
		}
		defer req.Close()

		if err := svc.Update(c.UserContext(), c.Params("id"), req.Input, req.Upload); err != nil {
			return internalError(c, log, "update_food", err)
		}
		return c.JSON(messageResponse{Message: "Updated!"})
	}
}

// DeleteFood godoc
// @Summary Delete a food
// @Tags foods
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} messageResponse
// @Failure 500 {object} errorPayload
// @Router /api/foods/{id} [delete]
func DeleteFood(svc service.FoodService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return internalError(c, log, "delete_food", err)
		}
		return c.JSON(messageResponse{Message: "Delete Successful!"})
	}
}

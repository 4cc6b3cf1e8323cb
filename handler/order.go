package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"essence_store/constants"
	"essence_store/database"
	"essence_store/helper"
	"essence_store/model"
	"essence_store/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrders lists all orders for the back office, newest first.
func GetOrders(c *fiber.Ctx) error {
	var pagination model.Pagination
	pagination.Limit = utils.Ptr(c.QueryInt("limit", 0))
	pagination.Page = utils.Ptr(c.QueryInt("page", 1))

	var totalCount int64
	database.DB.Model(&model.Order{}).Count(&totalCount)

	var orders []model.Order
	query := database.DB.Order("created_at desc")
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// CreateOrder persists a checkout and hands the confirmation (invoice render
// + email) to the notification worker. The order write is the durability
// boundary: a failed email never rolls it back.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOrderInput)

	order := helper.BuildOrder(input, time.Now())
	if err := database.DB.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create order", err)
	}

	EnqueueOrderConfirmation(order.ID)
	PublishOrderEvent("created", order)

	return utils.SuccessResponseWithMessage(c, fiber.StatusCreated, order,
		fmt.Sprintf("Order %s placed successfully", order.OrderNumber))
}

// UpdateOrder applies the admin's partial update. Any status may follow any
// other, there is deliberately no transition guard here.
func UpdateOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateOrderInput)

	var order model.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	helper.ApplyOrderUpdate(&order, input)
	if err := database.DB.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update order", err)
	}

	PublishOrderEvent("updated", order)
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// TrackOrder is the public lookup. Both keys must match the same record,
// case-insensitively; the not-found message never says which key was wrong.
func TrackOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.TrackOrderInput)

	var order model.Order
	err := database.DB.
		Where("LOWER(order_number) = ? AND LOWER(customer_email) = ?",
			strings.ToLower(input.OrderNumber), strings.ToLower(input.Email)).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_TRACK_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.RedactOrder(order))
}

// DownloadInvoice serves the invoice by public order number, re-rendered on
// demand from the stored order.
func DownloadInvoice(c *fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")

	var order model.Order
	if err := database.DB.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return sendInvoice(c, order)
}

// DownloadInvoiceById is the admin variant keyed by database id.
func DownloadInvoiceById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var order model.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return sendInvoice(c, order)
}

func sendInvoice(c *fiber.Ctx, order model.Order) error {
	pdf, err := helper.GenerateInvoicePDF(order)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate invoice", err)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice-%s.pdf"`, order.OrderNumber))
	return c.Send(pdf)
}

package handler

import (
	"essence_store/constants"
	"essence_store/database"
	"essence_store/model"
	"essence_store/utils"

	"github.com/gofiber/fiber/v2"
)

func GetContacts(c *fiber.Ctx) error {
	var contacts []model.Contact
	if err := database.DB.Order("created_at desc").Find(&contacts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, contacts)
}

// GetContactById also marks the message as read, viewing it is the read.
func GetContactById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var contact model.Contact
	if err := database.DB.First(&contact, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MESSAGE_NOT_FOUND, err)
	}

	if !contact.IsRead {
		contact.IsRead = true
		database.DB.Save(&contact)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, contact)
}

func CreateContact(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ContactInput)

	subject := input.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	contact := model.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: subject,
		Message: input.Message,
	}
	if err := database.DB.Create(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit message", err)
	}

	return utils.SuccessResponseWithMessage(c, fiber.StatusCreated, contact,
		"Thank you for your message! We will get back to you soon.")
}

func UpdateContact(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateContactInput)

	var contact model.Contact
	if err := database.DB.First(&contact, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MESSAGE_NOT_FOUND, err)
	}

	if input.IsRead != nil {
		contact.IsRead = *input.IsRead
	}
	if input.IsReplied != nil {
		contact.IsReplied = *input.IsReplied
	}
	if input.ReplyNote != nil {
		contact.ReplyNote = *input.ReplyNote
	}

	if err := database.DB.Save(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update message", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, contact)
}

func DeleteContact(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var contact model.Contact
	if err := database.DB.First(&contact, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MESSAGE_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&contact).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete message", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Message deleted successfully"})
}

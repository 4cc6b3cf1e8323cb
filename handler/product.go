package handler

import (
	"context"

	"essence_store/constants"
	"essence_store/database"
	"essence_store/helper"
	"essence_store/model"
	"essence_store/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// GetProducts is public; storefront consumers only see active products
// unless ?all=true (used by the back office behind auth on the admin route).
func GetProducts(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProductById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var product model.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ProductInput)

	var product model.Product
	copier.Copy(&product, &input)
	product.Features = model.StringList(input.Features)
	product.Slug = helper.GenerateUniqueProductSlug(database.DB, input.Name)
	if input.Category == "" {
		product.Category = constants.CategorySingle
	}
	if input.Image == "" {
		product.Image = "/assets/placeholder.png"
	}
	product.IsActive = input.IsActive == nil || *input.IsActive

	if err := database.DB.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func UpdateProduct(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.ProductInput)

	var product model.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true})
	if len(input.Features) > 0 {
		product.Features = model.StringList(input.Features)
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var product model.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Product deleted successfully"})
}

// UploadProductImage pushes a multipart image to cloudinary and stores the
// hosted URL on the product.
func UploadProductImage(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var product model.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot read image file", err)
	}
	defer f.Close()

	cld := helper.InitCloudinary()
	uploadResult, err := cld.Upload.Upload(context.Background(), f, uploader.UploadParams{
		Folder: "essence_store/products",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	product.Image = uploadResult.SecureURL
	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update product", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary list products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 403 {object} response.ErrorResponse "Invalid token"
// @Failure 500 {object} response.ErrorResponse "Error retrieving products"
// @Router /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		response.ErrorJSON(w, err, "Error retrieving products")
		return
	}
	response.SuccessJSON(w, dto.NewProductResponses(products))
}

// @Summary get product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse "invalid id"
// @Failure 404 {object} response.ErrorResponse "Product not found"
// @Failure 500 {object} response.ErrorResponse "Error retrieving product"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		response.ErrorJSON(w, err, "Error retrieving product")
		return
	}
	response.SuccessJSON(w, dto.NewProductResponse(product))
}

// @Summary create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body dto.CreateProductDTO true "product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse "validation failed"
// @Failure 500 {object} response.ErrorResponse "Error creating product"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateProductDTO
	if err := decodeAndValidate(r, &createDTO); err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), createDTO.ToModel())
	if err != nil {
		response.ErrorJSON(w, err, "Error creating product")
		return
	}
	response.CreatedJSON(w, dto.NewProductResponse(product))
}

// @Summary update product
// @Description fields present in the body are applied, including 0 and ""
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Param product body dto.UpdateProductDTO true "fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse "validation failed"
// @Failure 404 {object} response.ErrorResponse "Product not found"
// @Failure 500 {object} response.ErrorResponse "Error updating product"
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	var updateDTO dto.UpdateProductDTO
	if err := decodeAndValidate(r, &updateDTO); err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, updateDTO.ToModel())
	if err != nil {
		response.ErrorJSON(w, err, "Error updating product")
		return
	}
	response.SuccessJSON(w, dto.NewProductResponse(product))
}

// @Summary delete product
// @Tags products
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 204 "no content"
// @Failure 400 {object} response.ErrorResponse "invalid id"
// @Failure 404 {object} response.ErrorResponse "Product not found"
// @Failure 500 {object} response.ErrorResponse "Error deleting product"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.ErrorJSON(w, err, "")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		response.ErrorJSON(w, err, "Error deleting product")
		return
	}
	response.NoContent(w)
}

package transport

import "fmt"

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (r *RegisterRequest) Validate() error {
	var e ValidationError
	if !validEmail(r.Email) {
		e.add("email", "must be a well-formed email address")
	}
	if len(r.Password) < 8 {
		e.add("password", "must be at least 8 characters")
	}
	return e.orNil()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var e ValidationError
	if !validEmail(r.Email) {
		e.add("email", "must be a well-formed email address")
	}
	if r.Password == "" {
		e.add("password", "is required")
	}
	return e.orNil()
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	var e ValidationError
	if r.RefreshToken == "" {
		e.add("refresh_token", "is required")
	}
	return e.orNil()
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type CreateProductRequest struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	BrandID     *uint   `json:"brand_id"`
	CategoryID  *uint   `json:"category_id"`
}

func (r *CreateProductRequest) Validate() error {
	var e ValidationError
	if r.SKU == "" {
		e.add("sku", "is required")
	}
	if r.Name == "" {
		e.add("name", "is required")
	}
	if r.Price < 0 {
		e.add("price", "must be >= 0")
	}
	if r.Stock < 0 {
		e.add("stock", "must be >= 0")
	}
	return e.orNil()
}

// UpdateProductRequest accepts any subset of fields, including none.
type UpdateProductRequest struct {
	SKU         *string  `json:"sku"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	BrandID     *uint    `json:"brand_id"`
	CategoryID  *uint    `json:"category_id"`
}

func (r *UpdateProductRequest) Validate() error {
	var e ValidationError
	if r.SKU != nil && *r.SKU == "" {
		e.add("sku", "must not be empty")
	}
	if r.Name != nil && *r.Name == "" {
		e.add("name", "must not be empty")
	}
	if r.Price != nil && *r.Price < 0 {
		e.add("price", "must be >= 0")
	}
	if r.Stock != nil && *r.Stock < 0 {
		e.add("stock", "must be >= 0")
	}
	return e.orNil()
}

type CreateBrandRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r *CreateBrandRequest) Validate() error {
	var e ValidationError
	if r.Name == "" {
		e.add("name", "is required")
	}
	if !validSlug(r.Slug) {
		e.add("slug", "must match ^[a-z0-9-]+$")
	}
	return e.orNil()
}

type UpdateBrandRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

func (r *UpdateBrandRequest) Validate() error {
	var e ValidationError
	if r.Name != nil && *r.Name == "" {
		e.add("name", "must not be empty")
	}
	if r.Slug != nil && !validSlug(*r.Slug) {
		e.add("slug", "must match ^[a-z0-9-]+$")
	}
	return e.orNil()
}

type CreateCategoryRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *uint  `json:"parent_id"`
}

func (r *CreateCategoryRequest) Validate() error {
	var e ValidationError
	if r.Name == "" {
		e.add("name", "is required")
	}
	if !validSlug(r.Slug) {
		e.add("slug", "must match ^[a-z0-9-]+$")
	}
	return e.orNil()
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Slug     *string `json:"slug"`
	ParentID *uint   `json:"parent_id"`
}

func (r *UpdateCategoryRequest) Validate() error {
	var e ValidationError
	if r.Name != nil && *r.Name == "" {
		e.add("name", "must not be empty")
	}
	if r.Slug != nil && !validSlug(*r.Slug) {
		e.add("slug", "must match ^[a-z0-9-]+$")
	}
	return e.orNil()
}

type AddCartItemRequest struct {
	ProductID uint   `json:"product_id"`
	Variant   string `json:"variant"`
	Quantity  uint   `json:"quantity"`
}

func (r *AddCartItemRequest) Validate() error {
	var e ValidationError
	if r.ProductID == 0 {
		e.add("product_id", "is required")
	}
	if r.Quantity < 1 {
		e.add("quantity", "must be a positive integer")
	}
	return e.orNil()
}

// UpdateCartItemRequest allows quantity 0, which removes the row.
type UpdateCartItemRequest struct {
	Variant  string `json:"variant"`
	Quantity uint   `json:"quantity"`
}

func (r *UpdateCartItemRequest) Validate() error { return nil }

type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id"`
}

func (r *AddWishlistItemRequest) Validate() error {
	var e ValidationError
	if r.ProductID == 0 {
		e.add("product_id", "is required")
	}
	return e.orNil()
}

type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []OrderItemInput `json:"items"`
}

func (r *CreateOrderRequest) Validate() error {
	var e ValidationError
	for i, it := range r.Items {
		if it.ProductID == 0 {
			e.add(fmt.Sprintf("items[%d].product_id", i), "is required")
		}
		if it.Quantity < 1 {
			e.add(fmt.Sprintf("items[%d].quantity", i), "must be a positive integer")
		}
	}
	return e.orNil()
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

func (r *UpdateUserRoleRequest) Validate() error {
	var e ValidationError
	if r.Role != "authenticated" && r.Role != "admin" {
		e.add("role", "must be one of: authenticated, admin")
	}
	return e.orNil()
}

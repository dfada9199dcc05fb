package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/storeflow/storefront/internal/middleware/auth"
	"github.com/storeflow/storefront/internal/models"
)

type Deps struct {
	AccessSecret []byte

	Auth     *AuthHTTP
	Catalog  *CatalogHTTP
	Cart     *CartHTTP
	Wishlist *WishlistHTTP
	Orders   *OrderHTTP
	Users    *UserHTTP
	Search   *SearchHTTP
	Health   *HealthHTTP
}

func Register(e *echo.Echo, d *Deps) {
	requireLogin := auth.RequireLogin(d.AccessSecret)
	adminOnly := auth.RequireRoles(models.RoleAdmin)

	e.GET("/health", d.Health.Health)

	v1 := e.Group("/api/v1")

	authg := v1.Group("/auth")
	authg.POST("/register", d.Auth.Register)
	authg.POST("/login", d.Auth.Login)
	authg.POST("/refresh-token", d.Auth.Refresh)
	authg.POST("/logout", d.Auth.Logout)

	products := v1.Group("/products")
	products.GET("", d.Catalog.ListProducts)
	products.GET("/:id", d.Catalog.GetProduct)
	products.POST("", d.Catalog.CreateProduct, requireLogin, adminOnly)
	products.PATCH("/:id", d.Catalog.PatchProduct, requireLogin, adminOnly)
	products.DELETE("/:id", d.Catalog.DeleteProduct, requireLogin, adminOnly)

	brands := v1.Group("/brands")
	brands.GET("", d.Catalog.ListBrands)
	brands.GET("/:id", d.Catalog.GetBrand)
	brands.POST("", d.Catalog.CreateBrand, requireLogin, adminOnly)
	brands.PATCH("/:id", d.Catalog.PatchBrand, requireLogin, adminOnly)
	brands.DELETE("/:id", d.Catalog.DeleteBrand, requireLogin, adminOnly)

	categories := v1.Group("/categories")
	categories.GET("", d.Catalog.ListCategories)
	categories.GET("/:id", d.Catalog.GetCategory)
	categories.POST("", d.Catalog.CreateCategory, requireLogin, adminOnly)
	categories.PATCH("/:id", d.Catalog.PatchCategory, requireLogin, adminOnly)
	categories.DELETE("/:id", d.Catalog.DeleteCategory, requireLogin, adminOnly)

	cart := v1.Group("/cart", requireLogin)
	cart.GET("", d.Cart.GetCart)
	cart.DELETE("", d.Cart.Clear)
	cart.POST("/items", d.Cart.AddItem)
	cart.PATCH("/items/:productId", d.Cart.UpdateItem)
	cart.DELETE("/items/:productId", d.Cart.RemoveItem)

	wishlist := v1.Group("/wishlist", requireLogin)
	wishlist.GET("", d.Wishlist.GetWishlist)
	wishlist.DELETE("", d.Wishlist.Clear)
	wishlist.POST("/items", d.Wishlist.AddItem)
	wishlist.DELETE("/items/:productId", d.Wishlist.RemoveItem)

	orders := v1.Group("/orders", requireLogin)
	orders.GET("", d.Orders.ListOrders)
	orders.POST("", d.Orders.CreateOrder)

	users := v1.Group("/users", requireLogin)
	users.GET("/me", d.Users.Me)
	users.PATCH("/:id/role", d.Users.UpdateRole, adminOnly)

	if d.Search != nil {
		v1.GET("/search", d.Search.Search)
	}
}

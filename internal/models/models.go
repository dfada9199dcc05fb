package models

const (
	RoleAuthenticated = "authenticated"
	RoleAdmin         = "admin"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	DisplayName  string `gorm:"not null"                 json:"display_name"`
	Role         string `gorm:"not null"                 json:"role"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU         string  `gorm:"uniqueIndex;not null"     json:"sku"`
	Name        string  `gorm:"not null"                 json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Stock       int     `gorm:"not null;check:stock >= 0" json:"stock"`
	BrandID     *uint   `gorm:"index"                    json:"brand_id,omitempty"`
	CategoryID  *uint   `gorm:"index"                    json:"category_id,omitempty"`
}

type Brand struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null"                 json:"name"`
	Slug string `gorm:"uniqueIndex;not null"     json:"slug"`
}

type Category struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null"                 json:"name"`
	Slug     string `gorm:"uniqueIndex;not null"     json:"slug"`
	ParentID *uint  `gorm:"index"                    json:"parent_id,omitempty"`
}

type CartItem struct {
	ID        uint   `gorm:"primaryKey"                         json:"id"`
	UserID    uint   `gorm:"index;not null;uniqueIndex:idx_cart_row" json:"user_id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_row"  json:"product_id"`
	Variant   string `gorm:"uniqueIndex:idx_cart_row"           json:"variant,omitempty"`
	Quantity  uint   `gorm:"default:1;check:quantity > 0"       json:"quantity"`
}

type WishlistItem struct {
	ID        uint `gorm:"primaryKey"                              json:"id"`
	UserID    uint `gorm:"index;not null;uniqueIndex:idx_wish_row" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_wish_row"       json:"product_id"`
}

type Order struct {
	ID        uint        `gorm:"primaryKey"     json:"id"`
	Number    string      `gorm:"uniqueIndex"    json:"number"`
	UserID    uint        `gorm:"index;not null" json:"user_id"`
	Total     float64     `gorm:"not null"       json:"total"`
	Status    string      `gorm:"not null"       json:"status"`
	CreatedAt int64       `gorm:"not null"       json:"created_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"                   json:"id"`
	OrderID   uint    `gorm:"index;not null"               json:"order_id"`
	ProductID uint    `gorm:"not null"                     json:"product_id"`
	Quantity  uint    `gorm:"default:1;check:quantity > 0" json:"quantity"`
	UnitPrice float64 `gorm:"not null"                     json:"unit_price"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"uniqueIndex;not null" json:"token"`
	UserID    uint   `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}

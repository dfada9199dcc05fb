package db

import (
	"fmt"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/storeflow/storefront/internal/config"
	"github.com/storeflow/storefront/internal/models"
)

// Client holds the two long-lived connection handles: a service-role
// handle with full access and an anonymous handle for public reads.
// Per-user scoping is applied by the repositories as explicit user_id
// predicates, never here.
type Client struct {
	service *gorm.DB
	anon    *gorm.DB
}

func Open(cfg *config.Config) (*Client, error) {
	service, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open service connection: %w", err)
	}

	anon := service
	if cfg.DatabaseAnonURL != cfg.DatabaseURL {
		anon, err = gorm.Open(postgres.Open(cfg.DatabaseAnonURL), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open anon connection: %w", err)
		}
	}

	return &Client{service: service, anon: anon}, nil
}

// NewWithHandles wires pre-opened gorm handles, used by tests with the
// in-memory sqlite driver.
func NewWithHandles(service, anon *gorm.DB) *Client {
	if anon == nil {
		anon = service
	}
	return &Client{service: service, anon: anon}
}

func (c *Client) Service() *gorm.DB { return c.service }
func (c *Client) Anon() *gorm.DB    { return c.anon }

func (c *Client) Migrate() error {
	if err := c.service.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Brand{},
		&models.Category{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.RefreshToken{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (c *Client) Ping() error {
	sqlDB, err := c.service.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (c *Client) Close() error {
	sqlDB, err := c.service.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

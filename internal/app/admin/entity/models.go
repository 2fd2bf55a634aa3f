package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product представляет товар каталога мебели
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;uniqueIndex"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(19,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Dimension     *Dimension     `json:"dimensions,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images        []Image        `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Colors        []Color        `json:"colors,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Categories    []Category     `json:"categories,omitempty" gorm:"many2many:product_mtm_category;joinForeignKey:product_id;joinReferences:category_id"`
	Manufacturers []Manufacturer `json:"manufacturers,omitempty" gorm:"many2many:product_mtm_manufacturer;joinForeignKey:product_id;joinReferences:manufacturer_id"`
}

// Dimension - габариты товара, ровно одна запись на товар
type Dimension struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Length    float64   `json:"length" gorm:"not null;default:0"`
	Width     float64   `json:"width" gorm:"not null;default:0"`
	Height    float64   `json:"height" gorm:"not null;default:0"`
	Weight    float64   `json:"weight" gorm:"not null;default:0"`
	Depth     float64   `json:"depth" gorm:"not null;default:0"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Dimension) TableName() string { return "product_dimensions" }

// Image - картинка товара, url указывает на файл в каталоге загрузок
type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"size:500;not null"`
	Size      int64     `json:"size" gorm:"not null;default:0"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Image) TableName() string { return "product_images" }

// Color - цвет исполнения товара
type Color struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:50;not null"`
	Hex       string `json:"hex" gorm:"size:7"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
}

func (Color) TableName() string { return "product_colors" }

// Catalog - верхний уровень классификации (например "Спальня")
type Catalog struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	Name       string     `json:"name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt  time.Time  `json:"created_at"`
	Categories []Category `json:"categories,omitempty" gorm:"many2many:catalog_mtm_category;joinForeignKey:catalog_id;joinReferences:category_id"`
}

func (Catalog) TableName() string { return "product_catalogs" }

// Category - категория товаров, связана с каталогами и товарами
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	Catalogs  []Catalog `json:"catalogs,omitempty" gorm:"many2many:catalog_mtm_category;joinForeignKey:category_id;joinReferences:catalog_id"`
	Products  []Product `json:"products,omitempty" gorm:"many2many:product_mtm_category;joinForeignKey:category_id;joinReferences:product_id"`
}

func (Category) TableName() string { return "product_categories" }

// Manufacturer - производитель мебели
type Manufacturer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	Products  []Product `json:"products,omitempty" gorm:"many2many:product_mtm_manufacturer;joinForeignKey:manufacturer_id;joinReferences:product_id"`
}

func (Manufacturer) TableName() string { return "product_manufacturers" }

// Admin - администратор магазина
type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Surname      string    `json:"surname" gorm:"size:20;not null"`
	Name         string    `json:"name" gorm:"size:20;not null"`
	Login        string    `json:"login" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:hash_password;not null"` // не возвращаем в JSON
	CreatedAt    time.Time `json:"created_at"`
}

func (Admin) TableName() string { return "admins" }

// Store - единственная запись с данными магазина (id=1)
type Store struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text"`
	LogoURL     string    `json:"url_logo" gorm:"column:url_logo;size:500"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Store) TableName() string { return "stores" }

// StoreAddress - адрес магазина с часами работы
type StoreAddress struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Address   string    `json:"address" gorm:"size:250;not null"`
	Hours     string    `json:"hours" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoreAddress) TableName() string { return "store_addresses" }

// StorePhone - контактный телефон, isMain помечает публично показываемый
type StorePhone struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Phone     string    `json:"phone" gorm:"size:20;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:100"`
	IsMain    bool      `json:"isMain" gorm:"column:is_main;not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (StorePhone) TableName() string { return "store_phones" }

// StoreEmail - контактный email, isMain помечает публично показываемый
type StoreEmail struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"size:100"`
	IsMain    bool      `json:"isMain" gorm:"column:is_main;not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoreEmail) TableName() string { return "store_emails" }

// StoreImage - картинка магазина (галерея, баннеры)
type StoreImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	URL       string    `json:"url" gorm:"size:500;not null"`
	Size      int64     `json:"size" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoreImage) TableName() string { return "store_images" }

// TelegramGroup - чат, в который отправляются анонсы товаров
type TelegramGroup struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	ChatID int64  `json:"chat_id" gorm:"column:chat_id;not null"`
	Title  string `json:"title" gorm:"not null"`
}

func (TelegramGroup) TableName() string { return "telegram_groups" }

// ProductEvent представляет событие изменения товара для Kafka
type ProductEvent struct {
	EventType string          `json:"event_type"` // PRODUCT_CREATED, PRODUCT_UPDATED, PRODUCT_DELETED
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
}

// AuditRecord - запись журнала действий администратора в MongoDB
type AuditRecord struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AdminID   uint               `json:"admin_id" bson:"admin_id"`
	Method    string             `json:"method" bson:"method"`
	Path      string             `json:"path" bson:"path"`
	Status    int                `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

package models

import "time"

type City struct {
	ID           int32     `gorm:"primaryKey;column:id_ciudad"`
	Name         string    `gorm:"column:nombre_ciudad;size:255;uniqueIndex;not null"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime"`
}

func (City) TableName() string {
	return "ciudades"
}

type Product struct {
	ID           int32     `gorm:"primaryKey;column:id_producto"`
	Name         string    `gorm:"column:nombre_producto;size:255;uniqueIndex;not null"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime"`
}

func (Product) TableName() string {
	return "productos"
}

type Customer struct {
	ID           string    `gorm:"primaryKey;column:id_cliente;size:100"`
	RegisteredAt time.Time `gorm:"column:fecha_registro;autoCreateTime"`
}

func (Customer) TableName() string {
	return "clientes"
}

type Sale struct {
	ID           int64     `gorm:"primaryKey;column:id_venta"`
	CustomerID   string    `gorm:"column:id_cliente;size:100;not null"`
	CityID       int32     `gorm:"column:id_ciudad;not null"`
	ProductID    int32     `gorm:"column:id_producto;not null"`
	OrderDate    time.Time `gorm:"column:fecha;not null"`
	DeliveryDate time.Time `gorm:"column:fecha_entrega"`
	DeliveryDays int32     `gorm:"column:tiempo_entrega_dias"`
	Status       string    `gorm:"column:estado_entrega;size:32;not null"`
	Quantity     int32     `gorm:"column:cantidad;not null"`
	UnitPrice    string    `gorm:"column:precio_unitario;type:varchar(32);not null"`
	Subtotal     string    `gorm:"column:subtotal;type:varchar(32);not null"`
	StockInitial int32     `gorm:"column:stock_inicial"`
	StockFinal   int32     `gorm:"column:stock_final"`
	CreatedAt    time.Time `gorm:"column:fecha_creacion;autoCreateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	City     *City     `gorm:"foreignKey:CityID"`
	Product  *Product  `gorm:"foreignKey:ProductID"`
}

func (Sale) TableName() string {
	return "ventas"
}

type Inventory struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id_inventario"`
	ProductID    int32     `gorm:"column:id_producto;not null;uniqueIndex:idx_inventario_producto_ciudad"`
	CityID       int32     `gorm:"column:id_ciudad;not null;uniqueIndex:idx_inventario_producto_ciudad"`
	CurrentStock int32     `gorm:"column:stock_actual;not null"`
	UpdatedAt    time.Time `gorm:"column:ultima_actualizacion;autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
	City    *City    `gorm:"foreignKey:CityID"`
}

func (Inventory) TableName() string {
	return "inventario"
}

// Package orderrepo persists order aggregates in the orders table.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"size:6;uniqueIndex"`
	ClientID      uuid.UUID  `gorm:"type:uuid"`
	StoreID       uuid.UUID  `gorm:"type:uuid;index"`
	DelivererID   *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"size:16"`
	TotalAmount   float64    `gorm:"type:numeric(10,2)"`
	DeliveryFee   float64    `gorm:"type:numeric(10,2)"`
	PaymentMethod string     `gorm:"size:8"`
	PaymentStatus string     `gorm:"size:8"`
	Address       AddressDTO `gorm:"embedded"`
	Notes         string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address, flattened into the order row.
type AddressDTO struct {
	Street    string
	City      string
	State     string `gorm:"size:2"`
	ZipCode   string `gorm:"size:16"`
	Latitude  float64
	Longitude float64
}

func fromDomain(o *order.Order) OrderDTO {
	var delivererID *uuid.UUID
	if id := o.Deliverer(); id != nil {
		raw := id.Bytes()
		delivererID = &raw
	}

	addr := o.Address()
	return OrderDTO{
		ID:            o.ID().Bytes(),
		Number:        o.Number(),
		ClientID:      o.ClientID().Bytes(),
		StoreID:       o.StoreID().Bytes(),
		DelivererID:   delivererID,
		Status:        o.Status().String(),
		TotalAmount:   o.TotalAmount(),
		DeliveryFee:   o.DeliveryFee(),
		PaymentMethod: string(o.PaymentMethod()),
		PaymentStatus: string(o.PaymentStatus()),
		Address: AddressDTO{
			Street:    addr.Street(),
			City:      addr.City(),
			State:     addr.State(),
			ZipCode:   addr.ZipCode(),
			Latitude:  addr.Location().Latitude(),
			Longitude: addr.Location().Longitude(),
		},
		Notes:     o.Notes(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	var delivererID *kernel.UUID
	if dto.DelivererID != nil {
		dID, delivererErr := kernel.UUIDFromBytes((*dto.DelivererID)[:])
		if delivererErr != nil {
			return nil, delivererErr
		}
		delivererID = &dID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Address.Latitude, dto.Address.Longitude)
	if err != nil {
		return nil, err
	}
	addr, err := order.NewDeliveryAddress(dto.Address.Street, dto.Address.City, dto.Address.State,
		dto.Address.ZipCode, loc)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		Number:        dto.Number,
		ClientID:      clientID,
		StoreID:       storeID,
		DelivererID:   delivererID,
		Status:        status,
		TotalAmount:   dto.TotalAmount,
		DeliveryFee:   dto.DeliveryFee,
		PaymentMethod: kernel.PaymentMethod(dto.PaymentMethod),
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Address:       addr,
		Notes:         dto.Notes,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Package shipmentrepo provides data transfer objects and mapping functions
// for transport persistence: shipments with their lines, the carrier
// contracts, and the city-to-city distance table.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. CarrierID stays empty and EstimatedCost zero until planning;
// DeliveredAt stays NULL until delivery.
type ShipmentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Origin        AddressDTO      `gorm:"embedded;embeddedPrefix:origin_"`
	Destination   AddressDTO      `gorm:"embedded;embeddedPrefix:destination_"`
	CarrierID     string          `gorm:"type:varchar(64);index"`
	EstimatedCost decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status        int             `gorm:"type:smallint;not null;index"`
	DeliveredAt   *time.Time
	Lines         []LineDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents an embedded postal address.
type AddressDTO struct {
	Street string `gorm:"type:varchar(255)"`
	Number string `gorm:"type:varchar(32)"`
	City   string `gorm:"type:varchar(128)"`
	State  string `gorm:"type:varchar(64)"`
	Zip    string `gorm:"type:varchar(16)"`
}

// LineDTO represents one shipment line with the physical attributes captured
// at shipment creation.
type LineDTO struct {
	ShipmentID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU        string          `gorm:"type:varchar(64);primaryKey"`
	Qty        int             `gorm:"type:int;not null"`
	UnitWeight decimal.Decimal `gorm:"type:numeric(10,3);not null"`
	UnitVolume decimal.Decimal `gorm:"type:numeric(10,4);not null"`
}

// TableName specifies the database table name for shipment lines.
func (LineDTO) TableName() string {
	return "shipment_lines"
}

// CarrierDTO represents the database structure for persisting carrier
// contracts.
type CarrierDTO struct {
	ID          string          `gorm:"type:varchar(64);primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	RatePerKmKg decimal.Decimal `gorm:"type:numeric(10,4);not null"`
}

// TableName specifies the database table name for carrier contracts.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// DistanceDTO represents one directed city-to-city distance.
type DistanceDTO struct {
	OriginCity      string          `gorm:"type:varchar(128);primaryKey"`
	DestinationCity string          `gorm:"type:varchar(128);primaryKey"`
	Km              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for the distance table.
func (DistanceDTO) TableName() string {
	return "distances"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	shipmentID := s.ID().Bytes()

	lines := make([]LineDTO, 0, len(s.Lines()))
	for _, l := range s.Lines() {
		lines = append(lines, LineDTO{
			ShipmentID: shipmentID,
			SKU:        l.SKU(),
			Qty:        l.Qty(),
			UnitWeight: l.UnitWeight(),
			UnitVolume: l.UnitVolume(),
		})
	}

	return ShipmentDTO{
		ID:            shipmentID,
		Origin:        addressFromDomain(s.Origin()),
		Destination:   addressFromDomain(s.Destination()),
		CarrierID:     s.CarrierID(),
		EstimatedCost: s.EstimatedCost(),
		Status:        int(s.Status()),
		DeliveredAt:   s.DeliveredAt(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to a shipment aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	lines := make([]*shipment.Line, 0, len(dto.Lines))
	for _, lDto := range dto.Lines {
		l, lErr := shipment.NewLine(lDto.SKU, lDto.Qty, lDto.UnitWeight, lDto.UnitVolume)
		if lErr != nil {
			return nil, lErr
		}
		lines = append(lines, l)
	}

	return shipment.RestoreShipment(
		id,
		origin,
		destination,
		lines,
		shipment.Status(dto.Status),
		dto.CarrierID,
		dto.EstimatedCost,
		dto.DeliveredAt,
	)
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street: a.Street(),
		Number: a.Number(),
		City:   a.City(),
		State:  a.State(),
		Zip:    a.Zip(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.Number, dto.City, dto.State, dto.Zip)
}

// carrierFromDomain converts a carrier contract to its database representation.
func carrierFromDomain(c *shipment.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		RatePerKmKg: c.RatePerKmKg(),
	}
}

// carrierToDomain converts a database DTO to a carrier contract.
func carrierToDomain(dto CarrierDTO) (*shipment.Carrier, error) {
	return shipment.NewCarrier(dto.ID, dto.Name, dto.RatePerKmKg)
}

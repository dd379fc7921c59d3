// Package partnerrepo provides data transfer objects and mapping functions
// for business partner persistence, covering both customers (with credit
// terms) and suppliers (with lead times).
package partnerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/partner"

	"github.com/shopspring/decimal"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates. Customers and suppliers share one table discriminated by Kind;
// the credit columns are meaningful only for customers and the lead time only
// for suppliers.
type PartnerDTO struct {
	ID               string          `gorm:"type:varchar(64);primaryKey"`
	Kind             int             `gorm:"type:smallint;not null;index"`
	Name             string          `gorm:"type:varchar(255);not null"`
	TaxID            string          `gorm:"type:varchar(32);not null"`
	Address          AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	CreditLimit      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ReservedExposure decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	LeadTimeDays     int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// AddressDTO represents an embedded postal address.
type AddressDTO struct {
	Street string `gorm:"type:varchar(255)"`
	Number string `gorm:"type:varchar(32)"`
	City   string `gorm:"type:varchar(128)"`
	State  string `gorm:"type:varchar(64)"`
	Zip    string `gorm:"type:varchar(16)"`
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(p *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:    p.ID(),
		Kind:  int(p.Kind()),
		Name:  p.Name(),
		TaxID: p.TaxID(),
		Address: AddressDTO{
			Street: p.Address().Street(),
			Number: p.Address().Number(),
			City:   p.Address().City(),
			State:  p.Address().State(),
			Zip:    p.Address().Zip(),
		},
		CreditLimit:      p.CreditLimit(),
		ReservedExposure: p.ReservedExposure(),
		LeadTimeDays:     p.LeadTimeDays(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	address, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Zip,
	)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		dto.ID,
		partner.Kind(dto.Kind),
		dto.Name,
		dto.TaxID,
		address,
		dto.CreditLimit,
		dto.ReservedExposure,
		dto.LeadTimeDays,
	)
}

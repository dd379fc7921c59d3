package cmd

import (
	"fulfillment/internal/core/application/masterdata"

	"github.com/shopspring/decimal"
)

// DemoDataset is the master data the application seeds on first start: a
// two-product catalog, one customer and one supplier, the warehouse
// topology, and two competing carriers on the São Paulo - Rio de Janeiro
// lane.
func DemoDataset() masterdata.Dataset {
	return masterdata.Dataset{
		Products: []masterdata.ProductSpec{
			{
				SKU:         "SKU1001",
				Name:        "Fone de Ouvido Bluetooth",
				SalePrice:   decimal.NewFromInt(150),
				AverageCost: decimal.NewFromInt(50),
			},
			{
				SKU:         "SKU1002",
				Name:        "Teclado Mecânico",
				SalePrice:   decimal.NewFromInt(400),
				AverageCost: decimal.NewFromInt(120),
			},
		},
		Customers: []masterdata.CustomerSpec{
			{
				ID:    "CLI001",
				Name:  "Loja Carioca de Eletrônicos",
				TaxID: "12.345.678/0001-90",
				Address: masterdata.AddressSpec{
					Street: "Avenida Atlântica",
					Number: "1702",
					City:   "Rio de Janeiro",
					State:  "RJ",
					Zip:    "22021-001",
				},
				CreditLimit: decimal.NewFromInt(20000),
			},
		},
		Suppliers: []masterdata.SupplierSpec{
			{
				ID:    "FORN001",
				Name:  "Importadora Paulista de Eletrônicos",
				TaxID: "98.765.432/0001-10",
				Address: masterdata.AddressSpec{
					Street: "Rua dos Importadores",
					Number: "88",
					City:   "São Paulo",
					State:  "SP",
					Zip:    "03000-000",
				},
				LeadTimeDays: 5,
			},
		},
		Items: []masterdata.ItemSpec{
			{
				SKU:         "SKU1001",
				Name:        "Fone de Ouvido Bluetooth",
				Description: "Fone de ouvido sem fio com estojo de recarga",
				UnitWeight:  decimal.NewFromFloat(0.5),
				UnitVolume:  decimal.NewFromFloat(0.002),
			},
			{
				SKU:         "SKU1002",
				Name:        "Teclado Mecânico",
				Description: "Teclado mecânico ABNT2 com iluminação",
				UnitWeight:  decimal.NewFromFloat(3.0),
				UnitVolume:  decimal.NewFromFloat(0.008),
			},
		},
		Locations: []string{
			receivingLocationID,
			"AISLE-A-01",
			"AISLE-B-01",
			pickingLocationID,
			stagingLocationID,
		},
		Carriers: []masterdata.CarrierSpec{
			{
				ID:          "T001",
				Name:        "Transportadora Bandeirantes",
				RatePerKmKg: decimal.NewFromFloat(0.11),
			},
			{
				ID:          "T002",
				Name:        "Expresso Guanabara",
				RatePerKmKg: decimal.NewFromFloat(0.10),
			},
		},
		Distances: []masterdata.DistanceSpec{
			{
				OriginCity:      "São Paulo",
				DestinationCity: "Rio de Janeiro",
				Km:              decimal.NewFromInt(450),
			},
			{
				OriginCity:      "Rio de Janeiro",
				DestinationCity: "São Paulo",
				Km:              decimal.NewFromInt(450),
			},
		},
	}
}

package seeders

import "gear-tracker/internal/entities"

type seedEquipment struct {
	Name          string
	Type          string
	Category      string
	Brand         string
	Model         string
	SerialNumber  string
	Condition     string
	Location      string
	PurchasePrice float64
	CurrentValue  float64
}

var demoOrganization = "Demo Audio Productions"

var demoUsers = []entities.User{
	{Name: "Ava Mitchell", Email: "ava@demo-audio.example"},
	{Name: "Jonas Berg", Email: "jonas@demo-audio.example"},
}

var demoCategories = []string{
	"Microphones",
	"Mixers",
	"Speakers",
	"Cables",
}

var demoEquipment = []seedEquipment{
	{
		Name: "Shure SM58", Type: "Microphone", Category: "Microphones",
		Brand: "Shure", Model: "SM58", SerialNumber: "SM58-0419",
		Condition: "EXCELLENT", Location: "Warehouse A",
		PurchasePrice: 99, CurrentValue: 75,
	},
	{
		Name: "Sennheiser e935", Type: "Microphone", Category: "Microphones",
		Brand: "Sennheiser", Model: "e935", SerialNumber: "E935-1182",
		Condition: "GOOD", Location: "Warehouse A",
		PurchasePrice: 169, CurrentValue: 120,
	},
	{
		Name: "Behringer X32", Type: "Mixer", Category: "Mixers",
		Brand: "Behringer", Model: "X32", SerialNumber: "X32-7731",
		Condition: "GOOD", Location: "Studio 1",
		PurchasePrice: 2499, CurrentValue: 1700,
	},
	{
		Name: "QSC K12.2 Pair", Type: "Speaker", Category: "Speakers",
		Brand: "QSC", Model: "K12.2", SerialNumber: "K122-5503",
		Condition: "FAIR", Location: "Warehouse B",
		PurchasePrice: 1598, CurrentValue: 1000,
	},
	{
		Name: "XLR Cable Crate", Type: "Cable", Category: "Cables",
		Brand: "Mogami", Model: "Gold Studio", SerialNumber: "",
		Condition: "POOR", Location: "Warehouse B",
		PurchasePrice: 450, CurrentValue: 150,
	},
}

package dto

type ConditionCountDTO struct {
	Condition string `json:"condition"`
	Count     uint64 `json:"count"`
}

type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    uint64 `json:"count"`
}

type StatsDTO struct {
	TotalEquipment     uint64              `json:"totalEquipment"`
	TotalValue         float64             `json:"totalValue"`
	TotalPurchasePrice float64             `json:"totalPurchasePrice"`
	ByCondition        []ConditionCountDTO `json:"byCondition"`
	ByCategory         []CategoryCountDTO  `json:"byCategory"`
}

package dto

type QrReferenceDTO struct {
	EquipmentID string `json:"equipmentId"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	QrCode      string `json:"qrCode"`
}

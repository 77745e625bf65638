package entities

type User struct {
	ID             string
	OrganizationID string
	Name           string
	Email          string
}

package groupRepo

import "gatherly/models"

// GroupRepository defines persistence operations for groups.
type GroupRepository interface {
	Create(g *models.Group) error
	Update(g *models.Group) error
	Delete(id string) error
	GetByID(id string) (*models.Group, error)
	ListForUser(userID string) ([]models.Group, error)
	AddInvite(groupID, userID string) error
	RemoveInvite(groupID, userID string) error
	AddMember(groupID, userID string) error
	RemoveMember(groupID, userID string) error
	SetOuting(groupID string, fields map[string]any) error
}

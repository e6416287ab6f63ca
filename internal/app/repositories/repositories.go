package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	PropertyRepository     *PropertyRepository
	ClientRepository       *ClientRepository
	MessageRepository      *MessageRepository
	AppointmentRepository  *AppointmentRepository
	ActivityRepository     *ActivityRepository
	ThemeRepository        *ThemeRepository
	WebsiteThemeRepository *WebsiteThemeRepository
	ContentRepository      *ContentRepository
	CommunityRepository    *CommunityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		PropertyRepository:     NewPropertyRepository(db),
		ClientRepository:       NewClientRepository(db),
		MessageRepository:      NewMessageRepository(db),
		AppointmentRepository:  NewAppointmentRepository(db),
		ActivityRepository:     NewActivityRepository(db),
		ThemeRepository:        NewThemeRepository(db),
		WebsiteThemeRepository: NewWebsiteThemeRepository(db),
		ContentRepository:      NewContentRepository(db),
		CommunityRepository:    NewCommunityRepository(db),
	}
}

package services

import (
	"context"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

// In-memory fakes for the store interfaces. IDs are assigned
// sequentially per fake, mirroring BIGSERIAL columns.

type fakePropertyStore struct {
	properties map[int64]*models.Property
	nextID     int64
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: map[int64]*models.Property{}, nextID: 1}
}

func (f *fakePropertyStore) Create(_ context.Context, p *models.Property) (int64, error) {
	p.ID = f.nextID
	p.CreatedAt = time.Now()
	f.nextID++
	clone := *p
	f.properties[p.ID] = &clone
	return p.ID, nil
}

func (f *fakePropertyStore) GetByID(_ context.Context, id int64) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, apperrors.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakePropertyStore) ListByOwner(_ context.Context, ownerID int64, filter *dto.PropertyFilter) ([]*models.Property, error) {
	var out []*models.Property
	for id := int64(1); id < f.nextID; id++ {
		p, ok := f.properties[id]
		if !ok || p.ListedByID != ownerID {
			continue
		}
		if filter != nil {
			if filter.Status != "" && p.Status != filter.Status {
				continue
			}
			if filter.Type != "" && p.Type != filter.Type {
				continue
			}
			if filter.MinPrice > 0 && p.Price < filter.MinPrice {
				continue
			}
			if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
				continue
			}
			if filter.MinBedrooms > 0 && p.Bedrooms < filter.MinBedrooms {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakePropertyStore) Update(_ context.Context, p *models.Property) error {
	if _, ok := f.properties[p.ID]; !ok {
		return apperrors.ErrPropertyNotFound
	}
	clone := *p
	f.properties[p.ID] = &clone
	return nil
}

func (f *fakePropertyStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.properties[id]; !ok {
		return apperrors.ErrPropertyNotFound
	}
	delete(f.properties, id)
	return nil
}

type fakeClientStore struct {
	clients []*models.Client
	nextID  int64
}

func newFakeClientStore() *fakeClientStore {
	return &fakeClientStore{nextID: 1}
}

func (f *fakeClientStore) Create(_ context.Context, c *models.Client) (int64, error) {
	c.ID = f.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	f.nextID++
	clone := *c
	f.clients = append(f.clients, &clone)
	return c.ID, nil
}

func (f *fakeClientStore) ListByRealtor(_ context.Context, realtorID int64) ([]*models.Client, error) {
	var out []*models.Client
	for _, c := range f.clients {
		if c.RealtorID == realtorID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users map[int64]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[int64]*models.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeMessageStore struct {
	messages []*models.Message
	nextID   int64
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{nextID: 1}
}

func (f *fakeMessageStore) Create(_ context.Context, m *models.Message) (int64, error) {
	m.ID = f.nextID
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	f.nextID++
	clone := *m
	f.messages = append(f.messages, &clone)
	return m.ID, nil
}

func (f *fakeMessageStore) ListForUser(_ context.Context, userID int64) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range f.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) ListBetween(_ context.Context, a, b int64) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range f.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) MarkConversationRead(_ context.Context, userID, counterpartID int64) (int64, error) {
	var updated int64
	for _, m := range f.messages {
		if m.ReceiverID == userID && m.SenderID == counterpartID && !m.Read {
			m.Read = true
			updated++
		}
	}
	return updated, nil
}

type fakeAppointmentStore struct {
	appointments []*models.Appointment
	nextID       int64
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{nextID: 1}
}

func (f *fakeAppointmentStore) Create(_ context.Context, a *models.Appointment) (int64, error) {
	a.ID = f.nextID
	a.CreatedAt = time.Now()
	f.nextID++
	clone := *a
	f.appointments = append(f.appointments, &clone)
	return a.ID, nil
}

func (f *fakeAppointmentStore) ListByRealtor(_ context.Context, realtorID int64) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, a := range f.appointments {
		if a.RealtorID == realtorID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) ListForWindow(_ context.Context, realtorID int64, from, to time.Time) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, a := range f.appointments {
		if a.RealtorID != realtorID {
			continue
		}
		if a.Date.Before(from) || !a.Date.Before(to) {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

// fakeActivities records activities in memory and implements
// ActivityService directly so services under test can be observed.
type fakeActivities struct {
	recorded []*models.Activity
}

func (f *fakeActivities) Record(_ context.Context, activity *models.Activity) {
	f.recorded = append(f.recorded, activity)
}

func (f *fakeActivities) Recent(_ context.Context, userID int64, limit int) ([]*models.Activity, error) {
	var out []*models.Activity
	for i := len(f.recorded) - 1; i >= 0 && len(out) < limit; i-- {
		if f.recorded[i].UserID == userID {
			out = append(out, f.recorded[i])
		}
	}
	return out, nil
}

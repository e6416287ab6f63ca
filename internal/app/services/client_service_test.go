package services

import (
	"context"
	"testing"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientTrimsNameAndRecordsLead(t *testing.T) {
	store := newFakeClientStore()
	activities := &fakeActivities{}
	svc := NewClientService(store, activities)

	client, err := svc.CreateClient(context.Background(), 1, &dto.CreateClientRequest{
		Name:  "  Dana Buyer  ",
		Email: "dana@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Dana Buyer", client.Name)
	assert.Equal(t, int64(1), client.RealtorID)

	require.Len(t, activities.recorded, 1)
	assert.Equal(t, models.ActivityLead, activities.recorded[0].Type)
	assert.Equal(t, "Dana Buyer", activities.recorded[0].Description)
}

func TestCreateClientBlankName(t *testing.T) {
	svc := NewClientService(newFakeClientStore(), &fakeActivities{})

	_, err := svc.CreateClient(context.Background(), 1, &dto.CreateClientRequest{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestListClientsScopedToRealtor(t *testing.T) {
	store := newFakeClientStore()
	svc := NewClientService(store, &fakeActivities{})
	ctx := context.Background()

	_, err := store.Create(ctx, &models.Client{Name: "Mine", RealtorID: 1})
	require.NoError(t, err)
	_, err = store.Create(ctx, &models.Client{Name: "Theirs", RealtorID: 2})
	require.NoError(t, err)

	clients, err := svc.ListClients(ctx, 1)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Mine", clients[0].Name)
}

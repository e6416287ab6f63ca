package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/controllers"
	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPropertyService scripts service responses per method
type stubPropertyService struct {
	property *models.Property
	list     []*models.Property
	err      error
}

func (s *stubPropertyService) CreateProperty(context.Context, int64, *dto.CreatePropertyRequest) (*models.Property, error) {
	return s.property, s.err
}

func (s *stubPropertyService) GetPropertyByID(context.Context, int64) (*models.Property, error) {
	return s.property, s.err
}

func (s *stubPropertyService) ListProperties(context.Context, int64, *dto.PropertyFilter) ([]*models.Property, error) {
	return s.list, s.err
}

func (s *stubPropertyService) UpdateProperty(context.Context, int64, int64, *dto.UpdatePropertyRequest) (*models.Property, error) {
	return s.property, s.err
}

func (s *stubPropertyService) DeleteProperty(context.Context, int64, int64) error {
	return s.err
}

func propertyRouter(svc *stubPropertyService) *gin.Engine {
	router := newTestRouter()
	controller := controllers.NewPropertyController(svc)
	router.GET("/properties", controller.ListProperties)
	router.GET("/properties/:id", controller.GetPropertyByID)
	router.POST("/properties", controller.CreateProperty)
	router.PATCH("/properties/:id", controller.UpdateProperty)
	router.DELETE("/properties/:id", controller.DeleteProperty)
	return router
}

func TestGetPropertyByIDSuccess(t *testing.T) {
	svc := &stubPropertyService{property: &models.Property{ID: 7, Title: "Bungalow"}}
	router := propertyRouter(svc)

	w := performRequest(t, router, http.MethodGet, "/properties/7", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var got models.Property
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Bungalow", got.Title)
}

func TestGetPropertyByIDInvalidID(t *testing.T) {
	router := propertyRouter(&stubPropertyService{})

	w := performRequest(t, router, http.MethodGet, "/properties/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	router := propertyRouter(&stubPropertyService{err: apperrors.ErrPropertyNotFound})

	w := performRequest(t, router, http.MethodGet, "/properties/7", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestCreatePropertyRequiresBody(t *testing.T) {
	router := propertyRouter(&stubPropertyService{})

	w := performRequest(t, router, http.MethodPost, "/properties", map[string]interface{}{
		"title": "missing required fields",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePropertyCreated(t *testing.T) {
	svc := &stubPropertyService{property: &models.Property{ID: 1, Title: "Condo"}}
	router := propertyRouter(svc)

	w := performRequest(t, router, http.MethodPost, "/properties", dto.CreatePropertyRequest{
		Title:   "Condo",
		Address: "4 Shore Dr",
		City:    "Madison",
		State:   "WI",
		Price:   320000,
		Type:    models.PropertyTypeForSale,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdatePropertyForbidden(t *testing.T) {
	router := propertyRouter(&stubPropertyService{err: apperrors.NewForbiddenError("property belongs to another user")})

	w := performRequest(t, router, http.MethodPatch, "/properties/7", map[string]interface{}{
		"price": 1,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_005", env.Error.Code)
}

func TestDeletePropertySuccess(t *testing.T) {
	router := propertyRouter(&stubPropertyService{})

	w := performRequest(t, router, http.MethodDelete, "/properties/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

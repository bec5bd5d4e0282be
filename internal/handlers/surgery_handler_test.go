package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/repository"
)

func surgeryRouter(env *testEnv) *gin.Engine {
	r := gin.New()
	r.POST("/surgery", env.handler.CreateSurgery)
	r.GET("/surgery", env.handler.GetAllSurgeries)
	r.GET("/surgery/patient/:patientId", env.handler.GetSurgeriesByPatient)
	r.GET("/surgery/:id", env.handler.GetSurgery)
	r.PATCH("/surgery/:id", env.handler.UpdateSurgery)
	r.DELETE("/surgery/:id", env.handler.DeleteSurgery)
	return r
}

func TestCreateSurgerySpineRejectsName(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	w := perform(r, http.MethodPost, "/surgery",
		`{"type":"Spine Surgery","place":"Lumbar","painPlace":"Lower Back","name":"Discectomy","date":"2024-03-10","patient":"64a1f0c2e1b2c3d4e5f60718"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.surgeries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSurgeryAppliesDefaults(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	env.surgeries.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Surgery) bool {
		return s.GetBetter == "Maybe" && s.Surgeon == "Other" &&
			s.Country == "Egypt" && s.Status == "pending"
	})).Return(&models.Surgery{ID: primitive.NewObjectID(), Type: "Spine Surgery"}, nil)

	w := perform(r, http.MethodPost, "/surgery",
		`{"type":"Spine Surgery","place":"Lumbar","painPlace":"Lower Back","date":"2024-03-10","patient":"64a1f0c2e1b2c3d4e5f60718"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	env.surgeries.AssertExpectations(t)
}

func TestGetAllSurgeriesFilters(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	patientID := primitive.NewObjectID()
	env.surgeries.On("FindAll", mock.Anything, mock.MatchedBy(func(f repository.SurgeryFilter) bool {
		return f.Status == "pending" && f.Patient != nil && *f.Patient == patientID
	})).Return([]models.Surgery{{ID: primitive.NewObjectID()}}, nil)

	w := perform(r, http.MethodGet, "/surgery?status=pending&patient="+patientID.Hex(), "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	require.NotNil(t, body.Count)
	assert.Equal(t, 1, *body.Count)
}

func TestGetAllSurgeriesInvalidPatientFilter(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	w := perform(r, http.MethodGet, "/surgery?patient=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.surgeries.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestDeleteSurgeryReturnsMessage(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	id := primitive.NewObjectID()
	env.surgeries.On("DeleteByID", mock.Anything, id).Return(nil)

	w := perform(r, http.MethodDelete, "/surgery/"+id.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Surgery deleted successfully", body.Message)
}

func TestGetSurgeryNotFound(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	id := primitive.NewObjectID()
	env.surgeries.On("FindByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

	w := perform(r, http.MethodGet, "/surgery/"+id.Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeEnvelope(t, w)
	assert.Equal(t, "Surgery not found", body.Message)
}

func TestGetSurgeriesByPatientEmptyList(t *testing.T) {
	env := newTestEnv()
	r := surgeryRouter(env)

	patientID := primitive.NewObjectID()
	env.surgeries.On("FindByPatient", mock.Anything, patientID).
		Return([]models.Surgery{}, nil)

	w := perform(r, http.MethodGet, "/surgery/patient/"+patientID.Hex(), "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	require.NotNil(t, body.Count)
	assert.Equal(t, 0, *body.Count)
}

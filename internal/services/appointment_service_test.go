package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/validation"
)

func TestAppointmentServiceCreate(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	valid := func() *dto.AppointmentPayload {
		return &dto.AppointmentPayload{
			PatientID: uuidPtr(patientID),
			UserID:    uuidPtr(doctorID),
			DateTime:  &dto.Date{Time: time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC)},
			Reason:    strPtr("Annual checkup"),
		}
	}

	setup := func() (*MockAppointmentRepository, *MockPatientRepository, *MockUserRepository) {
		mAppointments := new(MockAppointmentRepository)
		mPatients := new(MockPatientRepository)
		mUsers := new(MockUserRepository)
		mPatients.On("Exists", mock.Anything, patientID).Return(true, nil)
		mUsers.On("Exists", mock.Anything, doctorID).Return(true, nil)
		return mAppointments, mPatients, mUsers
	}

	t.Run("status defaults to confirmed", func(t *testing.T) {
		mAppointments, mPatients, mUsers := setup()

		var created models.Appointment
		mAppointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Appointment)
		}).Return(nil)
		mAppointments.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&models.Appointment{Status: models.StatusConfirmed}, nil)

		service := NewAppointmentService(mAppointments, mPatients, mUsers)
		_, err := service.Create(context.Background(), valid())

		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, created.Status)
	})

	t.Run("empty string status also gets the confirmed default", func(t *testing.T) {
		mAppointments, mPatients, mUsers := setup()

		var created models.Appointment
		mAppointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Appointment)
		}).Return(nil)
		mAppointments.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&models.Appointment{Status: models.StatusConfirmed}, nil)

		req := valid()
		req.Status = strPtr("")

		service := NewAppointmentService(mAppointments, mPatients, mUsers)
		_, err := service.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, created.Status)
	})

	t.Run("explicit status is kept", func(t *testing.T) {
		mAppointments, mPatients, mUsers := setup()

		var created models.Appointment
		mAppointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Run(func(args mock.Arguments) {
			created = *args.Get(1).(*models.Appointment)
		}).Return(nil)
		mAppointments.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(&models.Appointment{Status: models.StatusPostponed}, nil)

		req := valid()
		req.Status = strPtr(models.StatusPostponed)

		service := NewAppointmentService(mAppointments, mPatients, mUsers)
		_, err := service.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, models.StatusPostponed, created.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		mAppointments, mPatients, mUsers := setup()

		req := valid()
		req.Status = strPtr("pending")

		service := NewAppointmentService(mAppointments, mPatients, mUsers)
		_, err := service.Create(context.Background(), req)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "status")
	})

	t.Run("empty payload reports required fields", func(t *testing.T) {
		service := NewAppointmentService(new(MockAppointmentRepository), new(MockPatientRepository), new(MockUserRepository))
		_, err := service.Create(context.Background(), &dto.AppointmentPayload{})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "patient_id")
		assert.Contains(t, verr.Fields, "user_id")
		assert.Contains(t, verr.Fields, "date_time")
		assert.Contains(t, verr.Fields, "reason")
	})
}

func TestAppointmentServiceUpdate(t *testing.T) {
	id := uuid.New()
	existing := &models.Appointment{ID: id, Reason: "Annual checkup", Status: models.StatusConfirmed}

	t.Run("status change alone is a valid partial update", func(t *testing.T) {
		mAppointments := new(MockAppointmentRepository)
		mAppointments.On("FindByID", mock.Anything, id).Return(existing, nil)
		mAppointments.On("Update", mock.Anything, id, map[string]interface{}{"status": models.StatusCanceled}).Return(int64(1), nil)

		service := NewAppointmentService(mAppointments, new(MockPatientRepository), new(MockUserRepository))
		_, err := service.Update(context.Background(), id, &dto.AppointmentPayload{Status: strPtr(models.StatusCanceled)})

		require.NoError(t, err)
		mAppointments.AssertExpectations(t)
	})

	t.Run("new patient reference is checked", func(t *testing.T) {
		other := uuid.New()
		mAppointments := new(MockAppointmentRepository)
		mPatients := new(MockPatientRepository)
		mAppointments.On("FindByID", mock.Anything, id).Return(existing, nil)
		mPatients.On("Exists", mock.Anything, other).Return(false, nil)

		service := NewAppointmentService(mAppointments, mPatients, new(MockUserRepository))
		_, err := service.Update(context.Background(), id, &dto.AppointmentPayload{PatientID: uuidPtr(other)})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "patient_id")
	})
}

func TestAppointmentServiceDelete(t *testing.T) {
	id := uuid.New()

	mAppointments := new(MockAppointmentRepository)
	mAppointments.On("Delete", mock.Anything, id).Return(int64(1), nil)

	service := NewAppointmentService(mAppointments, new(MockPatientRepository), new(MockUserRepository))
	assert.NoError(t, service.Delete(context.Background(), id))
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gatepass/internal/clock"
	apperrors "gatepass/internal/errors"
	"gatepass/internal/metrics"
	"gatepass/internal/model"
)

var gateNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newGateService(vehicles *MockVehicleRepository, passes *MockPassRepository) GateService {
	return NewGateService(vehicles, NewPassService(passes, nil), clock.Fake(gateNow), nil, nil)
}

func activePass(id, creator uint, plateNumber string, from, till time.Time) model.TemporaryPass {
	return model.TemporaryPass{
		ID: id, UserID: creator, VisitorName: "Visitor", PlateNumber: plateNumber,
		ValidFrom: from, ValidTill: till, Status: model.PassStatusActive,
	}
}

func TestGateService_Verify(t *testing.T) {
	tests := []struct {
		name      string
		plate     string
		setupMock func(*MockVehicleRepository, *MockPassRepository)
		expected  Decision
	}{
		{
			name:  "approved vehicle with messy input",
			plate: "mp09 ab1234",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "MP09AB1234").Return([]model.Vehicle{
					{ID: 1, UserID: 1, PlateNumber: "MP09AB1234", Status: model.VehicleStatusApproved},
				}, nil)
			},
			expected: Decision{Allowed: true, Reason: ReasonApprovedVehicle, UserID: uintPtr(1)},
		},
		{
			name:  "blocked vehicle beats active pass",
			plate: "DL01CZ5555",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "DL01CZ5555").Return([]model.Vehicle{
					{ID: 3, UserID: 2, PlateNumber: "DL01CZ5555", Status: model.VehicleStatusBlocked},
				}, nil)
				p.On("ListByPlateAndStatus", mock.Anything, "DL01CZ5555", model.PassStatusActive).Return([]model.TemporaryPass{
					activePass(1, 4, "DL01CZ5555", gateNow.Add(-time.Hour), gateNow.Add(time.Hour)),
				}, nil).Maybe()
			},
			expected: Decision{Allowed: false, Reason: ReasonBlocked, UserID: uintPtr(2)},
		},
		{
			name:  "blocked registration vetoes another owner's approval",
			plate: "MP09AB1234",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "MP09AB1234").Return([]model.Vehicle{
					{ID: 1, UserID: 1, PlateNumber: "MP09AB1234", Status: model.VehicleStatusApproved},
					{ID: 9, UserID: 7, PlateNumber: "MP09AB1234", Status: model.VehicleStatusBlocked},
				}, nil)
			},
			expected: Decision{Allowed: false, Reason: ReasonBlocked, UserID: uintPtr(7)},
		},
		{
			name:  "temporary pass for unregistered plate",
			plate: "MP09ZZ1111",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "MP09ZZ1111").Return([]model.Vehicle{}, nil)
				p.On("ListByPlateAndStatus", mock.Anything, "MP09ZZ1111", model.PassStatusActive).Return([]model.TemporaryPass{
					activePass(1, 1, "MP09ZZ1111", gateNow.Add(-time.Hour), gateNow.Add(23*time.Hour)),
				}, nil)
			},
			expected: Decision{Allowed: true, Reason: ReasonTempPass, UserID: uintPtr(1)},
		},
		{
			name:  "pending vehicle falls through to pass",
			plate: "MP09XY9876",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "MP09XY9876").Return([]model.Vehicle{
					{ID: 2, UserID: 1, PlateNumber: "MP09XY9876", Status: model.VehicleStatusPending},
				}, nil)
				p.On("ListByPlateAndStatus", mock.Anything, "MP09XY9876", model.PassStatusActive).Return([]model.TemporaryPass{
					activePass(2, 6, "MP09XY9876", gateNow, gateNow.Add(time.Hour)),
				}, nil)
			},
			expected: Decision{Allowed: true, Reason: ReasonTempPass, UserID: uintPtr(6)},
		},
		{
			name:  "rejected vehicle without pass",
			plate: "MP09XY9876",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "MP09XY9876").Return([]model.Vehicle{
					{ID: 2, UserID: 1, PlateNumber: "MP09XY9876", Status: model.VehicleStatusRejected},
				}, nil)
				p.On("ListByPlateAndStatus", mock.Anything, "MP09XY9876", model.PassStatusActive).Return([]model.TemporaryPass{}, nil)
			},
			expected: Decision{Allowed: false, Reason: ReasonNotFound},
		},
		{
			name:  "expired pass does not admit",
			plate: "MP09ZZ1111",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "MP09ZZ1111").Return([]model.Vehicle{}, nil)
				p.On("ListByPlateAndStatus", mock.Anything, "MP09ZZ1111", model.PassStatusActive).Return([]model.TemporaryPass{
					activePass(1, 1, "MP09ZZ1111", gateNow.Add(-48*time.Hour), gateNow.Add(-time.Nanosecond)),
				}, nil)
			},
			expected: Decision{Allowed: false, Reason: ReasonNotFound},
		},
		{
			name:  "unknown plate",
			plate: "XX00ZZ0000",
			setupMock: func(v *MockVehicleRepository, p *MockPassRepository) {
				v.On("FindByPlate", mock.Anything, "XX00ZZ0000").Return([]model.Vehicle{}, nil)
				p.On("ListByPlateAndStatus", mock.Anything, "XX00ZZ0000", model.PassStatusActive).Return([]model.TemporaryPass{}, nil)
			},
			expected: Decision{Allowed: false, Reason: ReasonNotFound},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicles := new(MockVehicleRepository)
			passes := new(MockPassRepository)
			tt.setupMock(vehicles, passes)

			decision, err := newGateService(vehicles, passes).Verify(context.Background(), tt.plate)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *decision)

			vehicles.AssertExpectations(t)
			passes.AssertExpectations(t)
		})
	}
}

func TestGateService_Verify_EmptyPlate(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	passes := new(MockPassRepository)

	_, err := newGateService(vehicles, passes).Verify(context.Background(), " \t ")

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	vehicles.AssertNotCalled(t, "FindByPlate", mock.Anything, mock.Anything)
}

func TestGateService_Verify_StorageFailure(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("FindByPlate", mock.Anything, "MP09AB1234").Return(nil, errors.New("connection refused"))

	_, err := newGateService(vehicles, new(MockPassRepository)).Verify(context.Background(), "MP09AB1234")

	var se *apperrors.StorageError
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, 500, apperrors.MapErrorToHTTP(err).StatusCode)
}

func TestGateService_Verify_IsPure(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	vehicles.On("FindByPlate", mock.Anything, "MP09AB1234").Return([]model.Vehicle{
		{ID: 1, UserID: 1, PlateNumber: "MP09AB1234", Status: model.VehicleStatusApproved},
	}, nil)

	svc := newGateService(vehicles, new(MockPassRepository))
	first, err := svc.Verify(context.Background(), "MP09AB1234")
	require.NoError(t, err)
	second, err := svc.Verify(context.Background(), "mp09ab1234")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	vehicles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGateService_Verify_CountsDecisions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	vehicles := new(MockVehicleRepository)
	vehicles.On("FindByPlate", mock.Anything, "XX00ZZ0000").Return([]model.Vehicle{}, nil)
	passes := new(MockPassRepository)
	passes.On("ListByPlateAndStatus", mock.Anything, "XX00ZZ0000", model.PassStatusActive).Return([]model.TemporaryPass{}, nil)

	svc := NewGateService(vehicles, NewPassService(passes, nil), clock.Fake(gateNow), m, nil)
	_, err := svc.Verify(context.Background(), "XX00ZZ0000")
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "gate_verifications_total"))
}

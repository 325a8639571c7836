package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stpnv0/EventRegistration/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const otherEventID = "0b7e4f52-9d3a-4f1b-a6c2-5e8d7f9a0b1c"

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockRegistrationRepo) {
	t.Helper()
	repo := mocks.NewMockRegistrationRepo(t)
	svc := NewRegistrationService(repo, RegistrationOptions{
		EmailDomain: "@schools.nyc.gov",
		Limits:      domain.DefaultQuotaLimits,
	}, newTestLogger(t))
	return svc, repo
}

func testRegistrant() domain.Registrant {
	return domain.Registrant{
		FirstName: "Ana",
		LastName:  "Lopez",
		Email:     " Ana.Lopez@Schools.NYC.gov ",
		School:    "PS 123",
		Position:  "Teacher",
	}
}

// reserved echoes the request back as a created reservation.
func reserved(title string) func(context.Context, domain.ReserveRequest) (*domain.Reservation, error) {
	return func(_ context.Context, req domain.ReserveRequest) (*domain.Reservation, error) {
		return &domain.Reservation{
			Registration: req.Registration,
			EventTitle:   title,
			Action:       domain.ActionCreated,
		}, nil
	}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, repo := newRegistrationService(t)

	repo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(req domain.ReserveRequest) bool {
		return req.Policy == domain.DuplicateReject &&
			req.Requested == 2 &&
			req.Registration.Email == "ana.lopez@schools.nyc.gov" &&
			req.Registration.EventID == testEventID &&
			req.Limits == domain.DefaultQuotaLimits
	})).RunAndReturn(reserved("STEM Night"))

	reg, err := svc.Register(context.Background(), domain.RegisterInput{
		Registrant:     testRegistrant(),
		EventID:        testEventID,
		TicketQuantity: 2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, 2, reg.TicketQuantity)
	assert.Equal(t, "ana.lopez@schools.nyc.gov", reg.Email)
}

func TestRegistrationService_Register_ForwardsCanonicalEventID(t *testing.T) {
	for _, id := range []string{
		"urn:uuid:" + testEventID,
		strings.ToUpper(testEventID),
		"{" + testEventID + "}",
	} {
		t.Run(id, func(t *testing.T) {
			svc, repo := newRegistrationService(t)
			repo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(req domain.ReserveRequest) bool {
				return req.Registration.EventID == testEventID
			})).RunAndReturn(reserved("STEM Night"))

			reg, err := svc.Register(context.Background(), domain.RegisterInput{
				Registrant:     testRegistrant(),
				EventID:        id,
				TicketQuantity: 1,
			})

			require.NoError(t, err)
			assert.Equal(t, testEventID, reg.EventID)
		})
	}
}

func TestRegistrationService_RegisterBulk_ForwardsCanonicalEventID(t *testing.T) {
	svc, repo := newRegistrationService(t)
	repo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(req domain.ReserveRequest) bool {
		return req.Registration.EventID == testEventID && req.Policy == domain.DuplicateTopUp
	})).RunAndReturn(reserved("STEM Night"))

	res, err := svc.RegisterBulk(context.Background(), domain.BulkRegisterInput{
		Registrant: testRegistrant(),
		Items:      []domain.BulkItem{{EventID: "urn:uuid:" + testEventID, TicketQuantity: 2}},
	})

	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Empty(t, res.Errors)
	assert.Equal(t, testEventID, res.Results[0].EventID)
}

func TestRegistrationService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *domain.RegisterInput)
		wantErr error
	}{
		{"missing first name", func(in *domain.RegisterInput) { in.Registrant.FirstName = " " }, domain.ErrValidation},
		{"missing school", func(in *domain.RegisterInput) { in.Registrant.School = "" }, domain.ErrValidation},
		{"foreign domain", func(in *domain.RegisterInput) { in.Registrant.Email = "ana@gmail.com" }, domain.ErrInvalidEmailDomain},
		{"bad event id", func(in *domain.RegisterInput) { in.EventID = "42" }, domain.ErrValidation},
		{"zero tickets", func(in *domain.RegisterInput) { in.TicketQuantity = 0 }, domain.ErrInvalidTicketQuantity},
		{"over request ceiling", func(in *domain.RegisterInput) { in.TicketQuantity = 11 }, domain.ErrQuotaExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newRegistrationService(t)
			in := domain.RegisterInput{Registrant: testRegistrant(), EventID: testEventID, TicketQuantity: 1}
			tt.mutate(&in)

			_, err := svc.Register(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationService_Register_RequestCeilingMessage(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Registrant:     testRegistrant(),
		EventID:        testEventID,
		TicketQuantity: 11,
	})

	var quotaErr *domain.QuotaError
	require.ErrorAs(t, err, &quotaErr)
	assert.Equal(t, "You can request a maximum of 10 tickets per registration", quotaErr.Message)
}

func TestRegistrationService_Register_Rejected(t *testing.T) {
	svc, repo := newRegistrationService(t)

	rejection := &domain.ReserveRejection{EventTitle: "STEM Night", Err: domain.ErrAlreadyRegistered}
	repo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, rejection)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Registrant:     testRegistrant(),
		EventID:        testEventID,
		TicketQuantity: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_RegisterBulk_Mixed(t *testing.T) {
	svc, repo := newRegistrationService(t)

	repo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(req domain.ReserveRequest) bool {
		return req.Registration.EventID == testEventID
	})).RunAndReturn(func(_ context.Context, req domain.ReserveRequest) (*domain.Reservation, error) {
		assert.Equal(t, domain.DuplicateTopUp, req.Policy)
		r := req.Registration
		r.TicketQuantity = 5
		return &domain.Reservation{Registration: r, EventTitle: "STEM Night", Action: domain.ActionUpdated}, nil
	})
	repo.EXPECT().Reserve(mock.Anything, mock.MatchedBy(func(req domain.ReserveRequest) bool {
		return req.Registration.EventID == otherEventID
	})).Return(nil, &domain.ReserveRejection{
		EventTitle: "Book Fair",
		Err:        &domain.QuotaError{Quota: domain.QuotaCapacity, Message: "Only 0 tickets available for this event"},
	})

	result, err := svc.RegisterBulk(context.Background(), domain.BulkRegisterInput{
		Registrant: testRegistrant(),
		Items: []domain.BulkItem{
			{EventID: testEventID, TicketQuantity: 3},
			{EventID: otherEventID, TicketQuantity: 1},
			{EventID: "bogus", TicketQuantity: 1},
			{EventID: testEventID, TicketQuantity: 0},
		},
	})

	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, domain.ActionUpdated, result.Results[0].Action)
	assert.Equal(t, 5, result.Results[0].TicketQuantity)
	assert.Equal(t, "STEM Night", result.Results[0].EventTitle)
	assert.True(t, result.Succeeded())
	assert.Equal(t, []string{
		"Book Fair: Only 0 tickets available for this event",
		"Invalid event ID: bogus",
		"Invalid ticket quantity for event " + testEventID,
	}, result.Errors)
}

func TestRegistrationService_RegisterBulk_ItemErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    string
	}{
		{"event gone", domain.ErrEventNotFound, "Event not found: " + testEventID},
		{"infrastructure", errors.New("connection reset"), "Error registering for event " + testEventID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newRegistrationService(t)
			repo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil, tt.repoErr)

			result, err := svc.RegisterBulk(context.Background(), domain.BulkRegisterInput{
				Registrant: testRegistrant(),
				Items:      []domain.BulkItem{{EventID: testEventID, TicketQuantity: 1}},
			})

			require.NoError(t, err)
			assert.False(t, result.Succeeded())
			assert.Equal(t, []string{tt.want}, result.Errors)
		})
	}
}

func TestRegistrationService_RegisterBulk_RequestCeilingPerItem(t *testing.T) {
	svc, _ := newRegistrationService(t)

	result, err := svc.RegisterBulk(context.Background(), domain.BulkRegisterInput{
		Registrant: testRegistrant(),
		Items:      []domain.BulkItem{{EventID: testEventID, TicketQuantity: 12}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Event " + testEventID + ": You can request a maximum of 10 tickets per registration",
	}, result.Errors)
}

func TestRegistrationService_RegisterBulk_NoItems(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.RegisterBulk(context.Background(), domain.BulkRegisterInput{Registrant: testRegistrant()})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_GetDetails(t *testing.T) {
	svc, repo := newRegistrationService(t)

	details := &domain.RegistrationDetails{
		Registration: domain.Registration{ID: testEventID, TicketQuantity: 2},
		Event:        domain.Event{Title: "STEM Night"},
	}
	repo.EXPECT().GetDetails(mock.Anything, testEventID).Return(details, nil)

	got, err := svc.GetDetails(context.Background(), testEventID)

	require.NoError(t, err)
	assert.Equal(t, "STEM Night", got.Event.Title)
}

func TestRegistrationService_GetDetails_CanonicalID(t *testing.T) {
	svc, repo := newRegistrationService(t)
	repo.EXPECT().GetDetails(mock.Anything, testEventID).Return(&domain.RegistrationDetails{}, nil)
	repo.EXPECT().Delete(mock.Anything, testEventID).Return(nil)

	_, err := svc.GetDetails(context.Background(), "urn:uuid:"+testEventID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), testSession, strings.ToUpper(testEventID)))
}

func TestRegistrationService_GetDetails_MalformedID(t *testing.T) {
	svc, _ := newRegistrationService(t)

	_, err := svc.GetDetails(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_Delete(t *testing.T) {
	svc, repo := newRegistrationService(t)

	repo.EXPECT().Delete(mock.Anything, testEventID).Return(domain.ErrRegistrationNotFound)

	err := svc.Delete(context.Background(), testSession, testEventID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/EventRegistration/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

const (
	testEventID = "6f1c2a7e-3b4d-4c5e-8f90-1a2b3c4d5e6f"
	testRegID   = "0b7e4f52-9d3a-4f1b-a6c2-5e8d7f9a0b1c"
	existingID  = "5d2c9a3e-1f4b-4e6a-8c7d-9b0a1e2f3c4d"
	testEmail   = "ana@schools.nyc.gov"
	testSchool  = "PS 123"

	lockEventSQL   = `SELECT title, max_seats FROM events WHERE id = \$1 FOR UPDATE`
	countersSQL    = `SUM\(ticket_quantity\) FILTER \(WHERE email = \$2\).*SUM\(ticket_quantity\) FILTER \(WHERE school = \$3\).*FROM registrations WHERE event_id = \$1`
	existingSQL    = `FROM registrations WHERE event_id = \$1 AND email = \$2`
	insertSQL      = `INSERT INTO registrations`
	updateSQL      = `UPDATE registrations SET ticket_quantity = \$2`
	writeStatement = `(INSERT|UPDATE) `
)

var regColumns = []string{
	"id", "first_name", "last_name", "email", "school", "position",
	"event_id", "ticket_quantity", "created_at", "updated_at",
}

func newRegistrationRepo(t *testing.T) (*RegistrationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRegistrationRepo(&dbpg.DB{Master: db}), mock
}

func reserveRequest(requested int, policy domain.DuplicatePolicy) domain.ReserveRequest {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	return domain.ReserveRequest{
		Registration: domain.Registration{
			ID:             testRegID,
			FirstName:      "Ana",
			LastName:       "Lopez",
			Email:          testEmail,
			School:         testSchool,
			Position:       "Teacher",
			EventID:        testEventID,
			TicketQuantity: requested,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		Requested: requested,
		Policy:    policy,
		Limits:    domain.DefaultQuotaLimits,
	}
}

func regRow(id string, quantity int) *sqlmock.Rows {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(regColumns).AddRow(
		id, "Ana", "Lopez", testEmail, testSchool, "Teacher",
		testEventID, quantity, now, now,
	)
}

// expectSnapshot queues the three reads Reserve performs before deciding.
func expectSnapshot(mock sqlmock.Sqlmock, maxSeats, taken, user, school int, existing *sqlmock.Rows) {
	mock.ExpectBegin()
	mock.ExpectQuery(lockEventSQL).
		WithArgs(testEventID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "max_seats"}).AddRow("STEM Night", maxSeats))
	mock.ExpectQuery(countersSQL).
		WithArgs(testEventID, testEmail, testSchool).
		WillReturnRows(sqlmock.NewRows([]string{"taken", "user", "school"}).AddRow(taken, user, school))
	if existing == nil {
		existing = sqlmock.NewRows(regColumns)
	}
	mock.ExpectQuery(existingSQL).
		WithArgs(testEventID, testEmail).
		WillReturnRows(existing)
}

func TestRegistrationRepository_Reserve_CreatesRow(t *testing.T) {
	repo, mock := newRegistrationRepo(t)

	expectSnapshot(mock, 20, 5, 0, 3, nil)
	mock.ExpectQuery(insertSQL).
		WithArgs(testRegID, "Ana", "Lopez", testEmail, testSchool, "Teacher", testEventID, 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(regRow(testRegID, 2))
	mock.ExpectCommit()

	res, err := repo.Reserve(context.Background(), reserveRequest(2, domain.DuplicateReject))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionCreated, res.Action)
	assert.Equal(t, "STEM Night", res.EventTitle)
	assert.Equal(t, testRegID, res.Registration.ID)
	assert.Equal(t, 2, res.Registration.TicketQuantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_Reserve_TopsUpExistingRow(t *testing.T) {
	repo, mock := newRegistrationRepo(t)

	expectSnapshot(mock, 20, 10, 4, 6, regRow(existingID, 4))
	mock.ExpectQuery(updateSQL).
		WithArgs(existingID, 7, sqlmock.AnyArg()).
		WillReturnRows(regRow(existingID, 7))
	mock.ExpectCommit()

	res, err := repo.Reserve(context.Background(), reserveRequest(3, domain.DuplicateTopUp))

	require.NoError(t, err)
	assert.Equal(t, domain.ActionUpdated, res.Action)
	assert.Equal(t, existingID, res.Registration.ID)
	assert.Equal(t, 7, res.Registration.TicketQuantity)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_Reserve_RejectsWithoutWriting(t *testing.T) {
	tests := []struct {
		name      string
		maxSeats  int
		taken     int
		user      int
		school    int
		existing  func() *sqlmock.Rows
		requested int
		policy    domain.DuplicatePolicy
		wantQuota domain.Quota
		wantErr   error
		message   string
	}{
		{
			name:     "capacity",
			maxSeats: 5, taken: 3, school: 3,
			requested: 3,
			wantQuota: domain.QuotaCapacity,
			message:   "Only 2 tickets available for this event",
		},
		{
			name:     "per user counter",
			maxSeats: 50, taken: 8, user: 8, school: 8,
			existing:  func() *sqlmock.Rows { return regRow(existingID, 8) },
			requested: 3,
			policy:    domain.DuplicateTopUp,
			wantQuota: domain.QuotaPerUser,
			message:   "Maximum 10 tickets total per event. You already have 8 tickets.",
		},
		{
			name:     "per school counter",
			maxSeats: 50, taken: 9, school: 9,
			requested: 2,
			wantQuota: domain.QuotaPerSchool,
			message:   "Your school has already registered for 9 tickets for this event. Maximum 10 tickets per school per event.",
		},
		{
			name:     "duplicate on single path",
			maxSeats: 50, taken: 2, user: 2, school: 2,
			existing:  func() *sqlmock.Rows { return regRow(existingID, 2) },
			requested: 1,
			policy:    domain.DuplicateReject,
			wantErr:   domain.ErrAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRegistrationRepo(t)

			var existing *sqlmock.Rows
			if tt.existing != nil {
				existing = tt.existing()
			}
			expectSnapshot(mock, tt.maxSeats, tt.taken, tt.user, tt.school, existing)
			mock.ExpectRollback()

			_, err := repo.Reserve(context.Background(), reserveRequest(tt.requested, tt.policy))

			var rejection *domain.ReserveRejection
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, "STEM Night", rejection.EventTitle)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var quotaErr *domain.QuotaError
				require.ErrorAs(t, err, &quotaErr)
				assert.Equal(t, tt.wantQuota, quotaErr.Quota)
				assert.Equal(t, tt.message, quotaErr.Message)
			}

			// Only the queued reads ran: any INSERT or UPDATE would have
			// failed as unexpected and left the rollback unmet.
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_Reserve_EventNotFound(t *testing.T) {
	repo, mock := newRegistrationRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(lockEventSQL).
		WithArgs(testEventID).
		WillReturnRows(sqlmock.NewRows([]string{"title", "max_seats"}))
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), reserveRequest(1, domain.DuplicateReject))

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_Reserve_UniqueViolationIsAlreadyRegistered(t *testing.T) {
	repo, mock := newRegistrationRepo(t)

	expectSnapshot(mock, 20, 0, 0, 0, nil)
	mock.ExpectQuery(insertSQL).WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), reserveRequest(1, domain.DuplicateReject))

	var rejection *domain.ReserveRejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "STEM Night", rejection.EventTitle)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_Reserve_WriteFailureRollsBack(t *testing.T) {
	repo, mock := newRegistrationRepo(t)

	expectSnapshot(mock, 20, 0, 0, 0, nil)
	mock.ExpectQuery(writeStatement).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := repo.Reserve(context.Background(), reserveRequest(1, domain.DuplicateReject))

	require.Error(t, err)
	var rejection *domain.ReserveRejection
	assert.False(t, errors.As(err, &rejection))
	require.NoError(t, mock.ExpectationsWereMet())
}

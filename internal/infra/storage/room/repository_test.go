package room

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOccupancy/internal/domain"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var createdAt = time.Date(2023, 4, 1, 9, 0, 0, 0, time.UTC)

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO rooms \(name,rate,discount\) VALUES \(\$1,\$2,\$3\) RETURNING id, created_at, updated_at`).
		WithArgs("Room 101", 100.0, 10.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), createdAt, createdAt))

	room, err := repo.Create(context.Background(), domain.NewRoom("Room 101", nil, 100, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), room.ID)
	assert.Equal(t, createdAt, room.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateName(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`INSERT INTO rooms`).WillReturnError(&pq.Error{Code: pgUniqueViolation})

	_, err := repo.Create(context.Background(), domain.NewRoom("Room 101", nil, 100, 10))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT id, name, rate, discount, created_at, updated_at FROM rooms WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(int64(3), "Suite", 250.0, 5.0, createdAt, createdAt))

	room, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Suite", room.Name)
	assert.Equal(t, 250.0, room.Rate)
	assert.Equal(t, 5.0, room.Discount)
	assert.Empty(t, room.Bookings)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM rooms`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM rooms ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows(roomColumns).
			AddRow(int64(1), "Room 1", 100.0, 0.0, createdAt, createdAt).
			AddRow(int64(2), "Room 2", 150.0, 20.0, createdAt, createdAt))

	rooms, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Room 1", rooms[0].Name)
	assert.Equal(t, "Room 2", rooms[1].Name)
}

func TestRepository_GetByIDs(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM rooms WHERE id IN \(\$1,\$2\) ORDER BY id ASC`).
		WithArgs(int64(2), int64(5)).
		WillReturnRows(sqlmock.NewRows(roomColumns).AddRow(int64(2), "Room 2", 150.0, 20.0, createdAt, createdAt))

	rooms, err := repo.GetByIDs(context.Background(), []int64{2, 5})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, int64(2), rooms[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByIDs_EmptyInputSkipsQuery(t *testing.T) {
	repo, mock := newMockRepository(t)

	rooms, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rooms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMockRepository(t)
	updatedAt := createdAt.Add(time.Hour)

	mock.ExpectQuery(`UPDATE rooms SET name = \$1, rate = \$2, discount = \$3, updated_at = NOW\(\) WHERE id = \$4 RETURNING created_at, updated_at`).
		WithArgs("Suite", 250.0, 15.0, int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, updatedAt))

	room := domain.NewRoom("Suite", nil, 250, 15)
	room.ID = 7

	updated, err := repo.Update(context.Background(), room)
	require.NoError(t, err)
	assert.Equal(t, updatedAt, updated.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Errors(t *testing.T) {
	repo, mock := newMockRepository(t)
	room := domain.NewRoom("Suite", nil, 250, 15)
	room.ID = 7

	mock.ExpectQuery(`UPDATE rooms`).WillReturnError(sql.ErrNoRows)
	_, err := repo.Update(context.Background(), room)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	mock.ExpectQuery(`UPDATE rooms`).WillReturnError(&pq.Error{Code: pgUniqueViolation})
	_, err = repo.Update(context.Background(), room)
	assert.ErrorIs(t, err, ErrDuplicateName)
}

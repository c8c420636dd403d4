package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"propfinder/internal/model"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewUserRepository(gormDB)

	id := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "username", "wallet_address", "token_balance"}).
		AddRow(id.String(), "alice", "0xabc", int64(200))
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(rows)

	user, err := repo.FindByUsername(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, int64(200), user.TokenBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	user, err := repo.FindByID(context.Background(), uuid.New())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	gormDB, mock := newMockDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{Username: "alice", WalletAddress: "0xabc"}
	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID, "BeforeCreate must assign an id")
	assert.NoError(t, mock.ExpectationsWereMet())
}

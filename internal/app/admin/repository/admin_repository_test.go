package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"mebelstore/internal/app/admin/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AdminRepositoryTestSuite тестовый suite для репозитория администраторов
type AdminRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  AdminRepository
	sqlDB *sql.DB
}

func TestAdminRepositorySuite(t *testing.T) {
	suite.Run(t, new(AdminRepositoryTestSuite))
}

func (s *AdminRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewAdminRepository(s.db)
}

func (s *AdminRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *AdminRepositoryTestSuite) TestGetByLogin_Success() {
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "surname", "name", "login", "hash_password", "created_at"}).
		AddRow(1, "Иванов", "Иван", "ivanov", "$2a$10$hash", time.Now())

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admins" WHERE login = $1`)).
		WithArgs("ivanov", 1).
		WillReturnRows(rows)

	// Act
	admin, err := s.repo.GetByLogin(ctx, "ivanov")

	// Assert
	s.NoError(err)
	s.NotNil(admin)
	s.Equal("ivanov", admin.Login)
	s.Equal("$2a$10$hash", admin.PasswordHash)
}

func (s *AdminRepositoryTestSuite) TestGetByLogin_NotFound() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "admins" WHERE login = $1`)).
		WithArgs("ghost", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	admin, err := s.repo.GetByLogin(ctx, "ghost")

	// Assert
	s.ErrorIs(err, ErrAdminNotFound)
	s.Nil(admin)
}

func (s *AdminRepositoryTestSuite) TestCreate_DuplicateLogin() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "admins"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	s.mock.ExpectRollback()

	// Act
	err := s.repo.Create(ctx, &entity.Admin{Login: "ivanov", PasswordHash: "hash"})

	// Assert
	s.ErrorIs(err, ErrDuplicate)
}

func (s *AdminRepositoryTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "admins" WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Delete(ctx, 99)

	// Assert
	s.ErrorIs(err, ErrAdminNotFound)
}

// GroupRepositoryTestSuite тестовый suite для репозитория телеграм-чатов
type GroupRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  GroupRepository
	sqlDB *sql.DB
}

func TestGroupRepositorySuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}

func (s *GroupRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewGroupRepository(s.db)
}

func (s *GroupRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *GroupRepositoryTestSuite) TestGetFirst_Success() {
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "chat_id", "title"}).
		AddRow(1, -1001234567890, "Новинки мебели")

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "telegram_groups" ORDER BY id ASC`)).
		WithArgs(1).
		WillReturnRows(rows)

	// Act
	group, err := s.repo.GetFirst(ctx)

	// Assert
	s.NoError(err)
	s.Equal(int64(-1001234567890), group.ChatID)
}

func (s *GroupRepositoryTestSuite) TestGetFirst_NoGroups() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "telegram_groups" ORDER BY id ASC`)).
		WithArgs(1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	group, err := s.repo.GetFirst(ctx)

	// Assert
	s.ErrorIs(err, ErrGroupNotFound)
	s.Nil(group)
}

func (s *GroupRepositoryTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "telegram_groups" WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Delete(ctx, 99)

	// Assert
	s.ErrorIs(err, ErrGroupNotFound)
}

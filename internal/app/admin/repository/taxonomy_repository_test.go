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

// CatalogRepositoryTestSuite тестовый suite для репозитория каталогов
type CatalogRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  CatalogRepository
	sqlDB *sql.DB
}

func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}

func (s *CatalogRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewCatalogRepository(s.db)
}

func (s *CatalogRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

// ===================== GetByID Tests =====================

func (s *CatalogRepositoryTestSuite) TestGetByID_Success() {
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(5, "Спальня", time.Now())

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_catalogs" WHERE id = $1`)).
		WithArgs(5, 1).
		WillReturnRows(rows)

	// Act
	catalog, err := s.repo.GetByID(ctx, 5)

	// Assert
	s.NoError(err)
	s.NotNil(catalog)
	s.Equal(uint(5), catalog.ID)
	s.Equal("Спальня", catalog.Name)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CatalogRepositoryTestSuite) TestGetByID_NotFound() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_catalogs" WHERE id = $1`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	catalog, err := s.repo.GetByID(ctx, 99)

	// Assert
	s.ErrorIs(err, ErrCatalogNotFound)
	s.Nil(catalog)
}

// ===================== Create Tests =====================

func (s *CatalogRepositoryTestSuite) TestCreate_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "product_catalogs"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	s.mock.ExpectCommit()

	catalog := &entity.Catalog{Name: "Гостиная"}

	// Act
	err := s.repo.Create(ctx, catalog)

	// Assert
	s.NoError(err)
	s.Equal(uint(7), catalog.ID)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CatalogRepositoryTestSuite) TestCreate_DuplicateName() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "product_catalogs"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	s.mock.ExpectRollback()

	// Act
	err := s.repo.Create(ctx, &entity.Catalog{Name: "Гостиная"})

	// Assert
	s.ErrorIs(err, ErrDuplicate)
}

// ===================== Update Tests =====================

func (s *CatalogRepositoryTestSuite) TestUpdate_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "product_catalogs" SET "name"=$1 WHERE id = $2`)).
		WithArgs("Детская", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Update(ctx, &entity.Catalog{ID: 5, Name: "Детская"})

	// Assert
	s.NoError(err)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *CatalogRepositoryTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "product_catalogs" SET "name"=$1 WHERE id = $2`)).
		WithArgs("Детская", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Update(ctx, &entity.Catalog{ID: 99, Name: "Детская"})

	// Assert
	s.ErrorIs(err, ErrCatalogNotFound)
}

// ===================== Delete Tests =====================

func (s *CatalogRepositoryTestSuite) TestDelete_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "product_catalogs" WHERE id = $1`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Delete(ctx, 5)

	// Assert
	s.NoError(err)
}

func (s *CatalogRepositoryTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "product_catalogs" WHERE id = $1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Delete(ctx, 99)

	// Assert
	s.ErrorIs(err, ErrCatalogNotFound)
}

// ManufacturerRepositoryTestSuite тестовый suite для репозитория производителей
type ManufacturerRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  ManufacturerRepository
	sqlDB *sql.DB
}

func TestManufacturerRepositorySuite(t *testing.T) {
	suite.Run(t, new(ManufacturerRepositoryTestSuite))
}

func (s *ManufacturerRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	s.db, err = gorm.Open(dialector, &gorm.Config{})
	require.NoError(s.T(), err)

	s.repo = NewManufacturerRepository(s.db)
}

func (s *ManufacturerRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

func (s *ManufacturerRepositoryTestSuite) TestList_Paginated() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "product_manufacturers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	rows := sqlmock.NewRows([]string{"id", "name", "created_at"}).
		AddRow(11, "Шатура", time.Now()).
		AddRow(12, "Аскона", time.Now())

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_manufacturers" ORDER BY created_at DESC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 10).
		WillReturnRows(rows)

	// Act
	manufacturers, total, err := s.repo.List(ctx, entity.PageQuery{Page: 2, Limit: 10})

	// Assert
	s.NoError(err)
	s.Equal(int64(25), total)
	s.Len(manufacturers, 2)
	s.Equal("Шатура", manufacturers[0].Name)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *ManufacturerRepositoryTestSuite) TestList_All() {
	ctx := context.Background()

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "product_manufacturers"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "product_manufacturers" ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(11, "Шатура", time.Now()))

	// Act
	manufacturers, total, err := s.repo.List(ctx, entity.PageQuery{All: true})

	// Assert
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(manufacturers, 1)
}

func (s *ManufacturerRepositoryTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "product_manufacturers" SET "name"=$1 WHERE id = $2`)).
		WithArgs("Аскона", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	// Act
	err := s.repo.Update(ctx, &entity.Manufacturer{ID: 99, Name: "Аскона"})

	// Assert
	s.ErrorIs(err, ErrManufacturerNotFound)
}

package cartrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"market/internal/adapters/out/postgres/cartrepo"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CartRepositoryIntegrationTestSuite verifies cart line persistence and the
// atomicity of the increment upsert against a real PostgreSQL instance.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&cartrepo.LineDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_lines").Error)
	suite.repository = cartrepo.NewGormCartRepository(suite.db)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) buyer() kernel.ChatID {
	buyer, err := kernel.NewChatID(784523911)
	suite.Require().NoError(err)
	return buyer
}

func (suite *CartRepositoryIntegrationTestSuite) TestIncrement_CreatesThenBumps() {
	ctx := context.Background()
	buyer := suite.buyer()
	productID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Increment(ctx, buyer, productID))
	suite.Require().NoError(suite.repository.Increment(ctx, buyer, productID))
	suite.Require().NoError(suite.repository.Increment(ctx, buyer, productID))

	line, err := suite.repository.GetForUpdate(ctx, buyer, productID)
	suite.Require().NoError(err)
	suite.Equal(3, line.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestIncrement_ConcurrentTapsAllLand() {
	ctx := context.Background()
	buyer := suite.buyer()
	productID := kernel.NewUUID()

	const taps = 20

	var wg sync.WaitGroup
	errCh := make(chan error, taps)

	for range taps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- suite.repository.Increment(ctx, buyer, productID)
		}()
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		suite.Require().NoError(err)
	}

	line, err := suite.repository.GetForUpdate(ctx, buyer, productID)
	suite.Require().NoError(err)
	suite.Equal(taps, line.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetForUpdate_MissingLine_ReturnsNotFoundError() {
	ctx := context.Background()

	line, err := suite.repository.GetForUpdate(ctx, suite.buyer(), kernel.NewUUID())

	suite.Nil(line)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetAllForBuyerForUpdate_ReturnsOnlyBuyersLines() {
	ctx := context.Background()
	buyer := suite.buyer()

	other, err := kernel.NewChatID(1042)
	suite.Require().NoError(err)

	first := kernel.NewUUID()
	second := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Increment(ctx, buyer, first))
	suite.Require().NoError(suite.repository.Increment(ctx, buyer, second))
	suite.Require().NoError(suite.repository.Increment(ctx, other, kernel.NewUUID()))

	lines, err := suite.repository.GetAllForBuyerForUpdate(ctx, buyer)
	suite.Require().NoError(err)

	suite.Require().Len(lines, 2)
	for _, line := range lines {
		suite.Equal(buyer, line.Buyer())
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_PersistsQuantity() {
	ctx := context.Background()
	buyer := suite.buyer()
	productID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Increment(ctx, buyer, productID))
	suite.Require().NoError(suite.repository.Increment(ctx, buyer, productID))

	line, err := suite.repository.GetForUpdate(ctx, buyer, productID)
	suite.Require().NoError(err)

	suite.True(line.Reduce())
	suite.Require().NoError(suite.repository.Update(ctx, line))

	reloaded, err := suite.repository.GetForUpdate(ctx, buyer, productID)
	suite.Require().NoError(err)
	suite.Equal(1, reloaded.Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemoveMany_ClearsOnlyGivenProducts() {
	ctx := context.Background()
	buyer := suite.buyer()

	consumed := kernel.NewUUID()
	alsoConsumed := kernel.NewUUID()
	kept := kernel.NewUUID()

	for _, id := range []kernel.UUID{consumed, alsoConsumed, kept} {
		suite.Require().NoError(suite.repository.Increment(ctx, buyer, id))
	}

	err := suite.repository.RemoveMany(ctx, buyer, []kernel.UUID{consumed, alsoConsumed})
	suite.Require().NoError(err)

	lines, err := suite.repository.GetAllForBuyerForUpdate(ctx, buyer)
	suite.Require().NoError(err)

	suite.Require().Len(lines, 1)
	suite.Equal(kept, lines[0].ProductID())
}

func (suite *CartRepositoryIntegrationTestSuite) TestRemove_DeletesSingleLine() {
	ctx := context.Background()
	buyer := suite.buyer()
	productID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Increment(ctx, buyer, productID))
	suite.Require().NoError(suite.repository.Remove(ctx, buyer, productID))

	lines, err := suite.repository.GetAllForBuyerForUpdate(ctx, buyer)
	suite.Require().NoError(err)
	suite.Empty(lines)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}

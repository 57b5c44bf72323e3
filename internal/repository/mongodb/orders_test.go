package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/katsuchip/functions/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func newTestRepository(mt *mtest.T, legacyLookup bool) *Repository {
	return &Repository{
		db:           mt.DB,
		lg:           zap.NewNop().Sugar(),
		legacyLookup: legacyLookup,
	}
}

func TestRepository_FindOrder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found in primary collection", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "A1"},
			{Key: "status", Value: "pending"},
			{Key: "paymentStatus", Value: "unpaid"},
		}))

		order, err := repo.FindOrder(context.Background(), "A1")

		require.NoError(t, err)
		assert.Equal(t, "A1", order.ID)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, model.PaymentStatusUnpaid, order.PaymentStatus)
		assert.Equal(t, ordersCollection, order.Collection)
	})

	mt.Run("not found without legacy lookup", func(mt *mtest.T) {
		repo := newTestRepository(mt, false)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch))

		order, err := repo.FindOrder(context.Background(), "missing")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	mt.Run("found in legacy user collection", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "katsuchip.users", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "u1"}},
				bson.D{{Key: "_id", Value: "u2"}},
			),
			mtest.CreateCursorResponse(0, "katsuchip.users.u1.orders", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "katsuchip.users.u2.orders", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "L1"},
				{Key: "status", Value: "pending"},
			}),
		)

		order, err := repo.FindOrder(context.Background(), "L1")

		require.NoError(t, err)
		assert.Equal(t, "L1", order.ID)
		assert.Equal(t, "users.u2.orders", order.Collection)
	})

	mt.Run("not found anywhere", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "katsuchip.users", mtest.FirstBatch,
				bson.D{{Key: "_id", Value: "u1"}},
			),
			mtest.CreateCursorResponse(0, "katsuchip.users.u1.orders", mtest.FirstBatch),
		)

		order, err := repo.FindOrder(context.Background(), "ghost")

		assert.Nil(t, order)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})

	mt.Run("driver error", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
		}))

		order, err := repo.FindOrder(context.Background(), "A1")

		assert.Nil(t, order)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestRepository_UpdateOrderPayment(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.UpdateOrderPayment(context.Background(), &model.Order{ID: "A1"}, model.PaymentUpdate{
			Status:        model.OrderStatusWaiting,
			PaymentStatus: model.PaymentStatusPaid,
			MarkPaid:      true,
		})

		assert.NoError(t, err)
	})

	mt.Run("not matched", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.UpdateOrderPayment(context.Background(), &model.Order{ID: "gone", Collection: "users.u1.orders"}, model.PaymentUpdate{})

		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}

func TestRepository_FindCompletedOrdersBefore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ids", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "o1"}},
			bson.D{{Key: "_id", Value: "o2"}},
		))

		ids, err := repo.FindCompletedOrdersBefore(context.Background(), time.Now().AddDate(0, 0, -60))

		require.NoError(t, err)
		assert.Equal(t, []string{"o1", "o2"}, ids)
	})

	mt.Run("filters completed orders strictly before cutoff", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)
		cutoff := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch))

		_, err := repo.FindCompletedOrdersBefore(context.Background(), cutoff)
		require.NoError(t, err)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(t, "orders", cmd.Lookup("find").StringValue())

		filter := cmd.Lookup("filter").Document()
		assert.Equal(t, "completed", filter.Lookup("deliveryStatus").StringValue())
		assert.True(t, filter.Lookup("completedAt", "$lt").Time().Equal(cutoff))

		_, err = filter.LookupErr("completedAt", "$lte")
		assert.Error(t, err)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.orders", mtest.FirstBatch))

		ids, err := repo.FindAllOrderIDs(context.Background())

		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestRepository_DeleteOrders(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("single batch", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		deleted, err := repo.DeleteOrders(context.Background(), []string{"o1", "o2", "o3"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	mt.Run("nothing to delete", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		deleted, err := repo.DeleteOrders(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}

func TestRepository_GetUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("admin", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "admin-uid"},
			{Key: "role", Value: "admin"},
		}))

		user, err := repo.GetUser(context.Background(), "admin-uid")

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := newTestRepository(mt, true)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "katsuchip.users", mtest.FirstBatch))

		user, err := repo.GetUser(context.Background(), "nobody")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

func TestRepository_Ping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		repo := newTestRepository(mt, false)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		assert.NoError(t, repo.Ping(context.Background()))
	})

	mt.Run("error", func(mt *mtest.T) {
		repo := newTestRepository(mt, false)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "not authorized",
			Name:    "Unauthorized",
		}))

		assert.Error(t, repo.Ping(context.Background()))
	})
}

func TestLegacyOrdersCollection(t *testing.T) {
	assert.Equal(t, "users.u42.orders", legacyOrdersCollection("u42"))
}

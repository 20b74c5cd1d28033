package dao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Memora/dao"
	"Memora/internal/testutil"
	"Memora/models"
	"Memora/pkg/database"
	"Memora/pkg/snowflake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_IncrDecrFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	u := testutil.CreateUser(t, store, "alice")

	require.NoError(t, store.Users.Incr(ctx, u.ID, dao.ColFollowersCount))
	assert.Equal(t, uint64(1), testutil.ReloadUser(t, store, u.ID).FollowersCount)

	changed, err := store.Users.Decr(ctx, u.ID, dao.ColFollowersCount)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = store.Users.Decr(ctx, u.ID, dao.ColFollowersCount)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, uint64(0), testutil.ReloadUser(t, store, u.ID).FollowersCount)
}

func TestRepo_DecrByClamps(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	u := testutil.CreateUser(t, store, "alice")

	for i := 0; i < 2; i++ {
		require.NoError(t, store.Users.Incr(ctx, u.ID, dao.ColNotificationCount))
	}
	n, err := store.Users.DecrBy(ctx, u.ID, dao.ColNotificationCount, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, uint64(0), testutil.ReloadUser(t, store, u.ID).NotificationCount)
}

func TestRepo_FindMissingReturnsNil(t *testing.T) {
	store := testutil.NewStore(t)

	m, err := store.Memories.FindById(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLikes_UniqueIndex(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	u := testutil.CreateUser(t, store, "alice")
	m := testutil.CreateMemory(t, store, u, "beach")

	first := &models.Like{ID: snowflake.GenID(), UserID: u.ID, MemoryID: m.ID, CreatedAt: database.Now()}
	require.NoError(t, store.Likes.Create(ctx, first))

	dup := &models.Like{ID: snowflake.GenID(), UserID: u.ID, MemoryID: m.ID, CreatedAt: database.Now()}
	err := store.Likes.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, dao.IsDuplicateKey(err))
}

func TestFollows_UniqueIndex(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	a := testutil.CreateUser(t, store, "alice")
	b := testutil.CreateUser(t, store, "bob")

	require.NoError(t, store.Follows.Create(ctx, &models.Follow{ID: snowflake.GenID(), FollowerID: a.ID, FollowingID: b.ID, CreatedAt: database.Now()}))
	err := store.Follows.Create(ctx, &models.Follow{ID: snowflake.GenID(), FollowerID: a.ID, FollowingID: b.ID, CreatedAt: database.Now()})
	assert.True(t, dao.IsDuplicateKey(err))

	// 反向关注是另一条关系
	require.NoError(t, store.Follows.Create(ctx, &models.Follow{ID: snowflake.GenID(), FollowerID: b.ID, FollowingID: a.ID, CreatedAt: database.Now()}))

	followers, err := store.Follows.Followers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].ID)

	followings, err := store.Follows.Followings(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, followings, 1)
	assert.Equal(t, a.ID, followings[0].ID)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, dao.IsDuplicateKey(nil))
	assert.False(t, dao.IsDuplicateKey(errors.New("connection refused")))
	assert.True(t, dao.IsDuplicateKey(errors.New("Error 1062 (23000): Duplicate entry '1-2' for key 'uk_like_user_memory'")))
}

func TestNotifications_OrderingAndMatching(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	owner := testutil.CreateUser(t, store, "owner")
	actor := testutil.CreateUser(t, store, "actor")

	same := database.Now()
	older := same.Add(-time.Minute)

	n1 := &models.Notification{ID: snowflake.GenID(), RecipientID: owner.ID, InteractorID: actor.ID, Type: models.NotificationLike, CreatedAt: older}
	n2 := &models.Notification{ID: snowflake.GenID(), RecipientID: owner.ID, InteractorID: actor.ID, Type: models.NotificationComment, CreatedAt: same}
	n3 := &models.Notification{ID: snowflake.GenID(), RecipientID: owner.ID, InteractorID: actor.ID, Type: models.NotificationNewFollower, CreatedAt: same, IsRead: true}
	for _, n := range []*models.Notification{n1, n2, n3} {
		require.NoError(t, store.Notifications.Create(ctx, n))
	}

	all, err := store.Notifications.ListByRecipient(ctx, owner.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// created_at 相同时按 id 倒序
	assert.Equal(t, []uint64{n3.ID, n2.ID, n1.ID}, []uint64{all[0].ID, all[1].ID, all[2].ID})

	unread, err := store.Notifications.ListByRecipient(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, n2.ID, unread[0].ID)

	found, err := store.Notifications.FindUnread(ctx, dao.NotificationMatch{
		RecipientID: owner.ID, InteractorID: actor.ID, Type: models.NotificationLike, CreatedAt: older,
	})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, n1.ID, found.ID)

	// 已读的不参与匹配
	found, err = store.Notifications.FindUnread(ctx, dao.NotificationMatch{
		RecipientID: owner.ID, InteractorID: actor.ID, Type: models.NotificationNewFollower, CreatedAt: same,
	})
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNotifications_MarkReadOnlyOnce(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	owner := testutil.CreateUser(t, store, "owner")

	n := &models.Notification{ID: snowflake.GenID(), RecipientID: owner.ID, InteractorID: owner.ID, Type: models.NotificationLike, CreatedAt: database.Now()}
	require.NoError(t, store.Notifications.Create(ctx, n))

	rows, err := store.Notifications.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = store.Notifications.MarkRead(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestStore_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	u := testutil.CreateUser(t, store, "alice")
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx *dao.Store) error {
		if err := tx.Users.Incr(ctx, u.ID, dao.ColNotificationCount); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(0), testutil.ReloadUser(t, store, u.ID).NotificationCount)

	assert.Panics(t, func() {
		_ = store.Transaction(ctx, func(tx *dao.Store) error {
			_ = tx.Users.Incr(ctx, u.ID, dao.ColNotificationCount)
			panic("boom")
		})
	})
	assert.Equal(t, uint64(0), testutil.ReloadUser(t, store, u.ID).NotificationCount)

	require.NoError(t, store.Transaction(ctx, func(tx *dao.Store) error {
		return tx.Users.Incr(ctx, u.ID, dao.ColNotificationCount)
	}))
	assert.Equal(t, uint64(1), testutil.ReloadUser(t, store, u.ID).NotificationCount)
}

func TestOwnerRegistry(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	reg := dao.NewOwnerRegistry(store)
	u := testutil.CreateUser(t, store, "alice")
	m := testutil.CreateMemory(t, store, u, "beach")

	owned, err := reg.Owner(ctx, models.KindMemory, m.ID)
	require.NoError(t, err)
	require.NotNil(t, owned)
	assert.Equal(t, u.ID, owned.OwnerID())

	owned, err = reg.Owner(ctx, models.KindUser, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, owned.OwnerID())

	owned, err = reg.Owner(ctx, models.KindComment, 999)
	require.NoError(t, err)
	assert.Nil(t, owned)

	_, err = reg.Owner(ctx, models.EntityKind("party"), 1)
	assert.ErrorIs(t, err, dao.ErrUnknownEntityKind)
}

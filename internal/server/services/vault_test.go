package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/sealvault/internal/common"
	"github.com/dmitrijs2005/sealvault/internal/logging"
	"github.com/dmitrijs2005/sealvault/internal/server/blobstore"
	"github.com/dmitrijs2005/sealvault/internal/server/models"
	"github.com/dmitrijs2005/sealvault/internal/server/policy"
	"github.com/dmitrijs2005/sealvault/internal/server/repositories/items"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// -------- test helpers --------

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func newTestClock() *testClock {
	return &testClock{t: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func discardLogger() logging.Logger {
	return logging.Discard()
}

type fixture struct {
	svc   *VaultService
	repo  *items.MemoryRepository
	blobs *blobstore.Memory
	clock *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:  items.NewMemoryRepository(),
		blobs: blobstore.NewMemory(),
		clock: newTestClock(),
	}
	f.svc = NewVaultService(f.repo, f.blobs, discardLogger(), VaultOptions{Now: f.clock.Now})
	return f
}

func (f *fixture) count(t *testing.T, id string) int64 {
	t.Helper()
	item, err := f.repo.Get(context.Background(), id)
	require.NoError(t, err)
	return item.DownloadCount
}

func int64p(v int64) *int64 { return &v }

func durp(d time.Duration) *time.Duration { return &d }

// -------- seal --------

func TestSeal_Validation(t *testing.T) {
	f := newFixture(t)
	f.svc.maxBytes = 8
	ctx := context.Background()

	_, err := f.svc.Seal(ctx, []byte("x"), SealOptions{Quota: int64p(0)})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.svc.Seal(ctx, []byte("x"), SealOptions{Quota: int64p(-3)})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.svc.Seal(ctx, []byte("x"), SealOptions{TTL: durp(-time.Second)})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.svc.Seal(ctx, []byte("123456789"), SealOptions{})
	assert.ErrorIs(t, err, common.ErrPayloadTooLarge)

	assert.Equal(t, 0, f.blobs.Len())
}

func TestSeal_StoresMetadata(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("report"), SealOptions{
		Quota: int64p(3), TTL: durp(time.Hour),
		OwnerID: "alice", FileName: "r.pdf", ContentType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Len(t, res.AccessKey, 64)

	item, err := f.repo.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, blobstore.StorageKey(res.ID, f.clock.Now()), item.BlobKey)
	assert.Len(t, item.IV, 12)
	assert.Equal(t, models.KeyedLink{}, item.Credential)
	assert.Equal(t, int64(3), *item.DownloadQuota)
	assert.Equal(t, f.clock.Now().Add(time.Hour), *item.ExpiresAt)
	assert.Equal(t, "alice", item.OwnerID)
	assert.Equal(t, int64(6), item.Size)

	stored, err := f.blobs.Read(ctx, item.BlobKey)
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "report")
}

type failingCreateRepo struct {
	items.Repository
}

func (failingCreateRepo) Create(ctx context.Context, item *models.SealedItem) error {
	return errors.New("disk full")
}

func TestSeal_FailedInsertRemovesBlob(t *testing.T) {
	blobs := blobstore.NewMemory()
	svc := NewVaultService(failingCreateRepo{items.NewMemoryRepository()}, blobs, discardLogger(), VaultOptions{})

	_, err := svc.Seal(context.Background(), []byte("data"), SealOptions{})
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	assert.Equal(t, 0, blobs.Len())
}

type failingBlobs struct {
	blobstore.Store
}

func (failingBlobs) Write(ctx context.Context, key string, data []byte) error {
	return errors.New("bucket gone")
}

func TestSeal_BlobWriteFails(t *testing.T) {
	svc := NewVaultService(failingCreateRepo{}, failingBlobs{blobstore.NewMemory()}, discardLogger(), VaultOptions{})

	res, err := svc.Seal(context.Background(), []byte("data"), SealOptions{})
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	assert.Nil(t, res)
}

// -------- unseal --------

func TestUnseal_PassphraseRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("secret doc"), SealOptions{Passphrase: []byte("correct horse")})
	require.NoError(t, err)
	assert.Empty(t, res.AccessKey)

	got, item, err := f.svc.Unseal(ctx, res.ID, Presented{Passphrase: []byte("correct horse")})
	require.NoError(t, err)
	assert.Equal(t, []byte("secret doc"), got)
	assert.Equal(t, int64(1), item.DownloadCount)
}

func TestUnseal_KeyedRoundTripAndWrongKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("payload"), SealOptions{})
	require.NoError(t, err)

	wrong := []byte(res.AccessKey)
	if wrong[0] == '0' {
		wrong[0] = '1'
	} else {
		wrong[0] = '0'
	}

	for _, key := range []string{string(wrong), "", "zz", res.AccessKey[:63]} {
		_, _, err = f.svc.Unseal(ctx, res.ID, Presented{AccessKey: key})
		assert.ErrorIs(t, err, common.ErrInvalidCredential, "key %q", key)
	}
	assert.Equal(t, int64(0), f.count(t, res.ID))

	got, _, err := f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestUnseal_KeyedRoundTripProperty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rapid.Check(t, func(rt *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 0, 4096).Draw(rt, "payload")

		res, err := f.svc.Seal(ctx, payload, SealOptions{Quota: int64p(1)})
		require.NoError(rt, err)

		got, _, err := f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
		require.NoError(rt, err)
		assert.Equal(rt, len(payload), len(got))
		assert.Equal(rt, string(payload), string(got))
	})
}

func TestUnseal_EmptyPayload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte{}, SealOptions{})
	require.NoError(t, err)

	got, _, err := f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUnseal_NotFound(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.svc.Unseal(context.Background(), "missing", Presented{AccessKey: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUnseal_QuotaSequence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("twice"), SealOptions{Quota: int64p(2)})
	require.NoError(t, err)
	cred := Presented{AccessKey: res.AccessKey}

	for i := 0; i < 2; i++ {
		got, _, err := f.svc.Unseal(ctx, res.ID, cred)
		require.NoError(t, err)
		assert.Equal(t, []byte("twice"), got)
	}

	got, _, err := f.svc.Unseal(ctx, res.ID, cred)
	assert.ErrorIs(t, err, common.ErrQuotaExhausted)
	assert.Nil(t, got)
	assert.Equal(t, int64(2), f.count(t, res.ID))
}

func TestUnseal_ConcurrentAttemptsNeverExceedQuota(t *testing.T) {
	for _, extra := range []int{0, 1, 7} {
		f := newFixture(t)
		ctx := context.Background()

		const quota = 4
		res, err := f.svc.Seal(ctx, []byte("race"), SealOptions{Quota: int64p(quota)})
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < quota+extra; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, _, err := f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
				if err != nil {
					assert.ErrorIs(t, err, common.ErrQuotaExhausted)
					return
				}
				assert.Equal(t, []byte("race"), got)
				mu.Lock()
				successes++
				mu.Unlock()
			}()
		}
		wg.Wait()

		assert.Equal(t, quota, successes, "extra=%d", extra)
		assert.Equal(t, int64(quota), f.count(t, res.ID))
	}
}

func TestUnseal_ZeroTTLExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("gone soon"), SealOptions{TTL: durp(0)})
	require.NoError(t, err)

	f.clock.Advance(time.Nanosecond)

	got, _, err := f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	assert.ErrorIs(t, err, common.ErrExpired)
	assert.Nil(t, got)
	assert.Equal(t, int64(0), f.count(t, res.ID))
}

func TestUnseal_WrongPassphraseLeavesCountUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("guarded"), SealOptions{Passphrase: []byte("pw"), Quota: int64p(1)})
	require.NoError(t, err)

	for _, p := range [][]byte{[]byte("nope"), nil, []byte("PW")} {
		got, _, err := f.svc.Unseal(ctx, res.ID, Presented{Passphrase: p})
		assert.ErrorIs(t, err, common.ErrInvalidCredential)
		assert.Nil(t, got)
	}
	assert.Equal(t, int64(0), f.count(t, res.ID))

	got, _, err := f.svc.Unseal(ctx, res.ID, Presented{Passphrase: []byte("pw")})
	require.NoError(t, err)
	assert.Equal(t, []byte("guarded"), got)
	assert.Equal(t, int64(1), f.count(t, res.ID))
}

func TestUnseal_TamperedCiphertext(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("integrity"), SealOptions{})
	require.NoError(t, err)

	item, err := f.repo.Get(ctx, res.ID)
	require.NoError(t, err)
	stored, err := f.blobs.Read(ctx, item.BlobKey)
	require.NoError(t, err)
	stored[len(stored)/2] ^= 0x01
	require.NoError(t, f.blobs.Write(ctx, item.BlobKey, stored))

	got, _, err := f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	assert.True(t, errors.Is(err, common.ErrInvalidCredential) || errors.Is(err, common.ErrMalformedPayload), "got %v", err)
	assert.Nil(t, got)
	assert.Equal(t, int64(0), f.count(t, res.ID))
}

func TestUnseal_MissingBlob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("x"), SealOptions{})
	require.NoError(t, err)
	item, err := f.repo.Get(ctx, res.ID)
	require.NoError(t, err)
	require.NoError(t, f.blobs.Remove(ctx, item.BlobKey))

	_, _, err = f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	assert.ErrorIs(t, err, common.ErrMalformedPayload)
}

// stealingRepo lets a concurrent consumer take the last slot between the
// liveness check and the increment.
type stealingRepo struct {
	*items.MemoryRepository
	once sync.Once
}

func (r *stealingRepo) CompareAndIncrement(ctx context.Context, id string, expected int64, now time.Time) (bool, error) {
	r.once.Do(func() {
		_, _ = r.MemoryRepository.CompareAndIncrement(ctx, id, expected, now)
	})
	return r.MemoryRepository.CompareAndIncrement(ctx, id, expected, now)
}

func TestUnseal_LostRaceDropsPlaintext(t *testing.T) {
	repo := &stealingRepo{MemoryRepository: items.NewMemoryRepository()}
	svc := NewVaultService(repo, blobstore.NewMemory(), discardLogger(), VaultOptions{})
	ctx := context.Background()

	res, err := svc.Seal(ctx, []byte("last copy"), SealOptions{Quota: int64p(1)})
	require.NoError(t, err)

	got, item, err := svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	assert.ErrorIs(t, err, common.ErrQuotaExhausted)
	assert.Nil(t, got)
	assert.Nil(t, item)

	stored, err := repo.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.DownloadCount)
}

func TestVault_HelloExample(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("hello"), SealOptions{
		Passphrase: []byte("pw1"), Quota: int64p(1), TTL: durp(time.Hour),
	})
	require.NoError(t, err)

	got, _, err := f.svc.Unseal(ctx, res.ID, Presented{Passphrase: []byte("pw1")})
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
	assert.Equal(t, int64(1), f.count(t, res.ID))

	_, _, err = f.svc.Unseal(ctx, res.ID, Presented{Passphrase: []byte("pw1")})
	assert.ErrorIs(t, err, common.ErrQuotaExhausted)
}

// -------- peek / delete --------

func TestPeekInfo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("abc"), SealOptions{
		Passphrase: []byte("pw"), Quota: int64p(2), TTL: durp(time.Minute), FileName: "a.txt",
	})
	require.NoError(t, err)

	info, err := f.svc.PeekInfo(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, info.RequiresPassphrase)
	assert.Equal(t, policy.Available, info.Liveness)
	assert.Equal(t, int64(2), *info.QuotaRemaining)
	assert.Equal(t, f.clock.Now().Add(time.Minute), *info.ExpiresAt)
	assert.Equal(t, "a.txt", info.FileName)
	assert.Equal(t, int64(3), info.Size)

	_, err = f.svc.PeekInfo(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.count(t, res.ID))

	f.clock.Advance(2 * time.Minute)
	info, err = f.svc.PeekInfo(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, policy.Expired, info.Liveness)

	_, err = f.svc.PeekInfo(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("mine"), SealOptions{OwnerID: "alice"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, res.ID, "bob"), common.ErrorUnauthorized)
	assert.ErrorIs(t, f.svc.Delete(ctx, res.ID, ""), common.ErrorUnauthorized)

	require.NoError(t, f.svc.Delete(ctx, res.ID, "alice"))
	assert.Equal(t, 0, f.blobs.Len())

	_, _, err = f.svc.Unseal(ctx, res.ID, Presented{AccessKey: res.AccessKey})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, res.ID, "alice"), common.ErrorNotFound)
}

func TestDelete_AnonymousItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Seal(ctx, []byte("nobody's"), SealOptions{})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, res.ID, ""), common.ErrorUnauthorized)
}

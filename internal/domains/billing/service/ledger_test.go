package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	kafkaMocks "hms/infras/kafka/mocks"
	"hms/infras/otel/mocks"
	pgMocks "hms/infras/postgres/mocks"
	"hms/internal/domains/billing/model"
	"hms/internal/domains/billing/model/dto"
	"hms/internal/domains/billing/service"
	"hms/shared/cache"
	gDto "hms/shared/dto"
)

// memoryLedger keeps entries in insertion order, ids starting at 1.
type memoryLedger struct {
	mu      sync.Mutex
	entries []model.LedgerEntry
}

func (l *memoryLedger) latest(patient string) model.PostedBalance {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].Patient == patient {
			return model.PostedBalance{TransactionID: l.entries[i].ID, Balance: l.entries[i].Balance}
		}
	}

	return model.PostedBalance{Balance: decimal.Zero}
}

func (l *memoryLedger) InsertReturning(_ context.Context, entry model.LedgerEntry, _ string, dest any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.ID = int64(len(l.entries) + 1)
	l.entries = append(l.entries, entry)
	*(dest.(*int64)) = entry.ID

	return nil
}

func (l *memoryLedger) InsertReturningTx(ctx context.Context, _ *sqlx.Tx, entry model.LedgerEntry, returning string, dest any) error {
	return l.InsertReturning(ctx, entry, returning, dest)
}

func (l *memoryLedger) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.LedgerEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]model.LedgerEntry(nil), l.entries...), nil
}

func (l *memoryLedger) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries), nil
}

func (l *memoryLedger) LatestPosted(_ context.Context, patient string) (model.PostedBalance, error) {
	return l.latest(patient), nil
}

func (l *memoryLedger) LatestBalanceTx(_ context.Context, _ *sqlx.Tx, patient string) (decimal.Decimal, error) {
	return l.latest(patient).Balance, nil
}

func (l *memoryLedger) LockPatientTx(_ context.Context, _ *sqlx.Tx, _ string) error {
	return nil
}

func (l *memoryLedger) PendingPayments(_ context.Context) ([]model.PendingPayment, error) {
	return nil, nil
}

func (l *memoryLedger) InsertRevenue(_ context.Context, _ model.Revenue) error {
	return nil
}

func (l *memoryLedger) InsertCost(_ context.Context, _ model.Cost) error {
	return nil
}

func (l *memoryLedger) Totals(_ context.Context) (model.Totals, error) {
	return model.Totals{}, nil
}

type versioned struct {
	version int64
	value   []byte
}

// memoryCache mirrors the redis cache, including the versioned writes.
type memoryCache struct {
	mu     sync.Mutex
	values map[string]versioned
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]versioned{}}
}

func (c *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = versioned{value: raw}

	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.values[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(stored.value, value)
}

func (c *memoryCache) SaveVersion(_ context.Context, key string, version int64, value any, _ int) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if stored, ok := c.values[key]; ok && stored.version >= version {
		return false, nil
	}

	c.values[key] = versioned{version: version, value: raw}

	return true, nil
}

func (c *memoryCache) GetVersion(_ context.Context, key string, value any) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.values[key]
	if !ok {
		return 0, cache.Nil
	}

	return stored.version, json.Unmarshal(stored.value, value)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, key)

	return nil
}

func (c *memoryCache) Clear(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.values {
		if strings.HasPrefix(key, strings.TrimSuffix(prefix, "*")) {
			delete(c.values, key)
		}
	}

	return nil
}

func (c *memoryCache) balance(t *testing.T, patient string) (int64, decimal.Decimal) {
	t.Helper()

	var balance decimal.Decimal

	version, err := c.GetVersion(context.Background(), "billing:balance:"+patient, &balance)
	require.NoError(t, err)

	return version, balance
}

func newLedgerService(t *testing.T) (*memoryLedger, *memoryCache, service.Billing) {
	t.Helper()

	ctrl := gomock.NewController(t)

	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	kafkaClient.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.Billing.AppointmentFee = "200"
	cfg.Kafka.Topics.Billing = "hms.billing.ledger"

	ledger := &memoryLedger{}
	memCache := newMemoryCache()

	return ledger, memCache, service.New(ledger, pgMocks.NewTransactor(), cfg, memCache, kafkaClient, mocks.NewOtel(), nil)
}

func ledgerMessage(t *testing.T, entry dto.LedgerEntryResponse) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(dto.NewLedgerEvent(entry, "EGP"))
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(entry.Patient), Value: value}
}

func TestBillingLedger_BalanceIsRunningSum(t *testing.T) {
	_, _, svc := newLedgerService(t)
	ctx := context.Background()

	amounts := []string{"500", "-200", "-37.50", "12.25", "-0.75"}
	sum := decimal.Zero

	for _, amount := range amounts {
		value := decimal.RequireFromString(amount)
		sum = sum.Add(value)

		res, err := svc.PostEntry(ctx, dto.PostEntryRequest{Patient: "pat1", Type: "Adjustment", Amount: value})
		require.NoError(t, err)
		assert.True(t, sum.Equal(res.Balance), "after %s: %s", amount, res.Balance)
	}

	res, err := svc.GetBalance(ctx, "pat1")
	require.NoError(t, err)
	assert.True(t, sum.Equal(res.Balance), res.Balance.String())
	assert.Equal(t, "274", res.Balance.String())

	other, err := svc.GetBalance(ctx, "pat2")
	require.NoError(t, err)
	assert.True(t, other.Balance.IsZero())
}

func TestBillingLedger_FeeAndMedication(t *testing.T) {
	_, _, svc := newLedgerService(t)
	ctx := context.Background()

	_, err := svc.ChargeAppointmentFee(ctx, "pat1")
	require.NoError(t, err)

	entry, err := svc.ChargeMedication(ctx, dto.ChargeMedicationRequest{Patient: "pat1", Medication: "Aspirin", Quantity: 3, Price: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.Equal(t, "-15", entry.Amount.String())
	assert.Equal(t, "Medication Payment (Aspirin)", entry.Type)

	res, err := svc.GetBalance(ctx, "pat1")
	require.NoError(t, err)
	assert.Equal(t, "-215", res.Balance.String())
}

func TestBillingLedger_ReplayedEventKeepsNewestBalance(t *testing.T) {
	ledger, memCache, svc := newLedgerService(t)
	ctx := context.Background()

	first, err := svc.ChargeAppointmentFee(ctx, "pat1")
	require.NoError(t, err)

	second, err := svc.ChargeAppointmentFee(ctx, "pat1")
	require.NoError(t, err)
	assert.Equal(t, "-400", second.Balance.String())

	// the older event is consumed last
	require.NoError(t, svc.HandleLedgerEvent(ctx, ledgerMessage(t, second)))
	require.NoError(t, svc.HandleLedgerEvent(ctx, ledgerMessage(t, first)))

	version, cached := memCache.balance(t, "pat1")
	assert.Equal(t, second.ID, version)
	assert.Equal(t, "-400", cached.String())

	res, err := svc.GetBalance(ctx, "pat1")
	require.NoError(t, err)
	assert.True(t, ledger.latest("pat1").Balance.Equal(res.Balance), res.Balance.String())

	// redelivery after the key expired still caches the ledger value
	require.NoError(t, memCache.Delete(ctx, "billing:balance:pat1"))
	require.NoError(t, svc.HandleLedgerEvent(ctx, ledgerMessage(t, first)))

	_, cached = memCache.balance(t, "pat1")
	assert.Equal(t, "-400", cached.String())
}

func TestBillingLedger_LateReadDoesNotOverwritePost(t *testing.T) {
	_, memCache, svc := newLedgerService(t)
	ctx := context.Background()

	first, err := svc.Deposit(ctx, dto.DepositRequest{Patient: "pat1", Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)

	second, err := svc.ChargeAppointmentFee(ctx, "pat1")
	require.NoError(t, err)

	// a balance read of the first entry lands after the second post was cached
	saved, err := memCache.SaveVersion(ctx, "billing:balance:pat1", first.ID, first.Balance, 300)
	require.NoError(t, err)
	assert.False(t, saved)

	res, err := svc.GetBalance(ctx, "pat1")
	require.NoError(t, err)
	assert.Equal(t, second.Balance.String(), res.Balance.String())
	assert.Equal(t, "-100", res.Balance.String())
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Billing=MockBillingService

import (
	"context"
	"fmt"
	"strings"

	"hms/config"
	"hms/infras/kafka"
	"hms/infras/metrics"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/billing/model"
	"hms/internal/domains/billing/model/dto"
	"hms/internal/domains/billing/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"
	"hms/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	cacheBalance = "billing:balance"

	defaultAppointmentFee = 200
)

const (
	entryKindAppointment = "appointment"
	entryKindMedication  = "medication"
	entryKindDeposit     = "deposit"
	entryKindOther       = "other"
)

type Billing interface {
	GetBalance(ctx context.Context, patient string) (dto.BalanceResponse, error)
	PostEntry(ctx context.Context, req dto.PostEntryRequest) (dto.LedgerEntryResponse, error)
	PostEntryTx(ctx context.Context, tx *sqlx.Tx, req dto.PostEntryRequest) (dto.LedgerEntryResponse, error)
	ChargeAppointmentFee(ctx context.Context, patient string) (dto.LedgerEntryResponse, error)
	ChargeAppointmentFeeTx(ctx context.Context, tx *sqlx.Tx, patient string) (dto.LedgerEntryResponse, error)
	ChargeMedication(ctx context.Context, req dto.ChargeMedicationRequest) (dto.LedgerEntryResponse, error)
	ChargeMedicationTx(ctx context.Context, tx *sqlx.Tx, req dto.ChargeMedicationRequest) (dto.LedgerEntryResponse, error)
	Deposit(ctx context.Context, req dto.DepositRequest) (dto.LedgerEntryResponse, error)
	History(ctx context.Context, patient string, req gDto.QueryParams) (dto.GetHistoryResponse, error)
	TrackRevenue(ctx context.Context, req dto.TrackRevenueRequest) error
	TrackCosts(ctx context.Context, req dto.TrackCostRequest) error
	PendingPayments(ctx context.Context) ([]dto.PendingPaymentResponse, error)
	Profitability(ctx context.Context) (dto.ProfitabilityResponse, error)
	Notify(ctx context.Context, entry dto.LedgerEntryResponse)
	HandleLedgerEvent(ctx context.Context, message kafkaGo.Message) error
}

type serviceImpl struct {
	repo       repository.Billing
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
	metrics    *metrics.Collector
	fee        decimal.Decimal
}

func New(repo repository.Billing, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache,
	kafka kafka.Client, otel otel.Otel, metrics *metrics.Collector,
) Billing {
	fee, err := decimal.NewFromString(cfg.Billing.AppointmentFee)
	if err != nil || !fee.IsPositive() {
		log.Warn().Err(err).Str("fee", cfg.Billing.AppointmentFee).Msg("invalid appointment fee, using default")

		fee = decimal.NewFromInt(defaultAppointmentFee)
	}

	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
		metrics:    metrics,
		fee:        fee,
	}
}

func (s *serviceImpl) GetBalance(ctx context.Context, patient string) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBalance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Patient = patient
	res.Currency = s.cfg.Billing.Currency

	cacheKey := shared.BuildCacheKey(cacheBalance, patient)

	if _, err = s.cache.GetVersion(ctx, cacheKey, &res.Balance); err == nil {
		return res, nil
	}

	posted, err := s.repo.LatestPosted(ctx, patient)
	if err != nil {
		log.Error().Err(err).Str("patient", patient).Msg("failed to get balance")

		return res, fmt.Errorf("failed to get balance: %w", err)
	}

	res.Balance = posted.Balance

	go s.storeBalance(context.WithoutCancel(ctx), patient, posted.TransactionID, posted.Balance)

	return res, nil
}

// storeBalance keeps the balance produced by the newest transaction; older writes are ignored.
func (s *serviceImpl) storeBalance(ctx context.Context, patient string, transactionID int64, balance decimal.Decimal) {
	cacheKey := shared.BuildCacheKey(cacheBalance, patient)

	saved, err := s.cache.SaveVersion(ctx, cacheKey, transactionID, balance, s.cfg.Cache.TTL)
	if err != nil {
		log.Error().Err(err).Str("patient", patient).Msg("failed to save balance to cache")

		return
	}

	if !saved {
		log.Debug().Str("patient", patient).Int64("transactionID", transactionID).Msg("cached balance is newer, skipped")
	}
}

func (s *serviceImpl) PostEntry(ctx context.Context, req dto.PostEntryRequest) (res dto.LedgerEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostEntry")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateAmount(req.Amount); err != nil {
		return res, err
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var txErr error

		res, txErr = s.post(ctx, tx, req)

		return txErr
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.Notify(ctx, res)

	return res, nil
}

// PostEntryTx reads the balance and appends within tx; the caller notifies after commit.
func (s *serviceImpl) PostEntryTx(ctx context.Context, tx *sqlx.Tx, req dto.PostEntryRequest) (res dto.LedgerEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PostEntryTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validateAmount(req.Amount); err != nil {
		return res, err
	}

	return s.post(ctx, tx, req)
}

func (s *serviceImpl) post(ctx context.Context, tx *sqlx.Tx, req dto.PostEntryRequest) (res dto.LedgerEntryResponse, err error) {
	if err = s.repo.LockPatientTx(ctx, tx, req.Patient); err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Msg("failed to lock patient ledger")

		return res, fmt.Errorf("failed to lock patient ledger: %w", err)
	}

	balance, err := s.repo.LatestBalanceTx(ctx, tx, req.Patient)
	if err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Msg("failed to get balance")

		return res, fmt.Errorf("failed to get balance: %w", err)
	}

	entry := model.LedgerEntry{
		Patient: req.Patient,
		Type:    req.Type,
		Amount:  req.Amount,
		Balance: balance.Add(req.Amount),
		Date:    timezone.Now(),
	}

	if err = s.repo.InsertReturningTx(ctx, tx, entry, model.FieldTransactionID, &entry.ID); err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Msg("failed to post ledger entry")

		return res, fmt.Errorf("failed to post ledger entry: %w", err)
	}

	s.metrics.LedgerEntry(entryKind(entry.Type))
	log.Info().Str("patient", entry.Patient).Str("type", entry.Type).Str("amount", entry.Amount.String()).
		Str("balance", entry.Balance.String()).Msg("ledger entry posted")

	res.FromModel(entry)

	return res, nil
}

func (s *serviceImpl) ChargeAppointmentFee(ctx context.Context, patient string) (dto.LedgerEntryResponse, error) {
	return s.PostEntry(ctx, s.appointmentFee(patient))
}

func (s *serviceImpl) ChargeAppointmentFeeTx(ctx context.Context, tx *sqlx.Tx, patient string) (dto.LedgerEntryResponse, error) {
	return s.PostEntryTx(ctx, tx, s.appointmentFee(patient))
}

func (s *serviceImpl) appointmentFee(patient string) dto.PostEntryRequest {
	return dto.PostEntryRequest{
		Patient: patient,
		Type:    model.TypeAppointmentPayment,
		Amount:  s.fee.Neg(),
	}
}

func (s *serviceImpl) ChargeMedication(ctx context.Context, req dto.ChargeMedicationRequest) (dto.LedgerEntryResponse, error) {
	entry, err := medicationCharge(req)
	if err != nil {
		return dto.LedgerEntryResponse{}, err
	}

	return s.PostEntry(ctx, entry)
}

func (s *serviceImpl) ChargeMedicationTx(ctx context.Context, tx *sqlx.Tx, req dto.ChargeMedicationRequest) (dto.LedgerEntryResponse, error) {
	entry, err := medicationCharge(req)
	if err != nil {
		return dto.LedgerEntryResponse{}, err
	}

	return s.PostEntryTx(ctx, tx, entry)
}

func medicationCharge(req dto.ChargeMedicationRequest) (dto.PostEntryRequest, error) {
	if req.Quantity <= 0 || !req.Price.IsPositive() {
		return dto.PostEntryRequest{}, failure.InvalidQuantityOrPrice("quantity and price must be positive") // nolint:wrapcheck
	}

	if subCent(req.Price) {
		return dto.PostEntryRequest{}, failure.InvalidQuantityOrPrice("price must have at most 2 decimal places") // nolint:wrapcheck
	}

	return dto.PostEntryRequest{
		Patient: req.Patient,
		Type:    fmt.Sprintf("%s (%s)", model.TypeMedicationPayment, strings.TrimSpace(req.Medication)),
		Amount:  req.Price.Mul(decimal.NewFromInt(int64(req.Quantity))).Neg(),
	}, nil
}

func (s *serviceImpl) Deposit(ctx context.Context, req dto.DepositRequest) (dto.LedgerEntryResponse, error) {
	if !req.Amount.IsPositive() {
		return dto.LedgerEntryResponse{}, failure.BadRequestFromString("deposit amount must be positive") // nolint:wrapcheck
	}

	return s.PostEntry(ctx, dto.PostEntryRequest{
		Patient: req.Patient,
		Type:    model.TypeDeposit,
		Amount:  req.Amount,
	})
}

func (s *serviceImpl) History(ctx context.Context, patient string, req gDto.QueryParams) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// newest first; ids grow with transaction dates
	req.SortBy = model.FieldTransactionID
	req.SortDir = gDto.SortDirDesc

	filter := shared.FilterByID(patient, model.FieldPatient, model.LedgerTableName)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ledger entries")

		return res, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ledger entries")

		return res, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) TrackRevenue(ctx context.Context, req dto.TrackRevenueRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TrackRevenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Amount.IsPositive() {
		return failure.BadRequestFromString("revenue amount must be positive") // nolint:wrapcheck
	}

	if err = validateAmount(req.Amount); err != nil {
		return err
	}

	err = s.repo.InsertRevenue(ctx, model.Revenue{
		Source: strings.TrimSpace(req.Source),
		Amount: req.Amount,
		Date:   timezone.Now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to track revenue")

		return fmt.Errorf("failed to track revenue: %w", err)
	}

	return nil
}

func (s *serviceImpl) TrackCosts(ctx context.Context, req dto.TrackCostRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TrackCosts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Amount.IsPositive() {
		return failure.BadRequestFromString("cost amount must be positive") // nolint:wrapcheck
	}

	if err = validateAmount(req.Amount); err != nil {
		return err
	}

	err = s.repo.InsertCost(ctx, model.Cost{
		Category: strings.TrimSpace(req.Category),
		Amount:   req.Amount,
		Date:     timezone.Now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to track costs")

		return fmt.Errorf("failed to track costs: %w", err)
	}

	return nil
}

func (s *serviceImpl) PendingPayments(ctx context.Context) (res []dto.PendingPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PendingPayments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pending, err := s.repo.PendingPayments(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending payments")

		return nil, fmt.Errorf("failed to get pending payments: %w", err)
	}

	res = make([]dto.PendingPaymentResponse, len(pending))
	for i, p := range pending {
		res[i] = dto.PendingPaymentResponse{Patient: p.Patient, Outstanding: p.Outstanding}
	}

	return res, nil
}

func (s *serviceImpl) Profitability(ctx context.Context) (res dto.ProfitabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profitability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	totals, err := s.repo.Totals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get financial totals")

		return res, fmt.Errorf("failed to get financial totals: %w", err)
	}

	return dto.ProfitabilityResponse{
		Revenue:  totals.Revenue,
		Costs:    totals.Costs,
		Profit:   totals.Revenue.Sub(totals.Costs),
		Currency: s.cfg.Billing.Currency,
	}, nil
}

// Notify caches the posted balance and publishes the entry in the background. Call it after commit.
func (s *serviceImpl) Notify(ctx context.Context, entry dto.LedgerEntryResponse) {
	s.storeBalance(ctx, entry.Patient, entry.ID, entry.Balance)

	topic := s.cfg.Kafka.Topics.Billing
	event := dto.NewLedgerEvent(entry, s.cfg.Billing.Currency)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, topic, kafka.Message{Key: entry.Patient, Value: event})

		s.metrics.EventPublished(topic, err)

		if err != nil {
			log.Error().Err(err).Int64("transactionID", entry.ID).Msg("failed to publish ledger event")
		}
	}()
}

// HandleLedgerEvent is the worker side of the notifier. Undecodable messages are dropped.
func (s *serviceImpl) HandleLedgerEvent(ctx context.Context, message kafkaGo.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleLedgerEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, decodeErr := kafka.DecodeKafkaMessage[dto.LedgerEvent](message)
	if decodeErr != nil || event.Event != dto.EventEntryPosted {
		log.Warn().Err(decodeErr).Str("key", string(message.Key)).Msg("skipping unexpected ledger message")

		return nil
	}

	log.Info().
		Str("patient", event.Patient).
		Str("type", event.Type).
		Str("amount", event.Amount.String()).
		Str("balance", event.Balance.String()).
		Str("currency", event.Currency).
		Time("timestamp", event.Timestamp).
		Msg("patient notified of ledger entry")

	// events may arrive late or twice, so the ledger is the source of the cached value
	posted, err := s.repo.LatestPosted(ctx, event.Patient)
	if err != nil {
		log.Error().Err(err).Str("patient", event.Patient).Msg("failed to refresh posted balance")

		return fmt.Errorf("failed to refresh posted balance: %w", err)
	}

	s.storeBalance(ctx, event.Patient, posted.TransactionID, posted.Balance)

	return nil
}

// validateAmount rejects amounts finer than a cent.
func validateAmount(amount decimal.Decimal) error {
	if subCent(amount) {
		return failure.BadRequestFromString("amount must have at most 2 decimal places") // nolint:wrapcheck
	}

	return nil
}

func subCent(amount decimal.Decimal) bool {
	return !amount.Equal(amount.Round(2))
}

func entryKind(entryType string) string {
	switch {
	case entryType == model.TypeAppointmentPayment:
		return entryKindAppointment
	case strings.HasPrefix(entryType, model.TypeMedicationPayment):
		return entryKindMedication
	case entryType == model.TypeDeposit:
		return entryKindDeposit
	default:
		return entryKindOther
	}
}

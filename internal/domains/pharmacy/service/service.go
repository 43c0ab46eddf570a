package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Pharmacy=MockPharmacyService

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/metrics"
	"hms/infras/otel"
	"hms/infras/postgres"
	billingDto "hms/internal/domains/billing/model/dto"
	billingService "hms/internal/domains/billing/service"
	"hms/internal/domains/pharmacy/model"
	"hms/internal/domains/pharmacy/model/dto"
	"hms/internal/domains/pharmacy/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"
	"hms/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMedication = "pharmacy:gets"
	cacheCountMedication  = "pharmacy:count"
)

type Pharmacy interface {
	AddMedication(ctx context.Context, req dto.AddMedicationRequest) error
	UpdateInventory(ctx context.Context, name string, req dto.UpdateInventoryRequest) (dto.MedicationResponse, error)
	ListInventory(ctx context.Context, req gDto.QueryParams) (dto.GetInventoryResponse, error)
	Expired(ctx context.Context) ([]dto.MedicationResponse, error)
	Dispense(ctx context.Context, req dto.DispenseRequest) (dto.DispenseResponse, error)
}

type serviceImpl struct {
	repo       repository.Pharmacy
	transactor postgres.Transactor
	billing    billingService.Billing
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	metrics    *metrics.Collector
}

func New(repo repository.Pharmacy, transactor postgres.Transactor, billing billingService.Billing, cfg *config.Config,
	cache cache.RedisCache, otel otel.Otel, metrics *metrics.Collector,
) Pharmacy {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		billing:    billing,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		metrics:    metrics,
	}
}

func (s *serviceImpl) AddMedication(ctx context.Context, req dto.AddMedicationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddMedication")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	medication, err := req.ToModel()
	if err != nil {
		return err //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(medication.Name, model.FieldName, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check medication existence")

		return fmt.Errorf("failed to check medication existence: %w", err)
	}

	if exist {
		return failure.DuplicateKey(fmt.Sprintf("medication %s already exists", medication.Name)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, medication); err != nil {
		log.Error().Err(err).Str("medication", medication.Name).Msg("failed to add medication")

		return fmt.Errorf("failed to add medication: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) UpdateInventory(ctx context.Context, name string, req dto.UpdateInventoryRequest) (res dto.MedicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateInventory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateVar(name, "required,max=100"); err != nil {
		return res, err //nolint:wrapcheck
	}

	medication, err := s.repo.Restock(ctx, name, req.Stock)
	if err != nil {
		log.Error().Err(err).Str("medication", name).Msg("failed to update inventory")

		return res, fmt.Errorf("failed to update inventory: %w", err)
	}

	res.FromModel(medication)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) ListInventory(ctx context.Context, req gDto.QueryParams) (res dto.GetInventoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListInventory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := dto.SearchFilter(req.Search)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMedication, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory")

		return res, fmt.Errorf("failed to get inventory: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMedication, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count medications")

		return res, fmt.Errorf("failed to count medications: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save medication count to cache")
		}
	}()

	return res, nil
}

// Expired lists medications past their expiry date as of today.
func (s *serviceImpl) Expired(ctx context.Context) (res []dto.MedicationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expired")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldExpiry, SortDir: gDto.SortDirAsc}

	models, err := s.repo.GetAll(ctx, params, dto.ExpiredFilter(timezone.Date{Time: timezone.Today()}))
	if err != nil {
		log.Error().Err(err).Msg("failed to get expired medications")

		return nil, fmt.Errorf("failed to get expired medications: %w", err)
	}

	res = make([]dto.MedicationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

// Dispense decrements stock and charges the patient in one transaction.
func (s *serviceImpl) Dispense(ctx context.Context, req dto.DispenseRequest) (res dto.DispenseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispense")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	var entry billingDto.LedgerEntryResponse

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(req.Medication, model.FieldName, model.TableName)

		medication, txErr := s.repo.GetForUpdateTx(ctx, tx, filter)
		if txErr != nil {
			return fmt.Errorf("failed to get medication: %w", txErr)
		}

		if medication.ID == 0 {
			return failure.NotFound(fmt.Sprintf("medication %s not found", req.Medication)) // nolint:wrapcheck
		}

		if medication.Stock < req.Quantity {
			return failure.BadRequestFromString("insufficient stock") // nolint:wrapcheck
		}

		remaining := medication.Stock - req.Quantity

		if _, txErr = s.repo.UpdateTx(ctx, tx, map[string]any{model.FieldStock: remaining}, filter); txErr != nil {
			return fmt.Errorf("failed to decrement stock: %w", txErr)
		}

		entry, txErr = s.billing.ChargeMedicationTx(ctx, tx, billingDto.ChargeMedicationRequest{
			Patient:    req.Patient,
			Medication: medication.Name,
			Quantity:   req.Quantity,
			Price:      medication.Price,
		})
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		res = dto.DispenseResponse{
			Medication: medication.Name,
			Quantity:   req.Quantity,
			Remaining:  remaining,
			Charged:    entry.Amount.Neg(),
			Balance:    entry.Balance,
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Str("medication", req.Medication).Msg("failed to dispense medication")

		return dto.DispenseResponse{}, err //nolint:wrapcheck
	}

	s.metrics.Dispensed(req.Quantity)
	s.billing.Notify(ctx, entry)
	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedication)
		shared.InvalidateCaches(c, s.cache, cacheCountMedication)
	}()
}

package service

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/otel"
	billingModel "hms/internal/domains/billing/model"
	billingRepository "hms/internal/domains/billing/repository"
	departmentModel "hms/internal/domains/department/model"
	departmentRepository "hms/internal/domains/department/repository"
	pharmacyModel "hms/internal/domains/pharmacy/model"
	pharmacyRepository "hms/internal/domains/pharmacy/repository"
	"hms/internal/domains/search/model/dto"
	userModel "hms/internal/domains/user/model"
	userRepository "hms/internal/domains/user/repository"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Search looks a term up across staff, patients, inventory, departments and the ledger.
type Search interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
}

type serviceImpl struct {
	users        userRepository.User
	medications  pharmacyRepository.Pharmacy
	departments  departmentRepository.Department
	transactions billingRepository.Billing
	cfg          *config.Config
	otel         otel.Otel
}

func New(users userRepository.User, medications pharmacyRepository.Pharmacy, departments departmentRepository.Department,
	transactions billingRepository.Billing, cfg *config.Config, otel otel.Otel,
) Search {
	return &serviceImpl{
		users:        users,
		medications:  medications,
		departments:  departments,
		transactions: transactions,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	limit := req.Limit
	if limit == 0 {
		limit = s.cfg.Search.Limit
	}

	page := func(sortBy string) gDto.QueryParams {
		return gDto.QueryParams{Page: 1, Limit: limit, SortBy: sortBy, SortDir: gDto.SortDirAsc}
	}

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		staff, err := s.users.GetAll(gctx, page(userModel.FieldUsername), req.StaffFilter())
		if err != nil {
			return fmt.Errorf("failed to search staff: %w", err)
		}

		res.Staff = dto.Users(staff)

		return nil
	})

	group.Go(func() error {
		patients, err := s.users.GetAll(gctx, page(userModel.FieldUsername), req.PatientFilter())
		if err != nil {
			return fmt.Errorf("failed to search patients: %w", err)
		}

		res.Patients = dto.Users(patients)

		return nil
	})

	group.Go(func() error {
		medications, err := s.medications.GetAll(gctx, page(pharmacyModel.FieldName), req.MedicationFilter())
		if err != nil {
			return fmt.Errorf("failed to search medications: %w", err)
		}

		res.Medications = dto.Medications(medications)

		return nil
	})

	group.Go(func() error {
		departments, err := s.departments.GetAll(gctx, page(departmentModel.FieldName), req.DepartmentFilter())
		if err != nil {
			return fmt.Errorf("failed to search departments: %w", err)
		}

		res.Departments = dto.Departments(departments)

		return nil
	})

	group.Go(func() error {
		// newest entries first
		params := page(billingModel.FieldTransactionID)
		params.SortDir = gDto.SortDirDesc

		transactions, err := s.transactions.GetAll(gctx, params, req.TransactionFilter())
		if err != nil {
			return fmt.Errorf("failed to search transactions: %w", err)
		}

		res.Transactions = dto.Transactions(transactions)

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("query", req.Query).Msg("failed to search")

		return dto.SearchResponse{}, err //nolint:wrapcheck
	}

	return res, nil
}

package personaldetails

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hrms/internal/identity"
	personaldetailserrors "go-hrms/internal/personaldetails/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// searchColumns maps the public search field names to the joined columns.
var searchColumns = map[string]string{
	"employeeName":  "employees.employee_name",
	"nationality":   "personal_details.nationality",
	"maritalStatus": "personal_details.marital_status",
}

//go:generate mockgen -source=personal_details_service.go -destination=mock/personal_details_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, caller identity.Caller, employeeID string, req PersonalDetailsRequest) (PersonalDetailsResponse, error)
	Get(ctx context.Context, employeeID string) (*PersonalDetailsResponse, error)
	Update(ctx context.Context, caller identity.Caller, employeeID string, req UpdatePersonalDetailsRequest) (PersonalDetailsResponse, error)
	List(ctx context.Context, query ListQuery) ([]PersonalDetailsResponse, int64, error)
	Search(ctx context.Context, query SearchQuery) ([]PersonalDetailsResponse, int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("personaldetails.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("personaldetails.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, caller identity.Caller, employeeID string, req PersonalDetailsRequest) (PersonalDetailsResponse, error) {
	s.logger.Debug("create personal details requested", zap.String("employee_id", employeeID), zap.String("caller_id", caller.ID))

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return PersonalDetailsResponse{}, personaldetailserrors.ErrInvalidCallerID
	}
	empID, err := uuid.Parse(strings.TrimSpace(employeeID))
	if err != nil {
		return PersonalDetailsResponse{}, personaldetailserrors.ErrEmployeeNotFound
	}
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return PersonalDetailsResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create personal details begin tx failed", zap.Error(err))
		return PersonalDetailsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, empID.String())
	if err != nil {
		s.logger.Error("create personal details employee lookup failed", zap.Error(err))
		return PersonalDetailsResponse{}, err
	}
	if !exists {
		s.logger.Warn("create personal details employee not found", zap.String("employee_id", empID.String()))
		return PersonalDetailsResponse{}, personaldetailserrors.ErrEmployeeNotFound
	}

	_, err = qtx.FindByEmployee(ctx, empID.String())
	if err == nil {
		return PersonalDetailsResponse{}, personaldetailserrors.ErrPersonalDetailsAlreadyExist
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create personal details lookup failed", zap.Error(err))
		return PersonalDetailsResponse{}, err
	}

	now := s.now()
	pd := &PersonalDetails{
		ID:                       uuid.New(),
		EmployeeID:               empID,
		DateOfBirth:              dob,
		Gender:                   req.Gender,
		Nationality:              req.Nationality,
		MaritalStatus:            req.MaritalStatus,
		BloodGroup:               req.BloodGroup,
		PersonalEmail:            strings.ToLower(req.PersonalEmail),
		AddressLine1:             req.AddressLine1,
		AddressLine2:             req.AddressLine2,
		City:                     req.City,
		State:                    req.State,
		Country:                  req.Country,
		PostalCode:               req.PostalCode,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactRelation: req.EmergencyContactRelation,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		CreatedBy:                callerID,
		UpdatedBy:                callerID,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if err := qtx.Create(ctx, pd); err != nil {
		s.logger.Error("create personal details persist failed", zap.Error(err))
		return PersonalDetailsResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create personal details commit failed", zap.Error(err))
		return PersonalDetailsResponse{}, err
	}

	s.logger.Info("create personal details success", zap.String("id", pd.ID.String()), zap.String("employee_id", empID.String()))
	return mapToResponse(PersonalDetailsView{PersonalDetails: *pd}), nil
}

// Get returns nil without error when the employee has no personal details.
func (s *service) Get(ctx context.Context, employeeID string) (*PersonalDetailsResponse, error) {
	if _, err := uuid.Parse(strings.TrimSpace(employeeID)); err != nil {
		return nil, nil
	}

	view, err := s.repo.FindViewByEmployee(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("get personal details failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := mapToResponse(*view)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, caller identity.Caller, employeeID string, req UpdatePersonalDetailsRequest) (PersonalDetailsResponse, error) {
	s.logger.Debug("update personal details requested", zap.String("employee_id", employeeID), zap.String("caller_id", caller.ID))

	callerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return PersonalDetailsResponse{}, personaldetailserrors.ErrInvalidCallerID
	}
	if _, err := uuid.Parse(strings.TrimSpace(employeeID)); err != nil {
		return PersonalDetailsResponse{}, personaldetailserrors.ErrPersonalDetailsNotFound
	}

	var dob *time.Time
	if req.DateOfBirth != nil {
		if dob, err = parseDate(*req.DateOfBirth); err != nil {
			return PersonalDetailsResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update personal details begin tx failed", zap.Error(err))
		return PersonalDetailsResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	pd, err := qtx.FindByEmployee(ctx, employeeID)
	if err != nil {
		return PersonalDetailsResponse{}, mapRepositoryError(err)
	}

	if req.DateOfBirth != nil {
		pd.DateOfBirth = dob
	}
	apply(&pd.Gender, req.Gender)
	apply(&pd.Nationality, req.Nationality)
	apply(&pd.MaritalStatus, req.MaritalStatus)
	apply(&pd.BloodGroup, req.BloodGroup)
	apply(&pd.PersonalEmail, req.PersonalEmail)
	apply(&pd.AddressLine1, req.AddressLine1)
	apply(&pd.AddressLine2, req.AddressLine2)
	apply(&pd.City, req.City)
	apply(&pd.State, req.State)
	apply(&pd.Country, req.Country)
	apply(&pd.PostalCode, req.PostalCode)
	apply(&pd.EmergencyContactName, req.EmergencyContactName)
	apply(&pd.EmergencyContactRelation, req.EmergencyContactRelation)
	apply(&pd.EmergencyContactPhone, req.EmergencyContactPhone)
	pd.PersonalEmail = strings.ToLower(pd.PersonalEmail)
	pd.UpdatedBy = callerID
	pd.UpdatedAt = s.now()

	written, err := qtx.Update(ctx, pd)
	if err != nil {
		s.logger.Error("update personal details persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PersonalDetailsResponse{}, err
	}
	if !written {
		return PersonalDetailsResponse{}, personaldetailserrors.ErrPersonalDetailsNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update personal details commit failed", zap.Error(err))
		return PersonalDetailsResponse{}, err
	}

	s.logger.Info("update personal details success", zap.String("employee_id", employeeID))
	return mapToResponse(PersonalDetailsView{PersonalDetails: *pd}), nil
}

func (s *service) List(ctx context.Context, query ListQuery) ([]PersonalDetailsResponse, int64, error) {
	views, total, err := s.repo.List(ctx, SearchFilter{}, query.Page, query.Limit)
	if err != nil {
		s.logger.Error("list personal details failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(views), total, nil
}

// Search filters only when both the term and the field are given.
func (s *service) Search(ctx context.Context, query SearchQuery) ([]PersonalDetailsResponse, int64, error) {
	var filter SearchFilter
	term := strings.TrimSpace(query.Query)
	if term != "" && query.Field != "" {
		column, ok := searchColumns[query.Field]
		if !ok {
			return nil, 0, personaldetailserrors.ErrInvalidSearchField
		}
		filter = SearchFilter{Column: column, Term: term}
	}

	views, total, err := s.repo.List(ctx, filter, query.Page, query.Limit)
	if err != nil {
		s.logger.Error("search personal details failed", zap.String("field", query.Field), zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(views), total, nil
}

func apply(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// parseDate accepts an empty value as "not set".
func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, personaldetailserrors.ErrInvalidDateOfBirth
	}
	return &t, nil
}

func mapToResponse(v PersonalDetailsView) PersonalDetailsResponse {
	resp := PersonalDetailsResponse{
		ID:            v.ID.String(),
		EmployeeID:    v.EmployeeID.String(),
		Gender:        v.Gender,
		Nationality:   v.Nationality,
		MaritalStatus: v.MaritalStatus,
		BloodGroup:    v.BloodGroup,
		PersonalEmail: v.PersonalEmail,
		Address: AddressResponse{
			Line1:      v.AddressLine1,
			Line2:      v.AddressLine2,
			City:       v.City,
			State:      v.State,
			Country:    v.Country,
			PostalCode: v.PostalCode,
		},
		EmergencyContact: EmergencyContactResponse{
			Name:     v.EmergencyContactName,
			Relation: v.EmergencyContactRelation,
			Phone:    v.EmergencyContactPhone,
		},
		CreatedBy: v.CreatedBy.String(),
		UpdatedBy: v.UpdatedBy.String(),
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
	if v.DateOfBirth != nil {
		d := v.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &d
	}
	if v.EmployeeName != "" {
		resp.Employee = &EmployeeSummary{
			EmployeeName:   v.EmployeeName,
			EmployeeNumber: v.EmployeeNumber,
			Email:          v.EmployeeEmail,
			Phone:          v.EmployeePhone,
			Position:       v.Position,
			Department:     v.Department,
		}
	}
	return resp
}

func mapToListResponse(views []PersonalDetailsView) []PersonalDetailsResponse {
	resp := make([]PersonalDetailsResponse, len(views))
	for i, v := range views {
		resp[i] = mapToResponse(v)
	}
	return resp
}

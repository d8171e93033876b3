package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUserHistory(ctx context.Context) ([]domain.UserHistoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserHistoryItem), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) SetPassword(ctx context.Context, userID string, passwordHash string, verifiedAt *time.Time) error {
	return m.Called(ctx, userID, passwordHash, verifiedAt).Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, email string, role domain.UserRole) error {
	return m.Called(ctx, email, role).Error(0)
}

// --- Mock TokenRepository ---
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) ReplaceToken(ctx context.Context, kind domain.TokenKind, token domain.Token) error {
	return m.Called(ctx, kind, token).Error(0)
}

func (m *MockTokenRepository) ConsumeToken(ctx context.Context, kind domain.TokenKind, value string) (*domain.Token, error) {
	args := m.Called(ctx, kind, value)
	var token *domain.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.Token)
	}
	return token, args.Error(1)
}

func (m *MockTokenRepository) DeleteExpiredTokens(ctx context.Context, kind domain.TokenKind, now time.Time) (int64, error) {
	args := m.Called(ctx, kind, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, email, token string) error {
	return m.Called(ctx, email, token).Error(0)
}

func (m *MockMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	return m.Called(ctx, email, token).Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var c *domain.Category
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Category)
	}
	return c, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByNameAndType(ctx context.Context, name string, invoiceType domain.InvoiceType) (*domain.Category, error) {
	args := m.Called(ctx, name, invoiceType)
	var c *domain.Category
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Category)
	}
	return c, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, invoiceType *domain.InvoiceType) ([]domain.Category, error) {
	args := m.Called(ctx, invoiceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string, replacementID *string) error {
	return m.Called(ctx, categoryID, replacementID).Error(0)
}

// --- Mock DepartmentRepository ---
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	var d *domain.Department
	if args.Get(0) != nil {
		d = args.Get(0).(*domain.Department)
	}
	return d, args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	return m.Called(ctx, department).Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string, replacementID *string) error {
	return m.Called(ctx, departmentID, replacementID).Error(0)
}

// --- Mock ReportingRepository and HistoryRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetTypeTotals(ctx context.Context, rng domain.DateRange) ([]domain.TypeTotals, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeTotals), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, rng domain.DateRange) ([]domain.CategoryStat, error) {
	args := m.Called(ctx, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryStat), args.Error(1)
}

func (m *MockReportingRepository) GetInvoiceYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) FindYearHistory(ctx context.Context, year int) ([]domain.YearHistory, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YearHistory), args.Error(1)
}

func (m *MockHistoryRepository) FindMonthHistory(ctx context.Context, year, month int) ([]domain.MonthHistory, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthHistory), args.Error(1)
}

func (m *MockHistoryRepository) RebuildRollups(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// memInvoiceRepository keeps invoices and the month rollup in memory and
// applies deltas the way the database upsert does.
type memInvoiceRepository struct {
	mu       sync.Mutex
	invoices map[string]domain.Invoice
	months   map[[3]int]domain.RollupDelta
}

var _ portsrepo.InvoiceRepositoryFacade = (*memInvoiceRepository)(nil)

func newMemInvoiceRepository() *memInvoiceRepository {
	return &memInvoiceRepository{
		invoices: map[string]domain.Invoice{},
		months:   map[[3]int]domain.RollupDelta{},
	}
}

func (r *memInvoiceRepository) monthRow(day, month, year int) domain.RollupDelta {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.months[[3]int{day, month, year}]
}

func (r *memInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inv, nil
}

func (r *memInvoiceRepository) InvoiceNumberExists(ctx context.Context, invoiceNumber, categoryID string, departmentID *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invoices {
		sameDept := (inv.DepartmentID == nil && departmentID == nil) ||
			(inv.DepartmentID != nil && departmentID != nil && *inv.DepartmentID == *departmentID)
		if inv.InvoiceNumber == invoiceNumber && inv.CategoryID == categoryID && sameDept {
			return true, nil
		}
	}
	return false, nil
}

func (r *memInvoiceRepository) ListInvoiceHistory(ctx context.Context, rng domain.DateRange, limit int, after *portsrepo.InvoiceCursor) ([]domain.InvoiceHistoryItem, error) {
	return []domain.InvoiceHistoryItem{}, nil
}

func (r *memInvoiceRepository) apply(inv domain.Invoice, delta domain.RollupDelta) {
	day, month, year := accounting.MonthKey(inv)
	key := [3]int{day, month, year}
	cur, ok := r.months[key]
	if !ok {
		cur = domain.RollupDelta{}
	}
	r.months[key] = cur.Add(delta)
}

func (r *memInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice, delta domain.RollupDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[invoice.InvoiceID] = invoice
	r.apply(invoice, delta)
	return nil
}

func (r *memInvoiceRepository) DeleteInvoice(ctx context.Context, invoice domain.Invoice, delta domain.RollupDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[invoice.InvoiceID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.invoices, invoice.InvoiceID)
	r.apply(invoice, delta)
	return nil
}

func (r *memInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, datePaid *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[invoiceID]
	if !ok {
		return apperrors.ErrNotFound
	}
	inv.Status = status
	inv.DatePaid = datePaid
	r.invoices[invoiceID] = inv
	return nil
}

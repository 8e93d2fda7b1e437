package services

import (
	"gorm.io/gorm"

	apperrors "grana/internal/errors"
	"grana/internal/models"
)

// summaryService derives aggregates from the ledger without mutating it.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// monthlySum computes COALESCE(SUM(column), 0) for one entity in one period.
func monthlySum(db *gorm.DB, model interface{}, column string, userID uint, month, year int) (float64, error) {
	var total float64
	err := db.Model(model).
		Select("COALESCE(SUM("+column+"), 0)").
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Scan(&total).Error
	return total, err
}

// GetMonthlyTotals sums the three entity types for one (month, year) period.
// Missing data sums to 0.0.
func (s *summaryService) GetMonthlyTotals(userID uint, month, year int) (*MonthlyTotals, error) {
	income, err := monthlySum(s.db, &models.Income{}, "value", userID, month, year)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense, err := monthlySum(s.db, &models.Expense{}, "value", userID, month, year)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	investment, err := monthlySum(s.db, &models.Investment{}, "amount", userID, month, year)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &MonthlyTotals{
		Month:           month,
		Year:            year,
		TotalIncome:     income,
		TotalExpense:    expense,
		TotalInvestment: investment,
		Balance:         income - expense,
	}, nil
}

// GetAnnualSummary fetches the user's whole year once per entity type and
// groups the twelve-month breakdown in memory — three queries total, never
// one per month.
func (s *summaryService) GetAnnualSummary(userID uint, year int) (*AnnualSummary, error) {
	incomes := []models.Income{}
	if err := s.db.Where("user_id = ? AND year = ?", userID, year).Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expenses := []models.Expense{}
	if err := s.db.Where("user_id = ? AND year = ?", userID, year).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	investments := []models.Investment{}
	if err := s.db.Where("user_id = ? AND year = ?", userID, year).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &AnnualSummary{
		Year:        year,
		Months:      make([]MonthBreakdown, 12),
		Incomes:     incomes,
		Expenses:    expenses,
		Investments: investments,
	}
	for i := range summary.Months {
		summary.Months[i].Month = i + 1
	}

	for _, in := range incomes {
		summary.Months[in.Month-1].Income += in.Value
		summary.TotalIncome += in.Value
	}
	for _, ex := range expenses {
		summary.Months[ex.Month-1].Expense += ex.Value
		summary.TotalExpense += ex.Value
	}
	for _, inv := range investments {
		summary.Months[inv.Month-1].Investment += inv.Amount
		summary.TotalInvestment += inv.Amount
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}

// Projection is a lazy, finite, non-restartable walk over consecutive future
// periods, in the style of sql.Rows: call Next until it returns false, read
// each period with Period, then check Err.
//
// Each step replays whatever ledger rows already exist for that period —
// including rows materialized by recurrence expansion. Nothing is
// extrapolated.
type Projection struct {
	db        *gorm.DB
	userID    uint
	month     int
	year      int
	remaining int
	current   PeriodSummary
	err       error
}

// Project starts a projection of exactly `periods` consecutive months
// beginning at (startMonth, startYear).
func (s *summaryService) Project(userID uint, startMonth, startYear, periods int) *Projection {
	return &Projection{
		db:        s.db,
		userID:    userID,
		month:     startMonth,
		year:      startYear,
		remaining: periods,
	}
}

// Next advances to the next period. It returns false when the projection is
// exhausted or a query failed; check Err afterwards.
func (p *Projection) Next() bool {
	if p.err != nil || p.remaining <= 0 {
		return false
	}

	income, err := monthlySum(p.db, &models.Income{}, "value", p.userID, p.month, p.year)
	if err != nil {
		p.err = apperrors.Wrap(apperrors.ErrInternalServer, err)
		return false
	}
	expense, err := monthlySum(p.db, &models.Expense{}, "value", p.userID, p.month, p.year)
	if err != nil {
		p.err = apperrors.Wrap(apperrors.ErrInternalServer, err)
		return false
	}
	investment, err := monthlySum(p.db, &models.Investment{}, "amount", p.userID, p.month, p.year)
	if err != nil {
		p.err = apperrors.Wrap(apperrors.ErrInternalServer, err)
		return false
	}

	p.current = PeriodSummary{
		Month:      p.month,
		Year:       p.year,
		Income:     income,
		Expense:    expense,
		Investment: investment,
		Balance:    income - expense,
	}

	p.month, p.year = nextPeriod(p.month, p.year)
	p.remaining--
	return true
}

// Period returns the summary produced by the last successful Next.
func (p *Projection) Period() PeriodSummary {
	return p.current
}

// Err returns the first error encountered while projecting, if any.
func (p *Projection) Err() error {
	return p.err
}

// Collect drains the projection into a slice. Intended for callers that want
// the whole table at once, such as the HTTP layer.
func (p *Projection) Collect() ([]PeriodSummary, error) {
	out := []PeriodSummary{}
	for p.Next() {
		out = append(out, p.Period())
	}
	return out, p.Err()
}

package cron

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"budget_tracker/internal/models"
	"budget_tracker/internal/services"
	"budget_tracker/pkg/utils"

	"github.com/robfig/cron/v3"
)

func StartCronJob(db *sql.DB) *cron.Cron {
	c := cron.New()

	// Runs daily at midnight — warn users whose categories went over budget
	_, err := c.AddFunc("0 0 * * *", func() {
		err := SendBudgetAlerts(db)
		if err != nil {
			utils.Logger.Errorf("Cron job failed to send budget alerts: %v", err)
		}
	})
	if err != nil {
		utils.Logger.Errorf("Failed to schedule budget alert job: %v", err)
	}

	c.Start()
	utils.Logger.Info("Cron jobs started (budget alerts daily at midnight)")
	return c
}

// -------------------------------------------------------------
// Send over-budget alert emails for the current month
// -------------------------------------------------------------
func SendBudgetAlerts(db *sql.DB) error {
	if os.Getenv("SMTP_HOST") == "" {
		utils.Logger.Info("SMTP not configured, skipping budget alerts")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	rows, err := db.QueryContext(ctx, `
		SELECT DISTINCT u.id, u.email, u.first_name
		FROM users u
		JOIN budgets b ON b.user_id = u.id
		WHERE b.year = ? AND (b.period = 'yearly' OR b.month = ?)
	`, year, month)
	if err != nil {
		return err
	}
	defer rows.Close()

	type recipient struct {
		id        int
		email     string
		firstName string
	}
	var recipients []recipient
	for rows.Next() {
		var rec recipient
		if err := rows.Scan(&rec.id, &rec.email, &rec.firstName); err != nil {
			return err
		}
		recipients = append(recipients, rec)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	sent := 0
	for _, rec := range recipients {
		budgets, err := fetchApplicableBudgets(ctx, db, rec.id, year, month)
		if err != nil {
			utils.Logger.Errorf("Failed to load budgets for user %d: %v", rec.id, err)
			continue
		}

		txs, err := fetchYearExpenses(ctx, db, rec.id, year)
		if err != nil {
			utils.Logger.Errorf("Failed to load expenses for user %d: %v", rec.id, err)
			continue
		}

		var over []utils.OverBudgetCategory
		for _, st := range services.BudgetProgress(budgets, txs) {
			if !st.IsOverBudget {
				continue
			}
			over = append(over, utils.OverBudgetCategory{
				Category:  st.Category,
				Budget:    services.FormatCurrency(st.BudgetAmount),
				Spent:     services.FormatCurrency(st.Spent),
				Overspent: services.FormatCurrency(st.Spent.Sub(st.BudgetAmount)),
			})
		}
		if len(over) == 0 {
			continue
		}

		if err := utils.SendBudgetAlertEmail(rec.email, rec.firstName, now.Month(), year, over); err != nil {
			utils.Logger.Errorf("Failed to send budget alert to %s: %v", rec.email, err)
			continue
		}
		sent++
	}

	if sent > 0 {
		utils.Logger.Infof("Sent %d budget alert email(s)", sent)
	}
	return nil
}

func fetchApplicableBudgets(ctx context.Context, db *sql.DB, userID, year, month int) ([]models.Budget, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, category, amount, period, month, year, created_at
		FROM budgets
		WHERE user_id = ? AND year = ? AND (period = 'yearly' OR month = ?)
	`, userID, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Month, &b.Year, &b.CreatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func fetchYearExpenses(ctx context.Context, db *sql.DB, userID, year int) ([]models.Transaction, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, description, amount, type, category, DATE_FORMAT(date, '%Y-%m-%d'), created_at
		FROM transactions
		WHERE user_id = ? AND type = 'expense' AND date >= ? AND date <= ?
	`, userID, fmt.Sprintf("%04d-01-01", year), fmt.Sprintf("%04d-12-31", year))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

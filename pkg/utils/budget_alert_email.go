package utils

import (
	"fmt"
	"strings"
	"time"
)

// OverBudgetCategory is one over-limit line in the daily alert email.
type OverBudgetCategory struct {
	Category  string
	Budget    string
	Spent     string
	Overspent string
}

func SendBudgetAlertEmail(to, firstName string, month time.Month, year int, categories []OverBudgetCategory) error {
	subject := fmt.Sprintf("Budget alert for %s %d — %d categor%s over limit",
		month.String(), year, len(categories), pluralSuffix(len(categories)))

	var rows strings.Builder
	for _, c := range categories {
		rows.WriteString(fmt.Sprintf(`
				<tr>
					<td>%s</td>
					<td>%s</td>
					<td>%s</td>
					<td style="color:#c62828;">%s</td>
				</tr>`, c.Category, c.Budget, c.Spent, c.Overspent))
	}

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8" />
		<title>Budget Alert</title>
		<style>
			body { font-family: Arial, Helvetica, sans-serif; background-color: #f4f6f8; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; border-top: 6px solid #c62828; }
			.header { background-color: #c62828; color: #ffffff; text-align: center; padding: 30px 20px; }
			.header h1 { margin: 0; font-size: 22px; }
			.content { padding: 30px 40px; color: #333333; line-height: 1.6; }
			table { width: 100%%; border-collapse: collapse; }
			th, td { text-align: left; padding: 8px; border-bottom: 1px solid #eeeeee; }
			.footer { text-align: center; font-size: 12px; color: #999999; padding: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Hi %s, some budgets need attention</h1>
			</div>
			<div class="content">
				<p>The following categories are over their %s %d budget:</p>
				<table>
					<tr><th>Category</th><th>Budget</th><th>Spent</th><th>Over by</th></tr>%s
				</table>
				<p>Review your spending in the dashboard to get back on track.</p>
			</div>
			<div class="footer">
				Daily budget check from Budget Tracker.
			</div>
		</div>
	</body>
	</html>
	`, firstName, month.String(), year, rows.String())

	return SendEmail(to, subject, body)
}

func pluralSuffix(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

package utils

import (
	"fmt"
)

func SendWelcomeEmail(to, firstName string) error {
	subject := fmt.Sprintf("Welcome to Budget Tracker, %s!", firstName)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8" />
		<title>Welcome to Budget Tracker</title>
		<style>
			body { font-family: Arial, Helvetica, sans-serif; background-color: #f4f6f8; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; border-top: 6px solid #2e7d32; }
			.header { background-color: #2e7d32; color: #ffffff; text-align: center; padding: 30px 20px; }
			.header h1 { margin: 0; font-size: 24px; }
			.content { padding: 30px 40px; color: #333333; line-height: 1.6; }
			.footer { text-align: center; font-size: 12px; color: #999999; padding: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Welcome aboard, %s!</h1>
			</div>
			<div class="content">
				<p>Your Budget Tracker account is ready.</p>
				<p>Start by adding your income and expenses, then set monthly
				budgets per category. The dashboard keeps your balance, spending
				trends and budget progress up to date as you go.</p>
				<p>Happy tracking!</p>
			</div>
			<div class="footer">
				You are receiving this email because an account was created with this address.
			</div>
		</div>
	</body>
	</html>
	`, firstName)

	return SendEmail(to, subject, body)
}

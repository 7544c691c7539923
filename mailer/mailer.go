package mailer

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendCredentialSetup notifies a silently provisioned customer that an
// account now exists for their email and how to claim it. Checkout treats a
// send failure as non-fatal; the reset link can be re-requested from the
// login screen.
func SendCredentialSetup(to, resetLink string) error {
	msg := mail.NewMsg()

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "noreply@ssfashion.in"
	}
	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Your SS Fashion account")
	msg.SetBodyString(mail.TypeTextHTML, credentialSetupHTML(resetLink))

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

func credentialSetupHTML(resetLink string) string {
	return fmt.Sprintf(`
<html>
  <body>
    <p>We created an SS Fashion account for this email while processing your order.</p>
    <p>Set your password to view your orders any time:</p>
    <p><a href="%s">Choose a password</a></p>
    <p>If you did not place an order with us, you can ignore this email.</p>
  </body>
</html>`, resetLink)
}

package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/C317-Irineu/elodrinks-api/internal/domain/entities"
	"github.com/C317-Irineu/elodrinks-api/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

var ErrMissingSMTPConfig = errors.New("missing SMTP configuration (EMAIL_HOST/EMAIL_PORT/EMAIL_USER/EMAIL_PASS)")

const quotationSubject = "Orçamento EloDrinks para sua festa 🥳"

// SMTPMailer delivers the quotation email over SMTP with an HTML body and a
// plain-text alternative.

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string

	whatsappContact string
	emailContact    string
}

var _ interfaces.IMailSender = (*SMTPMailer)(nil)

// NewSMTPMailerFromEnv reads EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS
// plus the WHATSAPP_CONTATO / EMAIL_CONTATO footer contacts.
func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	host := os.Getenv("EMAIL_HOST")
	portRaw := os.Getenv("EMAIL_PORT")
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if host == "" || portRaw == "" || user == "" || pass == "" {
		return nil, ErrMissingSMTPConfig
	}

	port, err := strconv.Atoi(portRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid EMAIL_PORT %q: %w", portRaw, err)
	}

	return &SMTPMailer{
		dialer:          gomail.NewDialer(host, port, user, pass),
		from:            user,
		whatsappContact: os.Getenv("WHATSAPP_CONTATO"),
		emailContact:    os.Getenv("EMAIL_CONTATO"),
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, mail entities.EmailNotification) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", quotationSubject)
	msg.SetBody("text/plain", "Seu cliente precisa de um e-mail com HTML para visualizar este conteúdo.")
	msg.AddAlternative("text/html", m.htmlBody(mail))

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("[mail][smtp] delivery failed to=%s err=%v", mail.To, err)
		return err
	}
	log.Printf("[mail][smtp] delivery success to=%s", mail.To)
	return nil
}

func (m *SMTPMailer) htmlBody(mail entities.EmailNotification) string {
	return fmt.Sprintf(`
    <html>
        <body>
            <p>Olá %s,<br><br>
            Nós da <strong>EloDrinks</strong> olhamos com cuidado e fizemos com carinho o orçamento para sua festa de <strong>%s</strong> na data <strong>%s</strong>.<br><br>
            O valor final para seu pedido é <strong>R$%s</strong>.<br><br>
            <a href="%s" style="padding:10px 15px; background-color:#28a745; color:white; text-decoration:none; border-radius:5px;">Confirmar pedido e realizar pagamento</a><br><br>
            Caso tenha alguma ressalva, entre em contato conosco:<br>
            📞 WhatsApp: %s<br>
            📧 Email: %s<br><br>
            Atenciosamente,<br>
            Equipe <strong>EloDrinks</strong></p>
        </body>
    </html>
    `, mail.CustomerName, mail.EventType, mail.EventDate, mail.FormattedValue, mail.PaymentLink, m.whatsappContact, m.emailContact)
}

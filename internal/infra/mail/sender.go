package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

var leadConvertedTemplate = template.Must(template.New("lead_converted").Parse(`
<html>
  <body>
    <h2>Parabéns! 🎉</h2>
    <p>O lead <strong>{{.CompanyName}}</strong> foi convertido em cliente em {{.ConvertedAt}}.</p>
    <p>Acesse o CRM para iniciar o onboarding.</p>
  </body>
</html>`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadConverted avisa o time comercial que um lead virou cliente.
func (s *EmailSender) SendLeadConverted(to, companyName, convertedAt string) error {
	data := LeadConvertedEmailData{
		CompanyName: companyName,
		ConvertedAt: convertedAt,
	}

	var body bytes.Buffer
	if err := leadConvertedTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lead convertido: %s 🚀", companyName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendResult(toEmail, fullName string, accepted bool) error
	SendFinalizationDigest(toEmail, fullName string, accepted, denied int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

// SendResult delivers the committed deliberation outcome to one applicant.
func (s *emailService) SendResult(toEmail, fullName string, accepted bool) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)

	var body string
	if accepted {
		m.SetHeader("Subject", "Your Application Result — Congratulations!")
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, %s!</h2>
			<p>We're excited to let you know that your application has been <strong>accepted</strong>.</p>
			<p>Visit your dashboard for next steps:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Dashboard</a>
			<p>We look forward to working with you.</p>
		</div>
	`, fullName, s.clientURL)
	} else {
		m.SetHeader("Subject", "Your Application Result")
		body = fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Thank you for taking the time to apply and interview with us.</p>
			<p>After careful deliberation, we're unable to offer you a spot this cycle.</p>
			<p>We encourage you to apply again in a future cycle.</p>
		</div>
	`, fullName)
	}

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send result to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Result sent to %s\n", toEmail)
	return nil
}

// SendFinalizationDigest summarizes a committed deliberation round for one
// administrator.
func (s *emailService) SendFinalizationDigest(toEmail, fullName string, accepted, denied int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Deliberation Finalized")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>The deliberation round has been finalized.</p>
			<ul>
				<li><strong>%d</strong> candidates accepted</li>
				<li><strong>%d</strong> candidates denied</li>
			</ul>
			<p>Applicants are being notified of their results by email.</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Review Outcomes</a>
		</div>
	`, fullName, accepted, denied, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send digest to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Digest sent to %s\n", toEmail)
	return nil
}

package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// WelcomeJob builds the registration welcome email.
func WelcomeJob(to, fullName string) EmailJob {
	return EmailJob{
		To:      to,
		Subject: "Welcome to Teslo Shop",
		Text:    "Hi " + fullName + ", your account is ready.",
	}
}

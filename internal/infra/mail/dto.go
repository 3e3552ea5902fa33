package mail

type LeadConvertedEmailData struct {
	CompanyName string
	ConvertedAt string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

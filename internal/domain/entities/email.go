package entities

type EmailMessage struct {
	ToAddress string
	ToName    string
	Subject   string
	HTML      string
	Text      string
	Tag       string
}

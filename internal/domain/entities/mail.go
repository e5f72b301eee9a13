package entities

// EmailNotification is the quotation email sent to a customer. It exists only
// for the duration of one send and is never persisted.
type EmailNotification struct {
	To             string
	CustomerName   string
	EventType      string
	EventDate      string
	FormattedValue string
	PaymentLink    string
}

package utils

// SendReminderEmail hands the appointment reminder off to the mail provider.
// Replace the body of this function with your actual email integration.
func SendReminderEmail(email, message string) error {
	GetLogger().Sugar().Infof("Sending reminder email to %s: %s", email, message)
	return nil
}
